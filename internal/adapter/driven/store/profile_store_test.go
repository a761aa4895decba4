package store

import (
	"testing"

	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
)

func TestNewProfileStore(t *testing.T) {
	s := NewProfileStore()

	if s.CurrentStep() != entity.StepWelcome {
		t.Errorf("CurrentStep = %q, want %q", s.CurrentStep(), entity.StepWelcome)
	}
	if s.SessionID() == "" {
		t.Error("SessionID must not be empty")
	}

	p := s.GetProfile()
	if p.Infraestrutura.Links == nil {
		t.Error("Links must be initialized, not nil")
	}
	if len(p.Infraestrutura.Links) != 0 {
		t.Errorf("new profile should have no links, got %d", len(p.Infraestrutura.Links))
	}
}

func TestProfileStoreUpdates(t *testing.T) {
	s := NewProfileStore()

	s.UpdateEmpresa(entity.EmpresaInfo{Nome: "Padaria Central", Setor: "Alimentício"})
	s.UpdateInfraestrutura(entity.InfraestruturaInfo{
		UsuariosAtuais: 42,
		Links:          []entity.LinkInfo{{Provedor: "Vivo", Velocidade: "500 Mbps"}},
	})
	s.UpdateBackup(entity.BackupInfo{PossuiBackup: true, TipoBackup: "cloud"})

	p := s.GetProfile()
	if p.Empresa.Nome != "Padaria Central" {
		t.Errorf("Empresa.Nome = %q", p.Empresa.Nome)
	}
	if p.Infraestrutura.UsuariosAtuais != 42 {
		t.Errorf("UsuariosAtuais = %d", p.Infraestrutura.UsuariosAtuais)
	}
	if len(p.Infraestrutura.Links) != 1 || p.Infraestrutura.Links[0].Provedor != "Vivo" {
		t.Errorf("Links = %+v", p.Infraestrutura.Links)
	}
	if !p.Backup.PossuiBackup || p.Backup.TipoBackup != "cloud" {
		t.Errorf("Backup = %+v", p.Backup)
	}
}

func TestProfileStoreUpdateComLinksNulos(t *testing.T) {
	s := NewProfileStore()
	s.UpdateInfraestrutura(entity.InfraestruturaInfo{UsuariosAtuais: 10})

	if s.GetProfile().Infraestrutura.Links == nil {
		t.Error("store must normalize nil links to an empty slice")
	}
}

func TestProfileStoreSnapshotIsolado(t *testing.T) {
	s := NewProfileStore()
	s.UpdateInfraestrutura(entity.InfraestruturaInfo{
		Links: []entity.LinkInfo{{Provedor: "Vivo", Velocidade: "500 Mbps"}},
	})
	s.SetEquipamentoSugerido(entity.FirewallSuggestion{Sonicwall: "SonicWall TZ80"})

	snapshot := s.GetProfile()
	snapshot.Infraestrutura.Links[0].Provedor = "alterado"
	snapshot.EquipamentoSugerido.Sonicwall = "alterado"

	atual := s.GetProfile()
	if atual.Infraestrutura.Links[0].Provedor != "Vivo" {
		t.Error("mutating a snapshot must not leak into the store (links)")
	}
	if atual.EquipamentoSugerido.Sonicwall != "SonicWall TZ80" {
		t.Error("mutating a snapshot must not leak into the store (suggestion)")
	}
}

func TestProfileStoreLoadProfile(t *testing.T) {
	s := NewProfileStore()
	s.UpdateEmpresa(entity.EmpresaInfo{Nome: "Antiga"})

	nova := entity.Profile{
		Empresa: entity.EmpresaInfo{Nome: "Nova Empresa", Setor: "Varejo"},
		Backup:  entity.BackupInfo{PossuiBackup: true},
	}
	s.LoadProfile(nova)

	p := s.GetProfile()
	if p.Empresa.Nome != "Nova Empresa" {
		t.Errorf("Empresa.Nome = %q, want Nova Empresa", p.Empresa.Nome)
	}
	if p.Infraestrutura.Links == nil {
		t.Error("loaded profile must have links normalized to an empty slice")
	}
}

func TestProfileStoreSteps(t *testing.T) {
	s := NewProfileStore()

	s.SetCurrentStep(entity.StepSeguranca)
	if s.CurrentStep() != entity.StepSeguranca {
		t.Errorf("CurrentStep = %q", s.CurrentStep())
	}

	if next := entity.StepSeguranca.Next(); next != entity.StepBackup {
		t.Errorf("Next = %q, want %q", next, entity.StepBackup)
	}
	if next := entity.StepPresentation.Next(); next != entity.StepPresentation {
		t.Errorf("presentation must be terminal, got %q", next)
	}
}

func TestProfileStoreReset(t *testing.T) {
	s := NewProfileStore()
	antigaSessao := s.SessionID()

	s.UpdateEmpresa(entity.EmpresaInfo{Nome: "Padaria Central"})
	s.SetCurrentStep(entity.StepPresentation)
	s.Reset()

	if s.CurrentStep() != entity.StepEmpresa {
		t.Errorf("CurrentStep after reset = %q, want %q", s.CurrentStep(), entity.StepEmpresa)
	}
	if s.GetProfile().Empresa.Nome != "" {
		t.Error("profile must be empty after reset")
	}
	if s.SessionID() == antigaSessao {
		t.Error("reset must start a new session")
	}
}
