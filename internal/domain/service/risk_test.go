package service

import (
	"testing"

	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
)

func testRiskTable() types.RiskTable {
	return types.RiskTable{
		SemFirewall:      types.RiskRule{Titulo: "sem-firewall", Probabilidade: 85, Categoria: "alto"},
		FirewallSoho:     types.RiskRule{Titulo: "firewall-soho", Probabilidade: 60, Categoria: "moderado"},
		VPNSemMFA:        types.RiskRule{Titulo: "vpn-sem-mfa", Probabilidade: 70, Categoria: "alto"},
		MuitosAcessosVPN: types.RiskRule{Titulo: "muitos-acessos-vpn", Probabilidade: 55, Categoria: "moderado"},
		RedeUnica:        types.RiskRule{Titulo: "rede-unica", Probabilidade: 50, Categoria: "moderado"},
		AntivirusBasico:  types.RiskRule{Titulo: "antivirus-basico", Probabilidade: 75, Categoria: "alto"},
		SemGerenciamento: types.RiskRule{Titulo: "sem-gerenciamento", Probabilidade: 65, Categoria: "moderado"},
		SemBackup:        types.RiskRule{Titulo: "sem-backup", Probabilidade: 90, Categoria: "alto"},
		BackupSemTeste:   types.RiskRule{Titulo: "backup-sem-teste", Probabilidade: 70, Categoria: "alto"},
		BackupMutavel:    types.RiskRule{Titulo: "backup-mutavel", Probabilidade: 60, Categoria: "moderado"},
	}
}

// perfilSeguro devolve um perfil que não dispara nenhuma regra: firewall
// empresarial, endpoint gerenciado e backup imutável testado.
func perfilSeguro() entity.Profile {
	return entity.Profile{
		Seguranca: entity.SegurancaInfo{
			PossuiFirewall:          true,
			FirewallTipo:            "FortiGate 90G",
			PossuiAntivirusEndpoint: true,
			AntivirusTipo:           "CrowdStrike Falcon",
			AntivirusCategoria:      "EDR",
			AntivirusGerenciado:     true,
		},
		Backup: entity.BackupInfo{
			PossuiBackup:    true,
			TipoBackup:      "imutável em cloud",
			FazTesteRestore: true,
		},
		Conectividade: entity.ConectividadeInfo{
			WifiTipo: entity.WifiSegmentada,
		},
	}
}

func hasFinding(risks []entity.RiskFinding, titulo string) bool {
	for _, r := range risks {
		if r.Titulo == titulo {
			return true
		}
	}
	return false
}

func TestComputeRisksPerfilSeguro(t *testing.T) {
	risks := ComputeRisks(perfilSeguro(), testRiskTable())
	if len(risks) != 0 {
		t.Fatalf("expected no findings for a hardened profile, got %d: %+v", len(risks), risks)
	}
}

func TestComputeRisksFirewall(t *testing.T) {
	table := testRiskTable()

	tests := []struct {
		name      string
		seguranca entity.SegurancaInfo
		want      string
		exclui    string
	}{
		{
			name:      "sem firewall dispara regra de perimetro",
			seguranca: entity.SegurancaInfo{PossuiFirewall: false},
			want:      "sem-firewall",
			exclui:    "firewall-soho",
		},
		{
			name:      "tipo vazio conta como ausencia",
			seguranca: entity.SegurancaInfo{PossuiFirewall: true, FirewallTipo: "  "},
			want:      "sem-firewall",
			exclui:    "firewall-soho",
		},
		{
			name:      "texto nao possui conta como ausencia",
			seguranca: entity.SegurancaInfo{PossuiFirewall: true, FirewallTipo: "Não possui firewall"},
			want:      "sem-firewall",
			exclui:    "firewall-soho",
		},
		{
			name:      "firewall domestico dispara regra soho",
			seguranca: entity.SegurancaInfo{PossuiFirewall: true, FirewallTipo: "Roteador TP-Link Archer"},
			want:      "firewall-soho",
			exclui:    "sem-firewall",
		},
		{
			name:      "token soho em qualquer caixa",
			seguranca: entity.SegurancaInfo{PossuiFirewall: true, FirewallTipo: "Firewall SOHO básico"},
			want:      "firewall-soho",
			exclui:    "sem-firewall",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := perfilSeguro()
			tt.seguranca.PossuiAntivirusEndpoint = true
			tt.seguranca.AntivirusTipo = "CrowdStrike Falcon"
			tt.seguranca.AntivirusCategoria = "EDR"
			tt.seguranca.AntivirusGerenciado = true
			profile.Seguranca = tt.seguranca

			risks := ComputeRisks(profile, table)
			if !hasFinding(risks, tt.want) {
				t.Errorf("expected finding %q, got %+v", tt.want, risks)
			}
			if hasFinding(risks, tt.exclui) {
				t.Errorf("finding %q should not fire, got %+v", tt.exclui, risks)
			}
		})
	}
}

func TestComputeRisksFirewallEmpresarialNaoDispara(t *testing.T) {
	profile := perfilSeguro()
	profile.Seguranca.FirewallTipo = "SonicWall TZ470"

	risks := ComputeRisks(profile, testRiskTable())
	if hasFinding(risks, "sem-firewall") || hasFinding(risks, "firewall-soho") {
		t.Errorf("enterprise firewall should not trigger firewall rules: %+v", risks)
	}
}

func TestComputeRisksVPN(t *testing.T) {
	table := testRiskTable()

	tests := []struct {
		name          string
		conectividade entity.ConectividadeInfo
		querMFA       bool
		querAcessos   bool
	}{
		{
			name: "muitos acessos sem mfa disparam as duas regras",
			conectividade: entity.ConectividadeInfo{
				UsaVPN: true, AcessosVPNQuantidade: 15, UsoVPN: "acesso remoto dos vendedores",
			},
			querMFA:     true,
			querAcessos: true,
		},
		{
			name: "mfa mencionado suprime apenas a regra de credenciais",
			conectividade: entity.ConectividadeInfo{
				UsaVPN: true, AcessosVPNQuantidade: 15, UsoVPN: "acesso remoto com MFA",
			},
			querMFA:     false,
			querAcessos: true,
		},
		{
			name: "duplo fator tambem conta como mfa",
			conectividade: entity.ConectividadeInfo{
				UsaVPN: true, AcessosVPNQuantidade: 5, UsoVPN: "matriz-filial com duplo fator",
			},
			querMFA:     false,
			querAcessos: false,
		},
		{
			name: "limite de acessos e exclusivo",
			conectividade: entity.ConectividadeInfo{
				UsaVPN: true, AcessosVPNQuantidade: 10, UsoVPN: "acesso com 2FA",
			},
			querMFA:     false,
			querAcessos: false,
		},
		{
			name:          "sem vpn nenhuma regra dispara",
			conectividade: entity.ConectividadeInfo{UsaVPN: false, AcessosVPNQuantidade: 50},
			querMFA:       false,
			querAcessos:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := perfilSeguro()
			tt.conectividade.WifiTipo = entity.WifiSegmentada
			profile.Conectividade = tt.conectividade

			risks := ComputeRisks(profile, table)
			if got := hasFinding(risks, "vpn-sem-mfa"); got != tt.querMFA {
				t.Errorf("vpn-sem-mfa = %v, want %v (%+v)", got, tt.querMFA, risks)
			}
			if got := hasFinding(risks, "muitos-acessos-vpn"); got != tt.querAcessos {
				t.Errorf("muitos-acessos-vpn = %v, want %v (%+v)", got, tt.querAcessos, risks)
			}
		})
	}
}

func TestComputeRisksWifi(t *testing.T) {
	table := testRiskTable()

	tests := []struct {
		name         string
		wifi         entity.WifiTipo
		dispositivos int
		quer         bool
	}{
		{"rede unica com muitos dispositivos", entity.WifiUnica, 25, true},
		{"rede unica no limite nao dispara", entity.WifiUnica, 20, false},
		{"rede segmentada nunca dispara", entity.WifiSegmentada, 100, false},
		{"wifi nao informado nao dispara", entity.WifiNaoInformado, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := perfilSeguro()
			profile.Conectividade.WifiTipo = tt.wifi
			profile.Infraestrutura.DispositivosAtuais = tt.dispositivos

			risks := ComputeRisks(profile, table)
			if got := hasFinding(risks, "rede-unica"); got != tt.quer {
				t.Errorf("rede-unica = %v, want %v", got, tt.quer)
			}
		})
	}
}

func TestComputeRisksEndpoint(t *testing.T) {
	table := testRiskTable()

	t.Run("windows defender conta como protecao basica", func(t *testing.T) {
		profile := perfilSeguro()
		profile.Seguranca.AntivirusTipo = "Windows Defender"
		profile.Seguranca.AntivirusCategoria = "EDR"

		risks := ComputeRisks(profile, table)
		if !hasFinding(risks, "antivirus-basico") {
			t.Errorf("expected antivirus-basico: %+v", risks)
		}
	})

	t.Run("categoria por assinatura conta como protecao basica", func(t *testing.T) {
		profile := perfilSeguro()
		profile.Seguranca.AntivirusTipo = "AVG Business"
		profile.Seguranca.AntivirusCategoria = "Assinatura"

		risks := ComputeRisks(profile, table)
		if !hasFinding(risks, "antivirus-basico") {
			t.Errorf("expected antivirus-basico: %+v", risks)
		}
	})

	// A regra de gerenciamento olha apenas a flag, mesmo sem antivírus
	// declarado.
	t.Run("sem gerenciamento dispara mesmo sem antivirus", func(t *testing.T) {
		profile := perfilSeguro()
		profile.Seguranca.PossuiAntivirusEndpoint = false
		profile.Seguranca.AntivirusTipo = ""
		profile.Seguranca.AntivirusCategoria = ""
		profile.Seguranca.AntivirusGerenciado = false

		risks := ComputeRisks(profile, table)
		if !hasFinding(risks, "sem-gerenciamento") {
			t.Errorf("expected sem-gerenciamento: %+v", risks)
		}
	})

	t.Run("endpoint gerenciado nao dispara", func(t *testing.T) {
		risks := ComputeRisks(perfilSeguro(), table)
		if hasFinding(risks, "sem-gerenciamento") {
			t.Errorf("sem-gerenciamento should not fire: %+v", risks)
		}
	})
}

func TestComputeRisksBackup(t *testing.T) {
	table := testRiskTable()

	t.Run("sem backup dispara apenas a regra critica", func(t *testing.T) {
		profile := perfilSeguro()
		profile.Backup = entity.BackupInfo{PossuiBackup: false}

		risks := ComputeRisks(profile, table)
		if !hasFinding(risks, "sem-backup") {
			t.Errorf("expected sem-backup: %+v", risks)
		}
		if hasFinding(risks, "backup-sem-teste") || hasFinding(risks, "backup-mutavel") {
			t.Errorf("secondary backup rules should not fire without backup: %+v", risks)
		}
	})

	t.Run("backup local sem teste dispara as duas secundarias", func(t *testing.T) {
		profile := perfilSeguro()
		profile.Backup = entity.BackupInfo{PossuiBackup: true, TipoBackup: "HD externo local"}

		risks := ComputeRisks(profile, table)
		if hasFinding(risks, "sem-backup") {
			t.Errorf("sem-backup should not fire with backup present: %+v", risks)
		}
		if !hasFinding(risks, "backup-sem-teste") || !hasFinding(risks, "backup-mutavel") {
			t.Errorf("expected backup-sem-teste and backup-mutavel: %+v", risks)
		}
	})

	t.Run("backup offsite testado nao dispara", func(t *testing.T) {
		profile := perfilSeguro()
		profile.Backup = entity.BackupInfo{PossuiBackup: true, TipoBackup: "replicação offsite", FazTesteRestore: true}

		risks := ComputeRisks(profile, table)
		if len(risks) != 0 {
			t.Errorf("expected no backup findings: %+v", risks)
		}
	})
}

func TestComputeRisksOrdenacao(t *testing.T) {
	// Perfil que dispara quase todas as regras.
	profile := entity.Profile{
		Infraestrutura: entity.InfraestruturaInfo{DispositivosAtuais: 30},
		Conectividade: entity.ConectividadeInfo{
			WifiTipo: entity.WifiUnica,
			UsaVPN:   true, AcessosVPNQuantidade: 20, UsoVPN: "acesso remoto",
		},
		Seguranca: entity.SegurancaInfo{
			PossuiFirewall: false,
			AntivirusTipo:  "Windows Defender",
		},
		Backup: entity.BackupInfo{PossuiBackup: true, TipoBackup: "local"},
	}

	risks := ComputeRisks(profile, testRiskTable())
	if len(risks) < 7 {
		t.Fatalf("expected at least 7 findings, got %d: %+v", len(risks), risks)
	}

	for i := 1; i < len(risks); i++ {
		if risks[i].Probabilidade > risks[i-1].Probabilidade {
			t.Errorf("findings out of order at %d: %d%% after %d%%", i, risks[i].Probabilidade, risks[i-1].Probabilidade)
		}
	}

	// Empate em 70%: a ordem de avaliação (VPN antes de backup) é preservada.
	var first70 string
	for _, r := range risks {
		if r.Probabilidade == 70 {
			first70 = r.Titulo
			break
		}
	}
	if first70 != "vpn-sem-mfa" {
		t.Errorf("stable ordering broken: first 70%% finding is %q, want vpn-sem-mfa", first70)
	}
}
