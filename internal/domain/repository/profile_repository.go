package repository

import (
	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
)

// ProfileRepository é o store da sessão de onboarding: um único Profile
// em memória, mutado apenas por substituição integral de seção. Não há
// setters de campo individual; isso garante que uma seção nunca fique
// parcialmente escrita.
type ProfileRepository interface {
	// GetProfile devolve um snapshot (cópia profunda) do perfil atual.
	GetProfile() entity.Profile

	UpdateEmpresa(empresa entity.EmpresaInfo)
	UpdateInfraestrutura(infra entity.InfraestruturaInfo)
	UpdateConectividade(conectividade entity.ConectividadeInfo)
	UpdateSeguranca(seguranca entity.SegurancaInfo)
	UpdateBackup(backup entity.BackupInfo)
	UpdateObjetivos(objetivos entity.ObjetivosInfo)
	UpdateObservacoes(observacoes entity.ObservacoesPorEtapa)
	SetEquipamentoSugerido(sugestao entity.FirewallSuggestion)

	// LoadProfile substitui o perfil inteiro (pré-preenchimento por
	// arquivo de intake).
	LoadProfile(profile entity.Profile)

	CurrentStep() entity.OnboardingStep
	SetCurrentStep(step entity.OnboardingStep)

	// SessionID identifica a sessão corrente; muda a cada Reset.
	SessionID() string

	// Reset restaura o perfil vazio e volta à primeira etapa de coleta.
	Reset()
}
