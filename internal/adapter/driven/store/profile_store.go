// Package store mantém a sessão de onboarding em memória. Existe um
// único escritor lógico (a etapa ativa do assistente), mas o acesso é
// serializado por mutex porque o store é compartilhado entre o usecase e
// a camada de apresentação.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
	"github.com/qostecnologia/concierge-onboarding/internal/domain/repository"
)

// ProfileStore implementa o repository.ProfileRepository.
type ProfileStore struct {
	mu        sync.Mutex
	profile   entity.Profile
	step      entity.OnboardingStep
	sessionID string
}

// NewProfileStore cria uma sessão vazia posicionada na etapa de boas-vindas.
func NewProfileStore() repository.ProfileRepository {
	return &ProfileStore{
		profile:   emptyProfile(),
		step:      entity.StepWelcome,
		sessionID: uuid.NewString(),
	}
}

// emptyProfile devolve o perfil com todos os defaults de seção. As listas
// nascem vazias, nunca nulas, para que a serialização seja estável.
func emptyProfile() entity.Profile {
	return entity.Profile{
		Infraestrutura: entity.InfraestruturaInfo{Links: []entity.LinkInfo{}},
	}
}

// GetProfile devolve um snapshot independente do perfil atual.
func (s *ProfileStore) GetProfile() entity.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

func (s *ProfileStore) UpdateEmpresa(empresa entity.EmpresaInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Empresa = empresa
}

func (s *ProfileStore) UpdateInfraestrutura(infra entity.InfraestruturaInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if infra.Links == nil {
		infra.Links = []entity.LinkInfo{}
	}
	s.profile.Infraestrutura = infra
}

func (s *ProfileStore) UpdateConectividade(conectividade entity.ConectividadeInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Conectividade = conectividade
}

func (s *ProfileStore) UpdateSeguranca(seguranca entity.SegurancaInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Seguranca = seguranca
}

func (s *ProfileStore) UpdateBackup(backup entity.BackupInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Backup = backup
}

func (s *ProfileStore) UpdateObjetivos(objetivos entity.ObjetivosInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Objetivos = objetivos
}

func (s *ProfileStore) UpdateObservacoes(observacoes entity.ObservacoesPorEtapa) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.ObservacoesPorEtapa = observacoes
}

func (s *ProfileStore) SetEquipamentoSugerido(sugestao entity.FirewallSuggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.EquipamentoSugerido = &sugestao
}

// LoadProfile substitui a sessão inteira por um perfil pré-preenchido.
func (s *ProfileStore) LoadProfile(profile entity.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile.Clone()
	if s.profile.Infraestrutura.Links == nil {
		s.profile.Infraestrutura.Links = []entity.LinkInfo{}
	}
}

func (s *ProfileStore) CurrentStep() entity.OnboardingStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *ProfileStore) SetCurrentStep(step entity.OnboardingStep) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = step
}

func (s *ProfileStore) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// Reset restaura o perfil vazio, volta à primeira etapa de coleta e
// inicia uma nova sessão.
func (s *ProfileStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = emptyProfile()
	s.step = entity.StepEmpresa
	s.sessionID = uuid.NewString()
}
