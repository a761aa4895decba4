package entity

// FirewallSuggestion é o equipamento recomendado por marca, derivado da
// demanda agregada de usuários e banda do perfil.
type FirewallSuggestion struct {
	Sonicwall string `json:"sonicwall" yaml:"sonicwall" toml:"sonicwall"`
	Fortinet  string `json:"fortinet" yaml:"fortinet" toml:"fortinet"`
}

// OnboardingStep identifica uma etapa do assistente de onboarding.
type OnboardingStep string

const (
	StepWelcome        OnboardingStep = "welcome"
	StepEmpresa        OnboardingStep = "empresa"
	StepInfraestrutura OnboardingStep = "infraestrutura"
	StepConectividade  OnboardingStep = "conectividade"
	StepSeguranca      OnboardingStep = "seguranca"
	StepBackup         OnboardingStep = "backup"
	StepObjetivos      OnboardingStep = "objetivos"
	StepPresentation   OnboardingStep = "presentation"
)

// OnboardingSteps é a ordem canônica das etapas.
var OnboardingSteps = []OnboardingStep{
	StepWelcome,
	StepEmpresa,
	StepInfraestrutura,
	StepConectividade,
	StepSeguranca,
	StepBackup,
	StepObjetivos,
	StepPresentation,
}

// Next devolve a etapa seguinte; a última etapa é terminal.
func (s OnboardingStep) Next() OnboardingStep {
	for i, step := range OnboardingSteps {
		if step == s && i+1 < len(OnboardingSteps) {
			return OnboardingSteps[i+1]
		}
	}
	return StepPresentation
}
