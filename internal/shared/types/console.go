package types

// ConsoleInterface define a interface para entrada e saída no terminal.
// O assistente de onboarding conversa com o usuário exclusivamente por
// aqui, o que permite testar o fluxo com um console falso.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	AskText(label, defaultValue string) string
	AskInt(label string, defaultValue int) int
	AskConfirm(label string, defaultValue bool) bool
	AskSelect(label string, options []string, defaultOption string) string

	Status(message string) StatusHandle
	Progress(total int) ProgressHandle

	CreateTable() TableInterface
	DisplayRiskBars(bars []RiskBar)
	DisplaySection(title, content string)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle é uma interface para atualizar uma barra de progresso.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// RiskBar representa um risco para o gráfico de barras de probabilidade.
type RiskBar struct {
	Titulo        string `json:"titulo"`
	Probabilidade int    `json:"probabilidade"`
	Categoria     string `json:"categoria"`
}
