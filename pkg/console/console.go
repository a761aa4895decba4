package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Cores predefinidas para uso consistente
var (
	BoldRed      = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// AskText pergunta um texto livre, com valor padrão.
func (c *Console) AskText(label, defaultValue string) string {
	value, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defaultValue).
		Show(label)
	if err != nil {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

// AskInt pergunta um número inteiro; entrada não numérica cai no padrão.
func (c *Console) AskInt(label string, defaultValue int) int {
	value := c.AskText(label, strconv.Itoa(defaultValue))
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		pterm.Warning.Printfln("Valor '%s' não é um número; usando %d", value, defaultValue)
		return defaultValue
	}
	return parsed
}

// AskConfirm pergunta sim/não.
func (c *Console) AskConfirm(label string, defaultValue bool) bool {
	value, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultValue).
		Show(label)
	if err != nil {
		return defaultValue
	}
	return value
}

// AskSelect pergunta uma escolha entre opções fixas.
func (c *Console) AskSelect(label string, options []string, defaultOption string) string {
	value, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(defaultOption).
		Show(label)
	if err != nil {
		return defaultOption
	}
	return value
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// Progress cria a barra de progresso das etapas do onboarding.
func (c *Console) Progress(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Etapas do onboarding").
		WithShowCount(true).
		WithRemoveWhenDone(true).
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayRiskBars exibe os riscos identificados como barras de
// probabilidade, coloridas por severidade.
func (c *Console) DisplayRiskBars(bars []types.RiskBar) {
	if len(bars) == 0 {
		pterm.Success.Println("Nenhum risco identificado para este perfil")
		return
	}

	tableData := pterm.TableData{
		{"Risco", "Probabilidade", "", "Categoria"},
	}

	for _, rb := range bars {
		// Escala fixa: probabilidade é sempre 0-100
		barLength := rb.Probabilidade * 40 / 100
		bar := strings.Repeat("█", barLength)

		var coloredBar, categoria string
		switch rb.Categoria {
		case "alto":
			coloredBar = pterm.FgRed.Sprint(bar)
			categoria = pterm.FgRed.Sprint("ALTO")
		case "moderado":
			coloredBar = pterm.FgYellow.Sprint(bar)
			categoria = pterm.FgYellow.Sprint("MODERADO")
		default:
			coloredBar = pterm.FgGreen.Sprint(bar)
			categoria = pterm.FgGreen.Sprint("BAIXO")
		}

		tableData = append(tableData, []string{
			rb.Titulo,
			fmt.Sprintf("%d%%", rb.Probabilidade),
			coloredBar,
			categoria,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.
		WithTitle("Riscos Identificados").
		WithBoxStyle(pterm.NewStyle(pterm.FgRed)).
		Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// DisplaySection exibe um bloco de conteúdo em um painel nomeado.
func (c *Console) DisplaySection(title, content string) {
	if content == "" {
		return
	}
	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(content)
	fmt.Println("\n" + panel)
}
