package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
	"github.com/qostecnologia/concierge-onboarding/internal/domain/repository"
	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Exportação JSON ---

func (r *ExportRepositoryImpl) ExportToJSON(report entity.ReportData, filename, outputDir string) (string, error) {
	base, err := baseName(filename, report)
	if err != nil {
		return "", err
	}
	outputFilename, err := generateFilename(base, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Exportação CSV (riscos identificados) ---

func (r *ExportRepositoryImpl) ExportRisksToCSV(report entity.ReportData, filename, outputDir string) (string, error) {
	base, err := baseName(filename, report)
	if err != nil {
		return "", err
	}
	outputFilename, err := generateFilename(base, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Título", "Categoria", "Probabilidade (%)", "Fator Causador", "Explicação", "Mitigação Sugerida",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, risco := range report.Riscos {
		record := []string{
			risco.Titulo,
			string(risco.Categoria),
			strconv.Itoa(risco.Probabilidade),
			risco.FatorCausador,
			risco.Explicacao,
			risco.MitigacaoSugerida,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

// --- Exportação PDF ---

func (r *ExportRepositoryImpl) ExportToPDF(report entity.ReportData, filename, outputDir string) (string, error) {
	base, err := baseName(filename, report)
	if err != nil {
		return "", err
	}
	outputFilename, err := generateFilename(base, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{26, 35, 50}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{59, 130, 246}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Relatório de Segurança Digital: %s", report.Profile.Empresa.Nome)), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Setor: %s  |  Gerado em: %s", report.Profile.Empresa.Setor, report.GeneratedAt.Format("02/01/2006"))), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	drawSection("Informações da Empresa", empresaContent(report.Profile))
	drawSection("Infraestrutura e Conectividade", infraContent(report.Profile))
	drawSection("Segurança Atual", segurancaContent(report.Profile))
	drawSection("Riscos Identificados", riscosContent(report.Riscos))
	drawSection("ROI e Impacto Financeiro", roiContent(report.ROI))
	drawSection("Equipamento Recomendado", equipamentoContent(report.Equipamento))
	drawSection("Objetivos de Segurança", objetivosContent(report.Profile.Objetivos))
	drawSection("Notas Internas", observacoesContent(report.Profile.ObservacoesPorEtapa))

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Concierge Segurança Digital | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Relatório %s", report.ReportID)), "", 0, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Conteúdo das seções (compartilhado entre PDF e terminal) ---

func empresaContent(p entity.Profile) string {
	return strings.Join([]string{
		fmt.Sprintf("Nome: %s", p.Empresa.Nome),
		fmt.Sprintf("Setor: %s", p.Empresa.Setor),
		fmt.Sprintf("Usuários Atuais: %d", p.Infraestrutura.UsuariosAtuais),
		fmt.Sprintf("Dispositivos: %d", p.Infraestrutura.DispositivosAtuais),
		fmt.Sprintf("Time TI: %d", p.Infraestrutura.TimeTI),
		fmt.Sprintf("Contato: %s (%s)", p.Infraestrutura.ContatoNome, p.Infraestrutura.ContatoCargo),
	}, "\n")
}

func infraContent(p entity.Profile) string {
	lines := []string{"Links de Internet:"}
	for i, link := range p.Infraestrutura.Links {
		lines = append(lines,
			fmt.Sprintf("%d. Provedor: %s", i+1, link.Provedor),
			fmt.Sprintf("   Velocidade: %s", link.Velocidade))
		if link.AumentoPretendido && link.NovaVelocidade != "" {
			lines = append(lines, fmt.Sprintf("   Nova Velocidade Pretendida: %s", link.NovaVelocidade))
		}
	}
	if len(p.Infraestrutura.Links) == 0 {
		lines = append(lines, "Nenhum link declarado")
	}

	lines = append(lines,
		"",
		"WiFi e Rede:",
		fmt.Sprintf("Tipo WiFi: %s", wifiLabel(p.Conectividade.WifiTipo)),
		fmt.Sprintf("Quantidade APs: %d", p.Conectividade.APsQuantidade),
		fmt.Sprintf("Marca AP: %s", p.Conectividade.APMarca),
		fmt.Sprintf("Modelo AP: %s", p.Conectividade.APModelo),
		fmt.Sprintf("Switch Gerenciável: %s", simNao(p.Conectividade.SwitchGerenciavel)),
	)
	if p.Conectividade.PossuiSaaSIaaS {
		lines = append(lines, fmt.Sprintf("SaaS/IaaS: %s", p.Conectividade.ServicoSaaSIaaS))
	} else {
		lines = append(lines, "SaaS/IaaS: Não possui")
	}

	if p.Conectividade.UsaVPN {
		lines = append(lines,
			"",
			"VPN:",
			fmt.Sprintf("Acessos VPN: %d", p.Conectividade.AcessosVPNQuantidade),
			fmt.Sprintf("Uso VPN: %s", p.Conectividade.UsoVPN),
		)
	}
	return strings.Join(lines, "\n")
}

func segurancaContent(p entity.Profile) string {
	lines := []string{"Firewall:"}
	if p.Seguranca.PossuiFirewall {
		lines = append(lines,
			fmt.Sprintf("Tipo: %s", p.Seguranca.FirewallTipo),
			fmt.Sprintf("Modelo: %s", p.Seguranca.FirewallModelo),
			fmt.Sprintf("Status: %s", p.Seguranca.FirewallLocadoOuComprado),
			fmt.Sprintf("Licença: %s", ativaInativa(p.Seguranca.FirewallLicencaAtiva)),
		)
	} else {
		lines = append(lines, "Não possui firewall")
	}

	lines = append(lines, "", "Antivírus/Endpoint:")
	if p.Seguranca.PossuiAntivirusEndpoint {
		gerenciamento := "Não Gerenciado"
		if p.Seguranca.AntivirusGerenciado {
			gerenciamento = "Gerenciado"
		}
		lines = append(lines,
			fmt.Sprintf("Tipo: %s", p.Seguranca.AntivirusTipo),
			fmt.Sprintf("Categoria: %s", p.Seguranca.AntivirusCategoria),
			fmt.Sprintf("Gerenciamento: %s", gerenciamento),
		)
	} else {
		lines = append(lines, "Não possui antivírus")
	}

	lines = append(lines, "", "Backup:")
	if p.Backup.PossuiBackup {
		lines = append(lines,
			fmt.Sprintf("Tipo: %s", p.Backup.TipoBackup),
			fmt.Sprintf("Gerenciável: %s", simNao(p.Backup.BackupGerenciavel)),
			fmt.Sprintf("Teste Restore: %s", simNao(p.Backup.FazTesteRestore)),
		)
	} else {
		lines = append(lines, "Não possui backup")
	}
	return strings.Join(lines, "\n")
}

func riscosContent(riscos []entity.RiskFinding) string {
	if len(riscos) == 0 {
		return "Nenhum risco identificado"
	}
	lines := []string{}
	for i, risco := range riscos {
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, risco.Titulo),
			fmt.Sprintf("Probabilidade: %d%%", risco.Probabilidade),
			fmt.Sprintf("Categoria: %s", strings.ToUpper(string(risco.Categoria))),
			fmt.Sprintf("Explicação: %s", risco.Explicacao),
			fmt.Sprintf("Fator Causador: %s", risco.FatorCausador),
			fmt.Sprintf("Mitigação Sugerida: %s", risco.MitigacaoSugerida),
			"")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func roiContent(roi entity.ROIResult) string {
	return strings.Join([]string{
		fmt.Sprintf("Perda esperada sem controles: %s", moeda(roi.PerdaEsperadaSemControles)),
		fmt.Sprintf("Perda com firewall: %s", moeda(roi.PerdaComFirewall)),
		fmt.Sprintf("Perda com endpoint: %s", moeda(roi.PerdaComEndpoint)),
		fmt.Sprintf("Perda com backup: %s", moeda(roi.PerdaComBackup)),
		fmt.Sprintf("Perda com controles combinados: %s", moeda(roi.PerdaCombinada)),
		fmt.Sprintf("Custo anual da solução: %s (implantação %s + 12x %s)",
			moeda(roi.CustoAnualSolucao), moeda(roi.CustoImplantacao), moeda(roi.CustoMensal)),
		fmt.Sprintf("Perda evitada: %s", moeda(roi.PerdaEvitada)),
		fmt.Sprintf("ROI anual: %s", roiLabel(roi.ROIPercentual)),
	}, "\n")
}

func equipamentoContent(s entity.FirewallSuggestion) string {
	if s.Sonicwall == "" && s.Fortinet == "" {
		return ""
	}
	return fmt.Sprintf("SonicWall: %s\nFortinet: %s", s.Sonicwall, s.Fortinet)
}

func objetivosContent(o entity.ObjetivosInfo) string {
	lines := []string{}
	for _, item := range objetivosList(o) {
		marcador := "[ ]"
		if item.Selecionado {
			marcador = "[x]"
		}
		lines = append(lines, fmt.Sprintf("%s %s", marcador, item.Label))
	}
	return strings.Join(lines, "\n")
}

func observacoesContent(o entity.ObservacoesPorEtapa) string {
	lines := []string{}
	for _, obs := range o.Preenchidas() {
		lines = append(lines, fmt.Sprintf("%s: %s", obs.Etapa, obs.Nota))
	}
	return strings.Join(lines, "\n")
}

// objetivoItem associa um objetivo ao rótulo exibido nos relatórios.
type objetivoItem struct {
	Label       string
	Selecionado bool
}

func objetivosList(o entity.ObjetivosInfo) []objetivoItem {
	return []objetivoItem{
		{"Conformidade LGPD", o.LGPD},
		{"VPN Segura", o.VPNSegura},
		{"Backup Imutável", o.BackupImutavel},
		{"Gestão de Incidentes", o.GestaoIncidentes},
		{"Reduzir Riscos Cibernéticos", o.ReduzirRiscos},
		{"Proteção de Endpoints", o.ProtecaoEndpoints},
		{"Monitoramento 24/7", o.Monitoramento247},
		{"Auditoria e Compliance", o.AuditoriaCompliance},
	}
}

// --- Funções Auxiliares ---

// baseName resolve o nome do artefato: o nome pedido pelo usuário ou, na
// ausência dele, o nome da empresa slugificado.
func baseName(filename string, report entity.ReportData) (string, error) {
	if filename != "" {
		return filename, nil
	}
	slug := Slugify(report.Profile.Empresa.Nome)
	if slug == "" {
		return "", types.ErrEmptyCompanyName
	}
	return "relatorio-seguranca-" + slug, nil
}

// generateFilename monta o caminho do artefato e garante que o diretório
// exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", base, ext)), nil
}

var slugInvalidRegex = regexp.MustCompile(`[^a-z0-9-]+`)
var slugDashRegex = regexp.MustCompile(`-+`)

// Slugify normaliza um nome de empresa para uso em nome de arquivo:
// minúsculas, espaços viram hífens, o resto é descartado.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugInvalidRegex.ReplaceAllString(slug, "")
	slug = slugDashRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func moeda(v float64) string {
	if math.IsNaN(v) {
		return "indefinido"
	}
	return fmt.Sprintf("R$ %.2f", v)
}

func roiLabel(v float64) string {
	if math.IsNaN(v) {
		return "indefinido (custo anual zero)"
	}
	return fmt.Sprintf("%.1f%%", v)
}

func simNao(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}

func ativaInativa(v bool) string {
	if v {
		return "Ativa"
	}
	return "Inativa"
}

func wifiLabel(t entity.WifiTipo) string {
	switch t {
	case entity.WifiSegmentada:
		return "Segmentada"
	case entity.WifiUnica:
		return "Única"
	default:
		return "Não informado"
	}
}
