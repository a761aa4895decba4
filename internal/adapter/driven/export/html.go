package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
)

// ExportToHTML gera um documento HTML autocontido com o relatório
// completo, no mesmo tema escuro da apresentação.
func (r *ExportRepositoryImpl) ExportToHTML(report entity.ReportData, filename, outputDir string) (string, error) {
	base, err := baseName(filename, report)
	if err != nil {
		return "", err
	}
	outputFilename, err := generateFilename(base, outputDir, "html")
	if err != nil {
		return "", err
	}

	tpl, err := template.New("report").Funcs(template.FuncMap{
		"moeda":    moeda,
		"roiLabel": roiLabel,
		"simNao":   simNao,
		"wifi":     wifiLabel,
		"upper":    strings.ToUpper,
	}).Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("error parsing HTML template: %w", err)
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating HTML file: %w", err)
	}
	defer file.Close()

	view := htmlView{
		ReportData:  report,
		Objetivos:   objetivosList(report.Profile.Objetivos),
		Observacoes: report.Profile.ObservacoesPorEtapa.Preenchidas(),
	}
	if err := tpl.Execute(file, view); err != nil {
		return "", fmt.Errorf("error rendering HTML report: %w", err)
	}

	return filepath.Abs(outputFilename)
}

type htmlView struct {
	entity.ReportData
	Objetivos   []objetivoItem
	Observacoes []entity.Observacao
}

const reportTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Relatório de Segurança Digital - {{.Profile.Empresa.Nome}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
  background: linear-gradient(135deg, #0B1220 0%, #1a2332 100%);
  color: #D7D8D8; line-height: 1.6; padding: 20px;
}
.container { max-width: 1200px; margin: 0 auto; }
.header, .section {
  margin-bottom: 30px; padding: 25px;
  background: linear-gradient(135deg, #1a2332 0%, #2a3342 100%);
  border-radius: 12px; border: 1px solid #334155;
}
.header { text-align: center; }
.section h2 { color: #3B82F6; margin-bottom: 20px; font-size: 1.5rem; }
.section h3 { color: #60A5FA; margin-bottom: 15px; font-size: 1.2rem; }
.grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); gap: 20px; margin: 20px 0; }
.card { background: #2a3342; padding: 20px; border-radius: 8px; border-left: 4px solid #3B82F6; }
.risk-card { border-left-color: #EF4444; }
.security-card { border-left-color: #10B981; }
.info-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 15px; }
.info-item { background: #334155; padding: 15px; border-radius: 6px; }
.status-active { color: #10B981; font-weight: bold; }
.status-inactive { color: #EF4444; font-weight: bold; }
ul { margin-left: 20px; }
li { margin-bottom: 8px; }
.footer { text-align: center; padding: 20px; background: #1a2332; border-radius: 8px; font-size: 0.9rem; color: #94A3B8; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>Relatório de Segurança Digital</h1>
    <h2>{{.Profile.Empresa.Nome}}</h2>
    <p>Concierge Segurança Digital • SOC 24/7 • NIST Oriented</p>
    <p style="margin-top: 10px; font-size: 0.9rem;">Gerado em: {{.GeneratedAt.Format "02/01/2006"}}</p>
  </div>

  <div class="section">
    <h2>Informações da Empresa</h2>
    <div class="info-grid">
      <div class="info-item"><strong>Nome:</strong> {{.Profile.Empresa.Nome}}</div>
      <div class="info-item"><strong>Setor:</strong> {{.Profile.Empresa.Setor}}</div>
      <div class="info-item"><strong>Usuários Atuais:</strong> {{.Profile.Infraestrutura.UsuariosAtuais}}</div>
      <div class="info-item"><strong>Dispositivos:</strong> {{.Profile.Infraestrutura.DispositivosAtuais}}</div>
      <div class="info-item"><strong>Time TI:</strong> {{.Profile.Infraestrutura.TimeTI}}</div>
      <div class="info-item"><strong>Contato:</strong> {{.Profile.Infraestrutura.ContatoNome}} ({{.Profile.Infraestrutura.ContatoCargo}})</div>
    </div>
  </div>

  <div class="section">
    <h2>Infraestrutura e Conectividade</h2>
    <h3>Links de Internet</h3>
    <div class="grid">
      {{range .Profile.Infraestrutura.Links}}
      <div class="card">
        <strong>Provedor:</strong> {{.Provedor}}<br>
        <strong>Velocidade:</strong> {{.Velocidade}}
        {{if .AumentoPretendido}}<br><strong>Nova Velocidade:</strong> {{.NovaVelocidade}}{{end}}
      </div>
      {{end}}
    </div>
    <h3>WiFi e Rede</h3>
    <div class="info-grid">
      <div class="info-item"><strong>Tipo WiFi:</strong> {{wifi .Profile.Conectividade.WifiTipo}}</div>
      <div class="info-item"><strong>Quantidade APs:</strong> {{.Profile.Conectividade.APsQuantidade}}</div>
      <div class="info-item"><strong>Marca AP:</strong> {{.Profile.Conectividade.APMarca}}</div>
      <div class="info-item"><strong>Modelo AP:</strong> {{.Profile.Conectividade.APModelo}}</div>
      <div class="info-item"><strong>Switch Gerenciável:</strong> {{simNao .Profile.Conectividade.SwitchGerenciavel}}</div>
      <div class="info-item"><strong>SaaS/IaaS:</strong> {{if .Profile.Conectividade.PossuiSaaSIaaS}}{{.Profile.Conectividade.ServicoSaaSIaaS}}{{else}}Não possui{{end}}</div>
    </div>
    {{if .Profile.Conectividade.UsaVPN}}
    <h3>VPN</h3>
    <div class="info-grid">
      <div class="info-item"><strong>Acessos VPN:</strong> {{.Profile.Conectividade.AcessosVPNQuantidade}}</div>
      <div class="info-item"><strong>Uso VPN:</strong> {{.Profile.Conectividade.UsoVPN}}</div>
    </div>
    {{end}}
  </div>

  <div class="section">
    <h2>Segurança Atual</h2>
    <div class="grid">
      <div class="card security-card">
        <h3>Firewall</h3>
        {{if .Profile.Seguranca.PossuiFirewall}}
        <p><strong>Tipo:</strong> {{.Profile.Seguranca.FirewallTipo}}</p>
        <p><strong>Modelo:</strong> {{.Profile.Seguranca.FirewallModelo}}</p>
        <p><strong>Status:</strong> {{.Profile.Seguranca.FirewallLocadoOuComprado}}</p>
        <p><strong>Licença:</strong> {{if .Profile.Seguranca.FirewallLicencaAtiva}}<span class="status-active">Ativa</span>{{else}}<span class="status-inactive">Inativa</span>{{end}}</p>
        {{else}}<p class="status-inactive">Não possui firewall</p>{{end}}
      </div>
      <div class="card security-card">
        <h3>Antivírus/Endpoint</h3>
        {{if .Profile.Seguranca.PossuiAntivirusEndpoint}}
        <p><strong>Tipo:</strong> {{.Profile.Seguranca.AntivirusTipo}}</p>
        <p><strong>Categoria:</strong> {{.Profile.Seguranca.AntivirusCategoria}}</p>
        <p><strong>Gerenciamento:</strong> {{if .Profile.Seguranca.AntivirusGerenciado}}Gerenciado{{else}}Não Gerenciado{{end}}</p>
        {{else}}<p class="status-inactive">Não possui antivírus</p>{{end}}
      </div>
      <div class="card security-card">
        <h3>Backup</h3>
        {{if .Profile.Backup.PossuiBackup}}
        <p><strong>Tipo:</strong> {{.Profile.Backup.TipoBackup}}</p>
        <p><strong>Gerenciável:</strong> {{simNao .Profile.Backup.BackupGerenciavel}}</p>
        <p><strong>Teste Restore:</strong> {{simNao .Profile.Backup.FazTesteRestore}}</p>
        {{else}}<p class="status-inactive">Não possui backup</p>{{end}}
      </div>
    </div>
  </div>

  <div class="section">
    <h2>Riscos Identificados</h2>
    <div class="grid">
      {{range .Riscos}}
      <div class="card risk-card">
        <h3>{{.Titulo}}</h3>
        <p><strong>Probabilidade:</strong> {{.Probabilidade}}%</p>
        <p><strong>Categoria:</strong> {{upper (printf "%s" .Categoria)}}</p>
        <p><strong>Explicação:</strong> {{.Explicacao}}</p>
        <p><strong>Fator Causador:</strong> {{.FatorCausador}}</p>
        <p><strong>Mitigação Sugerida:</strong> {{.MitigacaoSugerida}}</p>
      </div>
      {{end}}
    </div>
  </div>

  <div class="section">
    <h2>ROI e Impacto Financeiro</h2>
    <div class="info-grid">
      <div class="info-item"><strong>Perda esperada sem controles:</strong> {{moeda .ROI.PerdaEsperadaSemControles}}</div>
      <div class="info-item"><strong>Perda com controles combinados:</strong> {{moeda .ROI.PerdaCombinada}}</div>
      <div class="info-item"><strong>Custo anual da solução:</strong> {{moeda .ROI.CustoAnualSolucao}}</div>
      <div class="info-item"><strong>Perda evitada:</strong> {{moeda .ROI.PerdaEvitada}}</div>
      <div class="info-item"><strong>ROI anual:</strong> {{roiLabel .ROI.ROIPercentual}}</div>
    </div>
  </div>

  {{if or .Equipamento.Sonicwall .Equipamento.Fortinet}}
  <div class="section">
    <h2>Equipamento Recomendado</h2>
    <div class="info-grid">
      <div class="info-item"><strong>SonicWall:</strong> {{.Equipamento.Sonicwall}}</div>
      <div class="info-item"><strong>Fortinet:</strong> {{.Equipamento.Fortinet}}</div>
    </div>
  </div>
  {{end}}

  <div class="section">
    <h2>Objetivos de Segurança</h2>
    <ul>
      {{range .Objetivos}}
      <li>{{if .Selecionado}}&#9989;{{else}}&#10060;{{end}} {{.Label}}</li>
      {{end}}
    </ul>
  </div>

  {{if .Observacoes}}
  <div class="section">
    <h2>Observações por Etapa</h2>
    {{range .Observacoes}}
    <div class="card">
      <h3>{{.Etapa}}</h3>
      <p>{{.Nota}}</p>
    </div>
    {{end}}
  </div>
  {{end}}

  <div class="footer">
    <p><strong>Concierge Segurança Digital</strong></p>
    <p>Este relatório foi gerado automaticamente a partir das informações coletadas durante o processo de avaliação.</p>
  </div>
</div>
</body>
</html>
`
