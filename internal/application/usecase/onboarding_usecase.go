package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
	"github.com/qostecnologia/concierge-onboarding/internal/domain/repository"
	"github.com/qostecnologia/concierge-onboarding/internal/domain/service"
	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
)

// OnboardingUseCase conduz o assistente de onboarding de ponta a ponta:
// coleta o perfil etapa a etapa, deriva riscos, ROI e equipamento, e
// apresenta e exporta o relatório final.
type OnboardingUseCase struct {
	profileRepo repository.ProfileRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewOnboardingUseCase creates a new onboarding use case.
func NewOnboardingUseCase(
	profileRepo repository.ProfileRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *OnboardingUseCase {
	return &OnboardingUseCase{
		profileRepo: profileRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// RunOnboarding executa a funcionalidade principal do assistente.
func (uc *OnboardingUseCase) RunOnboarding(ctx context.Context, args *types.CLIArgs) error {
	params, err := uc.configRepo.LoadParameters(args.ConfigFile)
	if err != nil {
		return err
	}

	if args.IntakeFile != "" {
		status := uc.console.Status("Loading intake file...")
		profile, err := uc.configRepo.LoadIntakeFile(args.IntakeFile)
		status.Stop()
		if err != nil {
			return err
		}
		uc.profileRepo.LoadProfile(*profile)
		uc.profileRepo.SetCurrentStep(entity.StepPresentation)
		uc.console.LogSuccess("Profile loaded from %s", args.IntakeFile)
	} else if args.ExportOnly {
		return types.ErrIntakeFileRequired
	}

	if args.ExportOnly {
		report := uc.buildReport(params)
		return uc.exportReport(report, args.ReportType, args)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		step := uc.profileRepo.CurrentStep()
		switch step {
		case entity.StepWelcome:
			uc.showWelcome()
		case entity.StepEmpresa:
			uc.collectEmpresa()
		case entity.StepInfraestrutura:
			uc.collectInfraestrutura()
		case entity.StepConectividade:
			uc.collectConectividade()
		case entity.StepSeguranca:
			uc.collectSeguranca()
		case entity.StepBackup:
			uc.collectBackup()
			// A primeira sugestão de equipamento sai aqui; buildReport
			// recalcula antes da apresentação caso algo seja editado.
			uc.profileRepo.SetEquipamentoSugerido(
				service.SuggestFirewall(uc.profileRepo.GetProfile(), params.Catalogo))
		case entity.StepObjetivos:
			uc.collectObjetivos()
		case entity.StepPresentation:
			report := uc.buildReport(params)
			uc.renderPresentation(report)
			done, err := uc.presentationMenu(report, args)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			continue
		}
		if step != entity.StepPresentation {
			uc.profileRepo.SetCurrentStep(step.Next())
		}
	}
}

// buildReport fecha um snapshot do perfil com todas as saídas derivadas.
// A sugestão de equipamento é recalculada aqui para que edições tardias
// de infraestrutura nunca deixem uma recomendação obsoleta no relatório.
func (uc *OnboardingUseCase) buildReport(params types.Parameters) entity.ReportData {
	sugestao := service.SuggestFirewall(uc.profileRepo.GetProfile(), params.Catalogo)
	uc.profileRepo.SetEquipamentoSugerido(sugestao)
	profile := uc.profileRepo.GetProfile()

	return entity.ReportData{
		ReportID:    uuid.NewString(),
		SessionID:   uc.profileRepo.SessionID(),
		GeneratedAt: time.Now(),
		Profile:     profile,
		Riscos:      service.ComputeRisks(profile, params.Riscos),
		ROI:         service.CalculateROI(params.ROI),
		Equipamento: sugestao,
	}
}

// --- Etapas de coleta ---

func (uc *OnboardingUseCase) showWelcome() {
	uc.console.DisplaySection("Concierge Segurança Digital", strings.Join([]string{
		"Bem-vindo ao assistente de onboarding.",
		"",
		"Nas próximas 6 etapas vamos levantar o perfil de segurança do",
		"cliente: empresa, infraestrutura, conectividade, controles atuais,",
		"backup e objetivos. Ao final, o assistente apresenta os riscos",
		"identificados, o retorno do investimento e o firewall recomendado.",
	}, "\n"))
}

func (uc *OnboardingUseCase) collectEmpresa() {
	p := uc.profileRepo.GetProfile()
	uc.console.DisplaySection("Etapa 1 de 6", "Informações da Empresa")

	empresa := entity.EmpresaInfo{
		Nome:           uc.console.AskText("Nome da empresa", p.Empresa.Nome),
		Setor:          uc.console.AskText("Setor de atuação", p.Empresa.Setor),
		LogoClienteURL: uc.console.AskText("URL do logo do cliente (opcional)", p.Empresa.LogoClienteURL),
	}
	uc.profileRepo.UpdateEmpresa(empresa)
	uc.askObservacao(1)
}

func (uc *OnboardingUseCase) collectInfraestrutura() {
	p := uc.profileRepo.GetProfile()
	uc.console.DisplaySection("Etapa 2 de 6", "Infraestrutura")

	infra := p.Infraestrutura
	infra.UsuariosAtuais = uc.console.AskInt("Quantos usuários a empresa tem hoje?", infra.UsuariosAtuais)
	infra.UsuariosPretensao = uc.console.AskConfirm("Há pretensão de aumentar o número de usuários?", infra.UsuariosPretensao)
	if infra.UsuariosPretensao {
		infra.UsuariosEstimativa = uc.console.AskInt("Quantos usuários adicionais são estimados?", infra.UsuariosEstimativa)
	} else {
		infra.UsuariosEstimativa = 0
	}

	infra.DispositivosAtuais = uc.console.AskInt("Quantos dispositivos conectados hoje?", infra.DispositivosAtuais)
	infra.DispositivosPretensao = uc.console.AskConfirm("Há pretensão de aumentar o número de dispositivos?", infra.DispositivosPretensao)
	if infra.DispositivosPretensao {
		infra.DispositivosEstimativa = uc.console.AskInt("Quantos dispositivos adicionais são estimados?", infra.DispositivosEstimativa)
	} else {
		infra.DispositivosEstimativa = 0
	}

	infra.Links = uc.collectLinks(infra.Links)

	infra.TimeTI = uc.console.AskInt("Quantas pessoas no time de TI?", infra.TimeTI)
	infra.ContatoNome = uc.console.AskText("Nome do contato técnico", infra.ContatoNome)
	infra.ContatoCargo = uc.console.AskText("Cargo do contato técnico", infra.ContatoCargo)
	infra.PerfilUso = uc.askPerfilUso(infra.PerfilUso)

	uc.profileRepo.UpdateInfraestrutura(infra)
	uc.askObservacao(2)
}

// collectLinks redeclara os links de internet do zero a cada passagem.
// Editar um link individual não vale a complexidade: a lista é curta.
func (uc *OnboardingUseCase) collectLinks(atuais []entity.LinkInfo) []entity.LinkInfo {
	if len(atuais) > 0 {
		uc.console.LogInfo("%d link(s) de internet declarados; a lista será redeclarada.", len(atuais))
	}

	links := []entity.LinkInfo{}
	for {
		if !uc.console.AskConfirm(fmt.Sprintf("Adicionar link de internet #%d?", len(links)+1), len(links) == 0) {
			break
		}
		link := entity.LinkInfo{
			Provedor:   uc.console.AskText("Provedor do link", ""),
			Velocidade: uc.console.AskText("Velocidade contratada (ex.: 500 Mbps, 1 Gbps)", ""),
		}
		link.AumentoPretendido = uc.console.AskConfirm("Há pretensão de aumentar este link?", false)
		if link.AumentoPretendido {
			link.NovaVelocidade = uc.console.AskText("Nova velocidade pretendida", "")
		}
		links = append(links, link)
	}
	return links
}

func (uc *OnboardingUseCase) collectConectividade() {
	p := uc.profileRepo.GetProfile()
	uc.console.DisplaySection("Etapa 3 de 6", "Conectividade")

	con := p.Conectividade
	con.WifiTipo = uc.askWifiTipo(con.WifiTipo)
	con.APsQuantidade = uc.console.AskInt("Quantos access points?", con.APsQuantidade)
	con.APMarca = uc.console.AskText("Marca dos access points", con.APMarca)
	con.APModelo = uc.console.AskText("Modelo dos access points", con.APModelo)
	con.SwitchGerenciavel = uc.console.AskConfirm("O switch é gerenciável?", con.SwitchGerenciavel)

	con.PossuiSaaSIaaS = uc.console.AskConfirm("A empresa usa serviços SaaS/IaaS?", con.PossuiSaaSIaaS)
	if con.PossuiSaaSIaaS {
		con.ServicoSaaSIaaS = uc.console.AskText("Quais serviços SaaS/IaaS?", con.ServicoSaaSIaaS)
	} else {
		con.ServicoSaaSIaaS = ""
	}

	con.UsaVPN = uc.console.AskConfirm("A empresa usa VPN?", con.UsaVPN)
	if con.UsaVPN {
		con.AcessosVPNQuantidade = uc.console.AskInt("Quantos acessos VPN simultâneos?", con.AcessosVPNQuantidade)
		con.UsoVPN = uc.console.AskText("Como a VPN é usada (acesso remoto, matriz-filial, MFA...)?", con.UsoVPN)
	} else {
		con.AcessosVPNQuantidade = 0
		con.UsoVPN = ""
	}

	uc.profileRepo.UpdateConectividade(con)
	uc.askObservacao(3)
}

func (uc *OnboardingUseCase) collectSeguranca() {
	p := uc.profileRepo.GetProfile()
	uc.console.DisplaySection("Etapa 4 de 6", "Segurança Atual")

	seg := p.Seguranca
	seg.PossuiFirewall = uc.console.AskConfirm("A empresa possui firewall?", seg.PossuiFirewall)
	if seg.PossuiFirewall {
		seg.FirewallTipo = uc.console.AskText("Tipo/marca do firewall", seg.FirewallTipo)
		seg.FirewallModelo = uc.console.AskText("Modelo do firewall", seg.FirewallModelo)
		seg.FirewallLocadoOuComprado = uc.console.AskSelect("O firewall é locado ou comprado?",
			[]string{"locado", "comprado"}, valueOr(seg.FirewallLocadoOuComprado, "comprado"))
		seg.FirewallLicencaAtiva = uc.console.AskConfirm("A licença do firewall está ativa?", seg.FirewallLicencaAtiva)
	} else {
		seg.FirewallTipo = ""
		seg.FirewallModelo = ""
		seg.FirewallLocadoOuComprado = ""
		seg.FirewallLicencaAtiva = false
	}

	seg.PossuiAntivirusEndpoint = uc.console.AskConfirm("A empresa possui antivírus/endpoint?", seg.PossuiAntivirusEndpoint)
	if seg.PossuiAntivirusEndpoint {
		seg.AntivirusTipo = uc.console.AskText("Qual antivírus/endpoint?", seg.AntivirusTipo)
		seg.AntivirusCategoria = uc.console.AskText("Categoria (ex.: assinatura, EDR, XDR)", seg.AntivirusCategoria)
		seg.AntivirusGerenciado = uc.console.AskConfirm("O endpoint é gerenciado centralmente?", seg.AntivirusGerenciado)
	} else {
		seg.AntivirusTipo = ""
		seg.AntivirusCategoria = ""
		seg.AntivirusGerenciado = false
	}

	uc.profileRepo.UpdateSeguranca(seg)
	uc.askObservacao(4)
}

func (uc *OnboardingUseCase) collectBackup() {
	p := uc.profileRepo.GetProfile()
	uc.console.DisplaySection("Etapa 5 de 6", "Backup")

	bkp := p.Backup
	bkp.PossuiBackup = uc.console.AskConfirm("A empresa possui backup?", bkp.PossuiBackup)
	if bkp.PossuiBackup {
		bkp.TipoBackup = uc.console.AskText("Tipo de backup (ex.: local, cloud, imutável, offsite)", bkp.TipoBackup)
		bkp.BackupGerenciavel = uc.console.AskConfirm("O backup é gerenciável?", bkp.BackupGerenciavel)
		bkp.FazTesteRestore = uc.console.AskConfirm("São feitos testes de restore?", bkp.FazTesteRestore)
	} else {
		bkp.TipoBackup = ""
		bkp.BackupGerenciavel = false
		bkp.FazTesteRestore = false
	}

	uc.profileRepo.UpdateBackup(bkp)
	uc.askObservacao(5)
}

func (uc *OnboardingUseCase) collectObjetivos() {
	p := uc.profileRepo.GetProfile()
	uc.console.DisplaySection("Etapa 6 de 6", "Objetivos de Segurança")

	obj := p.Objetivos
	obj.LGPD = uc.console.AskConfirm("Conformidade LGPD?", obj.LGPD)
	obj.VPNSegura = uc.console.AskConfirm("VPN segura?", obj.VPNSegura)
	obj.BackupImutavel = uc.console.AskConfirm("Backup imutável?", obj.BackupImutavel)
	obj.GestaoIncidentes = uc.console.AskConfirm("Gestão de incidentes?", obj.GestaoIncidentes)
	obj.ReduzirRiscos = uc.console.AskConfirm("Reduzir riscos cibernéticos?", obj.ReduzirRiscos)
	obj.ProtecaoEndpoints = uc.console.AskConfirm("Proteção de endpoints?", obj.ProtecaoEndpoints)
	obj.Monitoramento247 = uc.console.AskConfirm("Monitoramento 24/7?", obj.Monitoramento247)
	obj.AuditoriaCompliance = uc.console.AskConfirm("Auditoria e compliance?", obj.AuditoriaCompliance)

	uc.profileRepo.UpdateObjetivos(obj)
	uc.askObservacao(6)
}

// askObservacao coleta a nota interna do vendedor para a etapa dada.
func (uc *OnboardingUseCase) askObservacao(etapa int) {
	p := uc.profileRepo.GetProfile()
	obs := p.ObservacoesPorEtapa

	var atual *string
	switch etapa {
	case 1:
		atual = &obs.Etapa1
	case 2:
		atual = &obs.Etapa2
	case 3:
		atual = &obs.Etapa3
	case 4:
		atual = &obs.Etapa4
	case 5:
		atual = &obs.Etapa5
	case 6:
		atual = &obs.Etapa6
	default:
		return
	}

	*atual = uc.console.AskText("Nota interna desta etapa (opcional)", *atual)
	uc.profileRepo.UpdateObservacoes(obs)
}

func (uc *OnboardingUseCase) askPerfilUso(atual entity.PerfilUso) entity.PerfilUso {
	opcoes := []string{"baixo", "medio", "alto", "não informado"}
	escolha := uc.console.AskSelect("Perfil de uso da rede", opcoes, perfilUsoLabel(atual))
	switch escolha {
	case "baixo":
		return entity.PerfilUsoBaixo
	case "medio":
		return entity.PerfilUsoMedio
	case "alto":
		return entity.PerfilUsoAlto
	default:
		return entity.PerfilUsoNaoInformado
	}
}

func (uc *OnboardingUseCase) askWifiTipo(atual entity.WifiTipo) entity.WifiTipo {
	opcoes := []string{"segmentada (redes separadas)", "única (uma rede para tudo)", "não informado"}
	padrao := opcoes[2]
	switch atual {
	case entity.WifiSegmentada:
		padrao = opcoes[0]
	case entity.WifiUnica:
		padrao = opcoes[1]
	}
	escolha := uc.console.AskSelect("Como é a rede WiFi?", opcoes, padrao)
	switch escolha {
	case opcoes[0]:
		return entity.WifiSegmentada
	case opcoes[1]:
		return entity.WifiUnica
	default:
		return entity.WifiNaoInformado
	}
}

// --- Apresentação ---

// renderPresentation imprime o relatório completo no terminal.
func (uc *OnboardingUseCase) renderPresentation(report entity.ReportData) {
	p := report.Profile

	uc.console.DisplaySection(
		fmt.Sprintf("Relatório de Segurança Digital: %s", p.Empresa.Nome),
		fmt.Sprintf("Setor: %s\nGerado em: %s\nRelatório: %s",
			p.Empresa.Setor, report.GeneratedAt.Format("02/01/2006 15:04"), report.ReportID))

	uc.renderPerfilTable(p)
	uc.renderRiscos(report.Riscos)
	uc.renderROITable(report.ROI)
	uc.renderEquipamento(report.Equipamento, p)
	uc.renderObjetivos(p.Objetivos)
	uc.renderObservacoes(p.ObservacoesPorEtapa)
}

func (uc *OnboardingUseCase) renderPerfilTable(p entity.Profile) {
	table := uc.console.CreateTable()
	table.AddColumn("Campo")
	table.AddColumn("Valor")

	table.AddRow("Usuários atuais", fmt.Sprintf("%d", p.Infraestrutura.UsuariosAtuais))
	if p.Infraestrutura.UsuariosPretensao {
		table.AddRow("Usuários estimados (crescimento)", fmt.Sprintf("+%d", p.Infraestrutura.UsuariosEstimativa))
	}
	table.AddRow("Dispositivos", fmt.Sprintf("%d", p.Infraestrutura.DispositivosAtuais))
	table.AddRow("Links de internet", fmt.Sprintf("%d", len(p.Infraestrutura.Links)))
	for i, link := range p.Infraestrutura.Links {
		valor := fmt.Sprintf("%s - %s", link.Provedor, link.Velocidade)
		if link.AumentoPretendido && link.NovaVelocidade != "" {
			valor += fmt.Sprintf(" (pretende %s)", link.NovaVelocidade)
		}
		table.AddRow(fmt.Sprintf("  Link #%d", i+1), valor)
	}
	table.AddRow("Time de TI", fmt.Sprintf("%d", p.Infraestrutura.TimeTI))
	table.AddRow("Contato", fmt.Sprintf("%s (%s)", p.Infraestrutura.ContatoNome, p.Infraestrutura.ContatoCargo))
	table.AddRow("WiFi", wifiTexto(p.Conectividade.WifiTipo))
	table.AddRow("Firewall", firewallTexto(p.Seguranca))
	table.AddRow("Antivírus/Endpoint", antivirusTexto(p.Seguranca))
	table.AddRow("Backup", backupTexto(p.Backup))
	if p.Conectividade.UsaVPN {
		table.AddRow("VPN", fmt.Sprintf("%d acesso(s): %s", p.Conectividade.AcessosVPNQuantidade, p.Conectividade.UsoVPN))
	}

	uc.console.Println(table.Render())
}

func (uc *OnboardingUseCase) renderRiscos(riscos []entity.RiskFinding) {
	if len(riscos) == 0 {
		uc.console.LogSuccess("Nenhum risco identificado com as regras atuais.")
		return
	}

	bars := make([]types.RiskBar, 0, len(riscos))
	for _, r := range riscos {
		bars = append(bars, types.RiskBar{
			Titulo:        r.Titulo,
			Probabilidade: r.Probabilidade,
			Categoria:     string(r.Categoria),
		})
	}
	uc.console.DisplayRiskBars(bars)

	for _, r := range riscos {
		conteudo := strings.Join([]string{
			fmt.Sprintf("Probabilidade: %d%%  |  Categoria: %s", r.Probabilidade, strings.ToUpper(string(r.Categoria))),
			fmt.Sprintf("Fator causador: %s", r.FatorCausador),
			r.Explicacao,
			fmt.Sprintf("Mitigação sugerida: %s", r.MitigacaoSugerida),
		}, "\n")
		uc.console.DisplaySection(r.Titulo, conteudo)
	}
}

func (uc *OnboardingUseCase) renderROITable(roi entity.ROIResult) {
	table := uc.console.CreateTable()
	table.AddColumn("Indicador")
	table.AddColumn("Valor")

	table.AddRow("Perda esperada sem controles", moeda(roi.PerdaEsperadaSemControles))
	table.AddRow("Perda com firewall", moeda(roi.PerdaComFirewall))
	table.AddRow("Perda com endpoint", moeda(roi.PerdaComEndpoint))
	table.AddRow("Perda com backup", moeda(roi.PerdaComBackup))
	table.AddRow("Perda com controles combinados", moeda(roi.PerdaCombinada))
	table.AddRow("Custo anual da solução", moeda(roi.CustoAnualSolucao))
	table.AddRow("Perda evitada", moeda(roi.PerdaEvitada))
	table.AddRow("ROI anual", roiTexto(roi.ROIPercentual))

	uc.console.DisplaySection("ROI e Impacto Financeiro", "Projeção anual de perdas e retorno do investimento")
	uc.console.Println(table.Render())
}

func (uc *OnboardingUseCase) renderEquipamento(s entity.FirewallSuggestion, p entity.Profile) {
	usuarios := p.Infraestrutura.UsuariosAtuais
	if p.Infraestrutura.UsuariosPretensao {
		usuarios += p.Infraestrutura.UsuariosEstimativa
	}
	conteudo := strings.Join([]string{
		fmt.Sprintf("Dimensionado para %d usuário(s).", usuarios),
		"",
		fmt.Sprintf("SonicWall: %s", s.Sonicwall),
		fmt.Sprintf("Fortinet:  %s", s.Fortinet),
	}, "\n")
	uc.console.DisplaySection("Equipamento Recomendado", conteudo)
}

func (uc *OnboardingUseCase) renderObjetivos(o entity.ObjetivosInfo) {
	linhas := []string{}
	objetivos := []struct {
		label       string
		selecionado bool
	}{
		{"Conformidade LGPD", o.LGPD},
		{"VPN Segura", o.VPNSegura},
		{"Backup Imutável", o.BackupImutavel},
		{"Gestão de Incidentes", o.GestaoIncidentes},
		{"Reduzir Riscos Cibernéticos", o.ReduzirRiscos},
		{"Proteção de Endpoints", o.ProtecaoEndpoints},
		{"Monitoramento 24/7", o.Monitoramento247},
		{"Auditoria e Compliance", o.AuditoriaCompliance},
	}
	for _, obj := range objetivos {
		marcador := "[ ]"
		if obj.selecionado {
			marcador = "[x]"
		}
		linhas = append(linhas, fmt.Sprintf("%s %s", marcador, obj.label))
	}
	uc.console.DisplaySection("Objetivos de Segurança", strings.Join(linhas, "\n"))
}

func (uc *OnboardingUseCase) renderObservacoes(o entity.ObservacoesPorEtapa) {
	preenchidas := o.Preenchidas()
	if len(preenchidas) == 0 {
		return
	}
	linhas := []string{}
	for _, obs := range preenchidas {
		linhas = append(linhas, fmt.Sprintf("%s: %s", obs.Etapa, obs.Nota))
	}
	uc.console.DisplaySection("Notas Internas", strings.Join(linhas, "\n"))
}

// --- Menu final ---

const (
	menuExportar  = "Exportar relatório"
	menuEditar    = "Editar uma etapa"
	menuRecomecar = "Recomeçar do zero"
	menuSair      = "Sair"
)

// presentationMenu devolve done=true quando o usuário encerra a sessão.
func (uc *OnboardingUseCase) presentationMenu(report entity.ReportData, args *types.CLIArgs) (bool, error) {
	for {
		escolha := uc.console.AskSelect("O que deseja fazer agora?",
			[]string{menuExportar, menuEditar, menuRecomecar, menuSair}, menuExportar)

		switch escolha {
		case menuExportar:
			reportTypes := args.ReportType
			if len(reportTypes) == 0 {
				formato := uc.console.AskSelect("Formato de exportação",
					[]string{"html", "pdf", "json", "csv", "todos"}, "html")
				reportTypes = []string{formato}
			}
			if err := uc.exportReport(report, reportTypes, args); err != nil {
				return false, err
			}
		case menuEditar:
			uc.askStepJump()
			return false, nil
		case menuRecomecar:
			if uc.console.AskConfirm("Descartar todos os dados e recomeçar?", false) {
				uc.profileRepo.Reset()
				uc.console.LogInfo("Sessão reiniciada.")
				return false, nil
			}
		case menuSair:
			return true, nil
		}
	}
}

// askStepJump volta o assistente para a etapa escolhida. As etapas
// seguintes são reapresentadas com os valores atuais como default.
func (uc *OnboardingUseCase) askStepJump() {
	etapas := []string{
		"Informações da Empresa",
		"Infraestrutura",
		"Conectividade",
		"Segurança",
		"Backup",
		"Objetivos",
	}
	passos := []entity.OnboardingStep{
		entity.StepEmpresa,
		entity.StepInfraestrutura,
		entity.StepConectividade,
		entity.StepSeguranca,
		entity.StepBackup,
		entity.StepObjetivos,
	}

	escolha := uc.console.AskSelect("Qual etapa deseja editar?", etapas, etapas[0])
	for i, label := range etapas {
		if label == escolha {
			uc.profileRepo.SetCurrentStep(passos[i])
			return
		}
	}
}

// --- Exportação ---

// exportReport valida todos os formatos antes de escrever qualquer
// arquivo, e então exporta um a um.
func (uc *OnboardingUseCase) exportReport(report entity.ReportData, reportTypes []string, args *types.CLIArgs) error {
	expanded := []string{}
	for _, t := range reportTypes {
		t = strings.ToLower(strings.TrimSpace(t))
		switch t {
		case "html", "pdf", "json", "csv":
			expanded = append(expanded, t)
		case "todos", "all":
			expanded = append(expanded, "html", "pdf", "json", "csv")
		default:
			return fmt.Errorf("%w: '%s'", types.ErrUnknownReportType, t)
		}
	}

	for _, t := range expanded {
		status := uc.console.Status(fmt.Sprintf("Exporting %s report...", strings.ToUpper(t)))

		var path string
		var err error
		switch t {
		case "html":
			path, err = uc.exportRepo.ExportToHTML(report, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
		case "csv":
			path, err = uc.exportRepo.ExportRisksToCSV(report, args.ReportName, args.Dir)
		}
		status.Stop()

		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", strings.ToUpper(t), err)
			return err
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", strings.ToUpper(t), path)
	}
	return nil
}

// --- Helpers de formatação ---

func moeda(v float64) string {
	if math.IsNaN(v) {
		return "indefinido"
	}
	return fmt.Sprintf("R$ %.2f", v)
}

func roiTexto(v float64) string {
	if math.IsNaN(v) {
		return "indefinido (custo anual zero)"
	}
	return fmt.Sprintf("%.1f%%", v)
}

func perfilUsoLabel(p entity.PerfilUso) string {
	switch p {
	case entity.PerfilUsoBaixo:
		return "baixo"
	case entity.PerfilUsoMedio:
		return "medio"
	case entity.PerfilUsoAlto:
		return "alto"
	default:
		return "não informado"
	}
}

func wifiTexto(t entity.WifiTipo) string {
	switch t {
	case entity.WifiSegmentada:
		return "Segmentada"
	case entity.WifiUnica:
		return "Rede única"
	default:
		return "Não informado"
	}
}

func firewallTexto(s entity.SegurancaInfo) string {
	if !s.PossuiFirewall {
		return "Não possui"
	}
	licenca := "licença inativa"
	if s.FirewallLicencaAtiva {
		licenca = "licença ativa"
	}
	return fmt.Sprintf("%s %s (%s, %s)", s.FirewallTipo, s.FirewallModelo, s.FirewallLocadoOuComprado, licenca)
}

func antivirusTexto(s entity.SegurancaInfo) string {
	if !s.PossuiAntivirusEndpoint {
		return "Não possui"
	}
	gerenciamento := "não gerenciado"
	if s.AntivirusGerenciado {
		gerenciamento = "gerenciado"
	}
	return fmt.Sprintf("%s (%s, %s)", s.AntivirusTipo, s.AntivirusCategoria, gerenciamento)
}

func backupTexto(b entity.BackupInfo) string {
	if !b.PossuiBackup {
		return "Não possui"
	}
	detalhes := []string{b.TipoBackup}
	if b.BackupGerenciavel {
		detalhes = append(detalhes, "gerenciável")
	}
	if b.FazTesteRestore {
		detalhes = append(detalhes, "com teste de restore")
	} else {
		detalhes = append(detalhes, "sem teste de restore")
	}
	return strings.Join(detalhes, ", ")
}

func valueOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
