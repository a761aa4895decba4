package config

import (
	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
)

// Tabelas de conhecimento compiladas: valores de semente usados quando o
// arquivo de configuração não os sobrescreve. São dados de calibração
// comercial, não medições.

// DefaultRiskTable devolve a base de conhecimento de riscos padrão.
func DefaultRiskTable() types.RiskTable {
	return types.RiskTable{
		SemFirewall: types.RiskRule{
			Probabilidade:     85,
			Titulo:            "Alto risco de intrusão externa",
			Explicacao:        "Sem proteção de perímetro, a rede está completamente exposta a ataques externos",
			MitigacaoSugerida: "Firewall Concierge com IPS integrado",
			Categoria:         "alto",
		},
		FirewallSoho: types.RiskRule{
			Probabilidade:     60,
			Titulo:            "Risco moderado de bypass de segurança",
			Explicacao:        "Firewalls domésticos não possuem recursos empresariais de detecção",
			MitigacaoSugerida: "Upgrade para Firewall empresarial gerenciado",
			Categoria:         "moderado",
		},
		VPNSemMFA: types.RiskRule{
			Probabilidade:     70,
			Titulo:            "Alto risco de credenciais comprometidas",
			Explicacao:        "Acesso VPN sem autenticação multifator facilita invasão por credenciais vazadas",
			MitigacaoSugerida: "VPN segura com MFA obrigatório",
			Categoria:         "alto",
		},
		MuitosAcessosVPN: types.RiskRule{
			Probabilidade:     55,
			Titulo:            "Risco de acesso não autorizado",
			Explicacao:        "Muitos acessos VPN aumentam a superfície de ataque",
			MitigacaoSugerida: "Controle rigoroso de acessos e monitoramento",
			Categoria:         "moderado",
		},
		RedeUnica: types.RiskRule{
			Probabilidade:     50,
			Titulo:            "Risco de movimento lateral",
			Explicacao:        "Rede WiFi única permite que invasores se movam livremente entre dispositivos",
			MitigacaoSugerida: "Segmentação de rede e isolamento de dispositivos",
			Categoria:         "moderado",
		},
		AntivirusBasico: types.RiskRule{
			Probabilidade:     75,
			Titulo:            "Alto risco de detecção tardia de ransomware",
			Explicacao:        "Antivírus por assinatura não detecta ameaças avançadas em tempo real",
			MitigacaoSugerida: "Solução EDR/XDR com resposta automatizada",
			Categoria:         "alto",
		},
		SemGerenciamento: types.RiskRule{
			Probabilidade:     65,
			Titulo:            "Risco de proteção inconsistente",
			Explicacao:        "Sem gerenciamento centralizado, endpoints podem ficar desprotegidos",
			MitigacaoSugerida: "Console de gerenciamento unificado",
			Categoria:         "moderado",
		},
		SemBackup: types.RiskRule{
			Probabilidade:     90,
			Titulo:            "Risco crítico de perda total de dados",
			Explicacao:        "Sem backup, qualquer incidente pode resultar em perda permanente",
			MitigacaoSugerida: "Sistema de backup imutável automatizado",
			Categoria:         "alto",
		},
		BackupSemTeste: types.RiskRule{
			Probabilidade:     70,
			Titulo:            "Risco de backup inútil em emergência",
			Explicacao:        "Backups não testados podem falhar no momento crítico",
			MitigacaoSugerida: "Testes regulares de restore com validação",
			Categoria:         "alto",
		},
		BackupMutavel: types.RiskRule{
			Probabilidade:     60,
			Titulo:            "Risco de backup comprometido por ransomware",
			Explicacao:        "Backups acessíveis podem ser criptografados junto com os dados originais",
			MitigacaoSugerida: "Backup imutável em nuvem segura",
			Categoria:         "moderado",
		},
	}
}

// DefaultROIParams devolve os parâmetros de semente da calculadora de ROI
// (calibrados para PMEs brasileiras; valores anuais em reais).
func DefaultROIParams() types.ROIParams {
	return types.ROIParams{
		CustoMedioIncidenteRansomware: 50000,
		CustoMedioBreachDados:         75000,
		CustoHoraIndisponibilidade:    2500,
		HorasMediasParadaPorIncidente: 24,

		ProbRansomwareBase:        0.35,
		ProbBreachBase:            0.25,
		ProbIndisponibilidadeBase: 0.45,

		EficaciaFirewall: 0.70,
		EficaciaEndpoint: 0.80,
		EficaciaBackup:   0.85,

		CustoImplantacao: 15000,
		CustoMensal:      2500,
	}
}

// DefaultCatalog devolve o catálogo de appliances com as capacidades
// nominais de cada modelo.
func DefaultCatalog() []types.CatalogEntry {
	return []types.CatalogEntry{
		{Marca: "SonicWall", Modelo: "TZ80", MaxUsuarios: 60, ThroughputMbps: 750},
		{Marca: "SonicWall", Modelo: "TZ370", MaxUsuarios: 100, ThroughputMbps: 1000},
		{Marca: "SonicWall", Modelo: "TZ470", MaxUsuarios: 150, ThroughputMbps: 1500},
		{Marca: "SonicWall", Modelo: "TZ570", MaxUsuarios: 200, ThroughputMbps: 2000},
		{Marca: "SonicWall", Modelo: "TZ670", MaxUsuarios: 250, ThroughputMbps: 2500},
		{Marca: "SonicWall", Modelo: "NSA 2700", MaxUsuarios: 300, ThroughputMbps: 3000},
		{Marca: "SonicWall", Modelo: "NSA 3700", MaxUsuarios: 400, ThroughputMbps: 3500},

		{Marca: "Fortinet", Modelo: "40F", MaxUsuarios: 60, ThroughputMbps: 600},
		{Marca: "Fortinet", Modelo: "50G", MaxUsuarios: 120, ThroughputMbps: 1100},
		{Marca: "Fortinet", Modelo: "90G", MaxUsuarios: 200, ThroughputMbps: 2200},
		{Marca: "Fortinet", Modelo: "120G", MaxUsuarios: 250, ThroughputMbps: 2800},
		{Marca: "Fortinet", Modelo: "200F", MaxUsuarios: 300, ThroughputMbps: 3000},
		{Marca: "Fortinet", Modelo: "200G", MaxUsuarios: 500, ThroughputMbps: 6000},
		{Marca: "Fortinet", Modelo: "600F", MaxUsuarios: 700, ThroughputMbps: 10500},
	}
}
