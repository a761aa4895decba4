package types

// RiskRule é uma entrada da base de conhecimento de riscos: o texto fixo
// e a probabilidade associados a uma regra do classificador. O fator
// causador não mora aqui; ele é interpolado a cada avaliação.
type RiskRule struct {
	Titulo            string `json:"titulo" yaml:"titulo" toml:"titulo"`
	Probabilidade     int    `json:"probabilidade" yaml:"probabilidade" toml:"probabilidade"`
	Explicacao        string `json:"explicacao" yaml:"explicacao" toml:"explicacao"`
	MitigacaoSugerida string `json:"mitigacao_sugerida" yaml:"mitigacao_sugerida" toml:"mitigacao_sugerida"`
	Categoria         string `json:"categoria" yaml:"categoria" toml:"categoria"`
}

// RiskTable é a base de conhecimento completa, uma regra por chave.
type RiskTable struct {
	SemFirewall      RiskRule `json:"sem_firewall" yaml:"sem_firewall" toml:"sem_firewall"`
	FirewallSoho     RiskRule `json:"firewall_soho" yaml:"firewall_soho" toml:"firewall_soho"`
	VPNSemMFA        RiskRule `json:"vpn_sem_mfa" yaml:"vpn_sem_mfa" toml:"vpn_sem_mfa"`
	MuitosAcessosVPN RiskRule `json:"muitos_acessos_vpn" yaml:"muitos_acessos_vpn" toml:"muitos_acessos_vpn"`
	RedeUnica        RiskRule `json:"rede_unica" yaml:"rede_unica" toml:"rede_unica"`
	AntivirusBasico  RiskRule `json:"antivirus_basico" yaml:"antivirus_basico" toml:"antivirus_basico"`
	SemGerenciamento RiskRule `json:"sem_gerenciamento" yaml:"sem_gerenciamento" toml:"sem_gerenciamento"`
	SemBackup        RiskRule `json:"sem_backup" yaml:"sem_backup" toml:"sem_backup"`
	BackupSemTeste   RiskRule `json:"backup_sem_teste" yaml:"backup_sem_teste" toml:"backup_sem_teste"`
	BackupMutavel    RiskRule `json:"backup_mutavel" yaml:"backup_mutavel" toml:"backup_mutavel"`
}

// ROIParams são os parâmetros editáveis da calculadora de ROI.
// Probabilidades e eficácias são frações em [0,1]; custos em reais.
type ROIParams struct {
	CustoMedioIncidenteRansomware float64 `json:"custo_medio_incidente_ransomware" yaml:"custo_medio_incidente_ransomware" toml:"custo_medio_incidente_ransomware"`
	CustoMedioBreachDados         float64 `json:"custo_medio_breach_dados" yaml:"custo_medio_breach_dados" toml:"custo_medio_breach_dados"`
	CustoHoraIndisponibilidade    float64 `json:"custo_hora_indisponibilidade" yaml:"custo_hora_indisponibilidade" toml:"custo_hora_indisponibilidade"`
	HorasMediasParadaPorIncidente float64 `json:"horas_medias_parada_por_incidente" yaml:"horas_medias_parada_por_incidente" toml:"horas_medias_parada_por_incidente"`

	ProbRansomwareBase        float64 `json:"prob_ransomware_base" yaml:"prob_ransomware_base" toml:"prob_ransomware_base"`
	ProbBreachBase            float64 `json:"prob_breach_base" yaml:"prob_breach_base" toml:"prob_breach_base"`
	ProbIndisponibilidadeBase float64 `json:"prob_indisponibilidade_base" yaml:"prob_indisponibilidade_base" toml:"prob_indisponibilidade_base"`

	EficaciaFirewall float64 `json:"eficacia_firewall" yaml:"eficacia_firewall" toml:"eficacia_firewall"`
	EficaciaEndpoint float64 `json:"eficacia_endpoint" yaml:"eficacia_endpoint" toml:"eficacia_endpoint"`
	EficaciaBackup   float64 `json:"eficacia_backup" yaml:"eficacia_backup" toml:"eficacia_backup"`

	CustoImplantacao float64 `json:"custo_implantacao" yaml:"custo_implantacao" toml:"custo_implantacao"`
	CustoMensal      float64 `json:"custo_mensal" yaml:"custo_mensal" toml:"custo_mensal"`
}

// CatalogEntry é um appliance do catálogo de firewalls, com as capacidades
// nominais usadas pelo recomendador.
type CatalogEntry struct {
	Marca          string  `json:"marca" yaml:"marca" toml:"marca"`
	Modelo         string  `json:"modelo" yaml:"modelo" toml:"modelo"`
	MaxUsuarios    int     `json:"max_usuarios" yaml:"max_usuarios" toml:"max_usuarios"`
	ThroughputMbps float64 `json:"throughput_mbps" yaml:"throughput_mbps" toml:"throughput_mbps"`
}

// Parameters reúne as tabelas de conhecimento efetivas de uma execução:
// os defaults compilados, já mesclados com o arquivo de configuração.
type Parameters struct {
	Riscos   RiskTable      `json:"riscos" yaml:"riscos" toml:"riscos"`
	ROI      ROIParams      `json:"roi" yaml:"roi" toml:"roi"`
	Catalogo []CatalogEntry `json:"catalogo" yaml:"catalogo" toml:"catalogo"`
}

// Config represents the application configuration that can be loaded from a file.
// Seções nulas/vazias mantêm os defaults compilados.
type Config struct {
	ReportName string         `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string       `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string         `json:"dir" yaml:"dir" toml:"dir"`
	Riscos     *RiskTable     `json:"riscos" yaml:"riscos" toml:"riscos"`
	ROI        *ROIParams     `json:"roi" yaml:"roi" toml:"roi"`
	Catalogo   []CatalogEntry `json:"catalogo" yaml:"catalogo" toml:"catalogo"`
}
