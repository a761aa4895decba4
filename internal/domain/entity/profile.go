package entity

// LinkInfo representa um link de internet declarado pelo cliente.
// A velocidade é texto livre ("500 Mbps", "1 Gbps") e só é interpretada
// pelo recomendador de firewall.
type LinkInfo struct {
	Provedor          string `json:"provedor" yaml:"provedor" toml:"provedor"`
	Velocidade        string `json:"velocidade" yaml:"velocidade" toml:"velocidade"`
	AumentoPretendido bool   `json:"aumento_pretendido" yaml:"aumento_pretendido" toml:"aumento_pretendido"`
	NovaVelocidade    string `json:"nova_velocidade,omitempty" yaml:"nova_velocidade" toml:"nova_velocidade"`
}

// EmpresaInfo identifica a empresa avaliada.
type EmpresaInfo struct {
	Nome           string `json:"nome" yaml:"nome" toml:"nome"`
	Setor          string `json:"setor" yaml:"setor" toml:"setor"`
	LogoClienteURL string `json:"logo_cliente_url,omitempty" yaml:"logo_cliente_url" toml:"logo_cliente_url"`
}

// PerfilUso é a intensidade de uso da rede declarada pelo cliente.
type PerfilUso string

const (
	PerfilUsoBaixo        PerfilUso = "baixo"
	PerfilUsoMedio        PerfilUso = "medio"
	PerfilUsoAlto         PerfilUso = "alto"
	PerfilUsoNaoInformado PerfilUso = ""
)

// InfraestruturaInfo descreve o parque atual e a intenção de crescimento.
type InfraestruturaInfo struct {
	UsuariosAtuais         int        `json:"usuarios_atuais" yaml:"usuarios_atuais" toml:"usuarios_atuais"`
	UsuariosPretensao      bool       `json:"usuarios_pretensao" yaml:"usuarios_pretensao" toml:"usuarios_pretensao"`
	UsuariosEstimativa     int        `json:"usuarios_estimativa,omitempty" yaml:"usuarios_estimativa" toml:"usuarios_estimativa"`
	DispositivosAtuais     int        `json:"dispositivos_atuais" yaml:"dispositivos_atuais" toml:"dispositivos_atuais"`
	DispositivosPretensao  bool       `json:"dispositivos_pretensao" yaml:"dispositivos_pretensao" toml:"dispositivos_pretensao"`
	DispositivosEstimativa int        `json:"dispositivos_estimativa,omitempty" yaml:"dispositivos_estimativa" toml:"dispositivos_estimativa"`
	Links                  []LinkInfo `json:"links" yaml:"links" toml:"links"`
	TimeTI                 int        `json:"time_ti" yaml:"time_ti" toml:"time_ti"`
	ContatoNome            string     `json:"contato_nome" yaml:"contato_nome" toml:"contato_nome"`
	ContatoCargo           string     `json:"contato_cargo" yaml:"contato_cargo" toml:"contato_cargo"`
	PerfilUso              PerfilUso  `json:"perfil_uso,omitempty" yaml:"perfil_uso" toml:"perfil_uso"`
}

// WifiTipo indica a topologia da rede sem fio.
type WifiTipo string

const (
	WifiSegmentada   WifiTipo = "segmentada"
	WifiUnica        WifiTipo = "unica"
	WifiNaoInformado WifiTipo = ""
)

// ConectividadeInfo descreve Wi-Fi, serviços em nuvem e VPN.
type ConectividadeInfo struct {
	WifiTipo             WifiTipo `json:"wifi_tipo" yaml:"wifi_tipo" toml:"wifi_tipo"`
	APsQuantidade        int      `json:"aps_quantidade" yaml:"aps_quantidade" toml:"aps_quantidade"`
	APMarca              string   `json:"ap_marca" yaml:"ap_marca" toml:"ap_marca"`
	APModelo             string   `json:"ap_modelo" yaml:"ap_modelo" toml:"ap_modelo"`
	SwitchGerenciavel    bool     `json:"switch_gerenciavel" yaml:"switch_gerenciavel" toml:"switch_gerenciavel"`
	PossuiSaaSIaaS       bool     `json:"possui_saas_iaas" yaml:"possui_saas_iaas" toml:"possui_saas_iaas"`
	ServicoSaaSIaaS      string   `json:"servico_saas_iaas,omitempty" yaml:"servico_saas_iaas" toml:"servico_saas_iaas"`
	UsaVPN               bool     `json:"usa_vpn" yaml:"usa_vpn" toml:"usa_vpn"`
	AcessosVPNQuantidade int      `json:"acessos_vpn_quantidade,omitempty" yaml:"acessos_vpn_quantidade" toml:"acessos_vpn_quantidade"`
	UsoVPN               string   `json:"uso_vpn,omitempty" yaml:"uso_vpn" toml:"uso_vpn"`
}

// SegurancaInfo descreve os controles de segurança existentes.
type SegurancaInfo struct {
	PossuiFirewall           bool   `json:"possui_firewall" yaml:"possui_firewall" toml:"possui_firewall"`
	FirewallTipo             string `json:"firewall_tipo,omitempty" yaml:"firewall_tipo" toml:"firewall_tipo"`
	FirewallModelo           string `json:"firewall_modelo,omitempty" yaml:"firewall_modelo" toml:"firewall_modelo"`
	FirewallLocadoOuComprado string `json:"firewall_locado_ou_comprado,omitempty" yaml:"firewall_locado_ou_comprado" toml:"firewall_locado_ou_comprado"`
	FirewallLicencaAtiva     bool   `json:"firewall_licenca_ativa" yaml:"firewall_licenca_ativa" toml:"firewall_licenca_ativa"`
	PossuiAntivirusEndpoint  bool   `json:"possui_antivirus_endpoint" yaml:"possui_antivirus_endpoint" toml:"possui_antivirus_endpoint"`
	AntivirusTipo            string `json:"antivirus_tipo,omitempty" yaml:"antivirus_tipo" toml:"antivirus_tipo"`
	AntivirusCategoria       string `json:"antivirus_categoria,omitempty" yaml:"antivirus_categoria" toml:"antivirus_categoria"`
	AntivirusGerenciado      bool   `json:"antivirus_gerenciado" yaml:"antivirus_gerenciado" toml:"antivirus_gerenciado"`
}

// BackupInfo descreve a prática de backup do cliente.
type BackupInfo struct {
	PossuiBackup      bool   `json:"possui_backup" yaml:"possui_backup" toml:"possui_backup"`
	TipoBackup        string `json:"tipo_backup,omitempty" yaml:"tipo_backup" toml:"tipo_backup"`
	BackupGerenciavel bool   `json:"backup_gerenciavel" yaml:"backup_gerenciavel" toml:"backup_gerenciavel"`
	FazTesteRestore   bool   `json:"faz_teste_restore" yaml:"faz_teste_restore" toml:"faz_teste_restore"`
}

// ObjetivosInfo reúne os oito objetivos de segurança do cliente.
type ObjetivosInfo struct {
	LGPD                bool `json:"lgpd" yaml:"lgpd" toml:"lgpd"`
	VPNSegura           bool `json:"vpn_segura" yaml:"vpn_segura" toml:"vpn_segura"`
	BackupImutavel      bool `json:"backup_imutavel" yaml:"backup_imutavel" toml:"backup_imutavel"`
	GestaoIncidentes    bool `json:"gestao_incidentes" yaml:"gestao_incidentes" toml:"gestao_incidentes"`
	ReduzirRiscos       bool `json:"reduzir_riscos" yaml:"reduzir_riscos" toml:"reduzir_riscos"`
	ProtecaoEndpoints   bool `json:"protecao_endpoints" yaml:"protecao_endpoints" toml:"protecao_endpoints"`
	Monitoramento247    bool `json:"monitoramento_247" yaml:"monitoramento_247" toml:"monitoramento_247"`
	AuditoriaCompliance bool `json:"auditoria_compliance" yaml:"auditoria_compliance" toml:"auditoria_compliance"`
}

// ObservacoesPorEtapa guarda as notas internas do vendedor, uma por etapa
// de coleta.
type ObservacoesPorEtapa struct {
	Etapa1 string `json:"etapa1,omitempty" yaml:"etapa1" toml:"etapa1"`
	Etapa2 string `json:"etapa2,omitempty" yaml:"etapa2" toml:"etapa2"`
	Etapa3 string `json:"etapa3,omitempty" yaml:"etapa3" toml:"etapa3"`
	Etapa4 string `json:"etapa4,omitempty" yaml:"etapa4" toml:"etapa4"`
	Etapa5 string `json:"etapa5,omitempty" yaml:"etapa5" toml:"etapa5"`
	Etapa6 string `json:"etapa6,omitempty" yaml:"etapa6" toml:"etapa6"`
}

// Observacao é uma nota interna associada a uma etapa do onboarding.
type Observacao struct {
	Etapa string `json:"etapa"`
	Nota  string `json:"nota"`
}

// Preenchidas devolve as notas não vazias na ordem das etapas, com o nome
// da etapa correspondente.
func (o ObservacoesPorEtapa) Preenchidas() []Observacao {
	etapas := []Observacao{
		{Etapa: "Informações da Empresa", Nota: o.Etapa1},
		{Etapa: "Infraestrutura", Nota: o.Etapa2},
		{Etapa: "Conectividade", Nota: o.Etapa3},
		{Etapa: "Segurança", Nota: o.Etapa4},
		{Etapa: "Backup", Nota: o.Etapa5},
		{Etapa: "Objetivos", Nota: o.Etapa6},
	}
	preenchidas := []Observacao{}
	for _, e := range etapas {
		if e.Nota != "" {
			preenchidas = append(preenchidas, e)
		}
	}
	return preenchidas
}

// Profile é o cadastro completo de um cliente em avaliação. É o agregado
// raiz da sessão: cada seção só é escrita por substituição integral.
type Profile struct {
	Empresa             EmpresaInfo         `json:"empresa" yaml:"empresa" toml:"empresa"`
	Infraestrutura      InfraestruturaInfo  `json:"infraestrutura" yaml:"infraestrutura" toml:"infraestrutura"`
	Conectividade       ConectividadeInfo   `json:"conectividade" yaml:"conectividade" toml:"conectividade"`
	Seguranca           SegurancaInfo       `json:"seguranca" yaml:"seguranca" toml:"seguranca"`
	Backup              BackupInfo          `json:"backup" yaml:"backup" toml:"backup"`
	Objetivos           ObjetivosInfo       `json:"objetivos" yaml:"objetivos" toml:"objetivos"`
	ObservacoesPorEtapa ObservacoesPorEtapa `json:"observacoes_por_etapa" yaml:"observacoes_por_etapa" toml:"observacoes_por_etapa"`
	EquipamentoSugerido *FirewallSuggestion `json:"equipamento_sugerido,omitempty" yaml:"equipamento_sugerido" toml:"equipamento_sugerido"`
}

// Clone devolve uma cópia profunda do perfil, para que snapshots entregues
// pelo store não compartilhem memória com o estado da sessão.
func (p Profile) Clone() Profile {
	clone := p
	if p.Infraestrutura.Links != nil {
		clone.Infraestrutura.Links = make([]LinkInfo, len(p.Infraestrutura.Links))
		copy(clone.Infraestrutura.Links, p.Infraestrutura.Links)
	}
	if p.EquipamentoSugerido != nil {
		sugestao := *p.EquipamentoSugerido
		clone.EquipamentoSugerido = &sugestao
	}
	return clone
}
