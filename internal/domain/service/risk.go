// Package service contém as três calculadoras puras do onboarding:
// classificador de riscos, calculadora de ROI e recomendador de firewall.
// Todas são funções totais e determinísticas sobre o snapshot do perfil;
// dados ausentes ou malformados simplesmente não disparam regras.
package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
)

// Tokens que indicam firewall de linha doméstica no texto livre do tipo.
var sohoTokens = []string{"soho", "doméstico", "domestico", "tp-link", "d-link"}

// Menções de autenticação multifator aceitas na descrição de uso da VPN.
var mfaTokens = []string{"mfa", "duplo fator", "2fa"}

// Tokens que indicam um backup fora do alcance de um ransomware.
var backupSeguroTokens = []string{"imutável", "imutavel", "cloud", "offsite"}

const (
	limiteAcessosVPN       = 10
	limiteDispositivosWifi = 20
)

// ComputeRisks avalia o perfil contra a base de conhecimento e devolve os
// riscos identificados, ordenados por probabilidade decrescente (ordem de
// avaliação preservada em empates). Os textos fixos vêm da tabela; apenas
// o fator causador é interpolado a partir dos valores do perfil.
func ComputeRisks(profile entity.Profile, table types.RiskTable) []entity.RiskFinding {
	risks := []entity.RiskFinding{}

	add := func(rule types.RiskRule, fatorCausador string) {
		risks = append(risks, entity.RiskFinding{
			Titulo:            rule.Titulo,
			Probabilidade:     rule.Probabilidade,
			Explicacao:        rule.Explicacao,
			FatorCausador:     fatorCausador,
			MitigacaoSugerida: rule.MitigacaoSugerida,
			Categoria:         entity.RiskCategory(rule.Categoria),
		})
	}

	// Análise de firewall
	firewallTipo := strings.ToLower(strings.TrimSpace(profile.Seguranca.FirewallTipo))
	switch {
	case !profile.Seguranca.PossuiFirewall || firewallTipo == "" || strings.Contains(firewallTipo, "não possui"):
		add(table.SemFirewall, "Ausência de firewall detectada")
	case containsAny(firewallTipo, sohoTokens):
		add(table.FirewallSoho, fmt.Sprintf("Firewall doméstico: %s", profile.Seguranca.FirewallTipo))
	}

	// Análise de VPN — as duas regras são independentes e podem disparar juntas
	if profile.Conectividade.UsaVPN {
		if profile.Conectividade.AcessosVPNQuantidade > limiteAcessosVPN {
			add(table.MuitosAcessosVPN, fmt.Sprintf("%d acessos VPN simultâneos", profile.Conectividade.AcessosVPNQuantidade))
		}
		if !containsAny(strings.ToLower(profile.Conectividade.UsoVPN), mfaTokens) {
			add(table.VPNSemMFA, "VPN sem menção de autenticação multifator")
		}
	}

	// Análise de Wi-Fi
	if profile.Conectividade.WifiTipo == entity.WifiUnica && profile.Infraestrutura.DispositivosAtuais > limiteDispositivosWifi {
		add(table.RedeUnica, fmt.Sprintf("Rede única com %d dispositivos", profile.Infraestrutura.DispositivosAtuais))
	}

	// Análise de endpoint. A regra de gerenciamento dispara mesmo sem
	// antivírus declarado; comportamento preservado da versão original.
	antivirus := strings.ToLower(profile.Seguranca.AntivirusTipo)
	categoria := strings.ToLower(profile.Seguranca.AntivirusCategoria)
	if strings.Contains(antivirus, "windows defender") || strings.Contains(categoria, "assinatura") {
		add(table.AntivirusBasico, fmt.Sprintf("Proteção básica: %s", profile.Seguranca.AntivirusTipo))
	}
	if !profile.Seguranca.AntivirusGerenciado {
		add(table.SemGerenciamento, "Endpoint sem gerenciamento centralizado")
	}

	// Análise de backup
	if !profile.Backup.PossuiBackup {
		add(table.SemBackup, "Empresa não possui sistema de backup")
	} else {
		if !profile.Backup.FazTesteRestore {
			add(table.BackupSemTeste, "Backup sem testes de restore validados")
		}
		if !containsAny(strings.ToLower(profile.Backup.TipoBackup), backupSeguroTokens) {
			add(table.BackupMutavel, fmt.Sprintf("Tipo de backup: %s", profile.Backup.TipoBackup))
		}
	}

	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].Probabilidade > risks[j].Probabilidade
	})

	return risks
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}
