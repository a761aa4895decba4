package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
)

// Fração mínima das capacidades-alvo que o modelo imediatamente menor
// precisa cobrir para ser sugerido no perfil de uso baixo.
const coberturaMinimaPerfilBaixo = 0.8

// SuggestFirewall dimensiona um appliance por marca a partir da demanda
// agregada do perfil: usuários atuais mais a estimativa de crescimento, e
// a soma da banda de todos os links declarados. Para cada marca escolhe o
// modelo suficiente mais barato; quando nenhum modelo atende, recua para
// o mais potente da marca. Com perfil de uso baixo, o modelo imediatamente
// menor é sugerido se ainda cobrir 80% das duas capacidades-alvo.
func SuggestFirewall(profile entity.Profile, catalog []types.CatalogEntry) entity.FirewallSuggestion {
	usuarios := profile.Infraestrutura.UsuariosAtuais
	if profile.Infraestrutura.UsuariosPretensao {
		usuarios += profile.Infraestrutura.UsuariosEstimativa
	}

	var banda float64
	for _, link := range profile.Infraestrutura.Links {
		velocidade := link.Velocidade
		if link.AumentoPretendido && link.NovaVelocidade != "" {
			velocidade = link.NovaVelocidade
		}
		banda += ParseVelocidade(velocidade)
	}

	sugestao := entity.FirewallSuggestion{}
	for _, marca := range brands(catalog) {
		modelo := suggestForBrand(brandModels(catalog, marca), usuarios, banda, profile.Infraestrutura.PerfilUso)
		switch marca {
		case "SonicWall":
			sugestao.Sonicwall = modelo
		case "Fortinet":
			sugestao.Fortinet = modelo
		}
	}
	return sugestao
}

// suggestForBrand escolhe um modelo dentro de uma marca. Os modelos chegam
// em qualquer ordem; a seleção ordena por capacidade crescente.
func suggestForBrand(models []types.CatalogEntry, usuarios int, banda float64, perfil entity.PerfilUso) string {
	if len(models) == 0 {
		return ""
	}

	sort.Slice(models, func(i, j int) bool {
		if models[i].MaxUsuarios != models[j].MaxUsuarios {
			return models[i].MaxUsuarios < models[j].MaxUsuarios
		}
		return models[i].ThroughputMbps < models[j].ThroughputMbps
	})

	selecionado := -1
	for i, m := range models {
		if m.MaxUsuarios >= usuarios && m.ThroughputMbps >= banda {
			selecionado = i
			break
		}
	}

	// Nenhum modelo atende: recua para o mais potente da marca.
	if selecionado < 0 {
		m := models[len(models)-1]
		return fmt.Sprintf("%s %s", m.Marca, m.Modelo)
	}

	// Perfil de uso baixo: o modelo imediatamente menor ainda serve?
	if perfil == entity.PerfilUsoBaixo && selecionado > 0 {
		menor := models[selecionado-1]
		if float64(menor.MaxUsuarios) >= float64(usuarios)*coberturaMinimaPerfilBaixo &&
			menor.ThroughputMbps >= banda*coberturaMinimaPerfilBaixo {
			return fmt.Sprintf("%s %s", menor.Marca, menor.Modelo)
		}
	}

	m := models[selecionado]
	return fmt.Sprintf("%s %s", m.Marca, m.Modelo)
}

// ParseVelocidade interpreta uma banda em texto livre e devolve Mbps.
// Mantém apenas dígitos, vírgula e ponto; vírgula vale como separador
// decimal; um "gbps" em qualquer caixa multiplica por 1000. Texto sem
// número algum degrada para 0, nunca para NaN.
func ParseVelocidade(s string) float64 {
	lower := strings.ToLower(s)
	var digits strings.Builder
	for _, r := range lower {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			digits.WriteRune(r)
		}
	}

	valor, err := strconv.ParseFloat(strings.ReplaceAll(digits.String(), ",", "."), 64)
	if err != nil || math.IsNaN(valor) || math.IsInf(valor, 0) {
		return 0
	}

	if strings.Contains(lower, "gbps") {
		return valor * 1000
	}
	return valor
}

// brands devolve as marcas presentes no catálogo, na ordem de aparição.
func brands(catalog []types.CatalogEntry) []string {
	seen := map[string]bool{}
	ordered := []string{}
	for _, m := range catalog {
		if !seen[m.Marca] {
			seen[m.Marca] = true
			ordered = append(ordered, m.Marca)
		}
	}
	return ordered
}

func brandModels(catalog []types.CatalogEntry, marca string) []types.CatalogEntry {
	models := []types.CatalogEntry{}
	for _, m := range catalog {
		if m.Marca == marca {
			models = append(models, m)
		}
	}
	return models
}
