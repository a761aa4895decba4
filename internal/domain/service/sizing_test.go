package service

import (
	"testing"

	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
)

func testCatalog() []types.CatalogEntry {
	return []types.CatalogEntry{
		{Marca: "SonicWall", Modelo: "TZ80", MaxUsuarios: 60, ThroughputMbps: 750},
		{Marca: "SonicWall", Modelo: "TZ370", MaxUsuarios: 100, ThroughputMbps: 1000},
		{Marca: "SonicWall", Modelo: "TZ570", MaxUsuarios: 200, ThroughputMbps: 2000},
		{Marca: "SonicWall", Modelo: "NSA 3700", MaxUsuarios: 400, ThroughputMbps: 3500},

		{Marca: "Fortinet", Modelo: "40F", MaxUsuarios: 60, ThroughputMbps: 600},
		{Marca: "Fortinet", Modelo: "50G", MaxUsuarios: 120, ThroughputMbps: 1100},
		{Marca: "Fortinet", Modelo: "90G", MaxUsuarios: 200, ThroughputMbps: 2200},
		{Marca: "Fortinet", Modelo: "600F", MaxUsuarios: 700, ThroughputMbps: 10500},
	}
}

func perfilDimensionamento(usuarios int, links ...entity.LinkInfo) entity.Profile {
	if links == nil {
		links = []entity.LinkInfo{}
	}
	return entity.Profile{
		Infraestrutura: entity.InfraestruturaInfo{
			UsuariosAtuais: usuarios,
			Links:          links,
		},
	}
}

func TestSuggestFirewall(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name          string
		profile       entity.Profile
		wantSonicwall string
		wantFortinet  string
	}{
		{
			name:          "escritorio pequeno com link modesto",
			profile:       perfilDimensionamento(50, entity.LinkInfo{Provedor: "Vivo", Velocidade: "500 Mbps"}),
			wantSonicwall: "SonicWall TZ80",
			wantFortinet:  "Fortinet 40F",
		},
		{
			name:          "banda em gbps empurra para o modelo seguinte",
			profile:       perfilDimensionamento(80, entity.LinkInfo{Provedor: "Claro", Velocidade: "1 Gbps"}),
			wantSonicwall: "SonicWall TZ370",
			wantFortinet:  "Fortinet 50G",
		},
		{
			name: "multiplos links somam banda",
			profile: perfilDimensionamento(40,
				entity.LinkInfo{Provedor: "Vivo", Velocidade: "800 Mbps"},
				entity.LinkInfo{Provedor: "Claro", Velocidade: "700 Mbps"}),
			wantSonicwall: "SonicWall TZ570",
			wantFortinet:  "Fortinet 90G",
		},
		{
			name: "aumento pretendido usa a nova velocidade",
			profile: perfilDimensionamento(10, entity.LinkInfo{
				Provedor:          "Vivo",
				Velocidade:        "500 Mbps",
				AumentoPretendido: true,
				NovaVelocidade:    "2 Gbps",
			}),
			wantSonicwall: "SonicWall TZ570",
			wantFortinet:  "Fortinet 90G",
		},
		{
			name: "aumento sem nova velocidade mantem a atual",
			profile: perfilDimensionamento(10, entity.LinkInfo{
				Provedor:          "Vivo",
				Velocidade:        "500 Mbps",
				AumentoPretendido: true,
			}),
			wantSonicwall: "SonicWall TZ80",
			wantFortinet:  "Fortinet 40F",
		},
		{
			name:          "demanda acima do catalogo recua para o mais potente",
			profile:       perfilDimensionamento(100000),
			wantSonicwall: "SonicWall NSA 3700",
			wantFortinet:  "Fortinet 600F",
		},
		{
			name:          "perfil vazio recebe o menor modelo",
			profile:       perfilDimensionamento(0),
			wantSonicwall: "SonicWall TZ80",
			wantFortinet:  "Fortinet 40F",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestFirewall(tt.profile, catalog)
			if got.Sonicwall != tt.wantSonicwall {
				t.Errorf("Sonicwall = %q, want %q", got.Sonicwall, tt.wantSonicwall)
			}
			if got.Fortinet != tt.wantFortinet {
				t.Errorf("Fortinet = %q, want %q", got.Fortinet, tt.wantFortinet)
			}
		})
	}
}

func TestSuggestFirewallCrescimentoDeUsuarios(t *testing.T) {
	profile := perfilDimensionamento(100)
	profile.Infraestrutura.UsuariosPretensao = true
	profile.Infraestrutura.UsuariosEstimativa = 150

	got := SuggestFirewall(profile, testCatalog())
	if got.Sonicwall != "SonicWall NSA 3700" {
		t.Errorf("Sonicwall = %q, want NSA 3700 for 250 projected users", got.Sonicwall)
	}
	if got.Fortinet != "Fortinet 600F" {
		t.Errorf("Fortinet = %q, want 600F for 250 projected users", got.Fortinet)
	}

	// Sem a pretensão declarada, a estimativa é ignorada.
	profile.Infraestrutura.UsuariosPretensao = false
	got = SuggestFirewall(profile, testCatalog())
	if got.Sonicwall != "SonicWall TZ370" {
		t.Errorf("Sonicwall = %q, want TZ370 for 100 users", got.Sonicwall)
	}
}

func TestSuggestFirewallPerfilBaixo(t *testing.T) {
	catalog := testCatalog()

	t.Run("modelo menor cobre 80 por cento e e sugerido", func(t *testing.T) {
		profile := perfilDimensionamento(70)
		profile.Infraestrutura.PerfilUso = entity.PerfilUsoBaixo

		got := SuggestFirewall(profile, catalog)
		if got.Sonicwall != "SonicWall TZ80" {
			t.Errorf("Sonicwall = %q, want TZ80 downgrade (60 >= 70*0.8)", got.Sonicwall)
		}
		if got.Fortinet != "Fortinet 40F" {
			t.Errorf("Fortinet = %q, want 40F downgrade", got.Fortinet)
		}
	})

	t.Run("modelo menor abaixo da cobertura e recusado", func(t *testing.T) {
		profile := perfilDimensionamento(100)
		profile.Infraestrutura.PerfilUso = entity.PerfilUsoBaixo

		got := SuggestFirewall(profile, catalog)
		if got.Sonicwall != "SonicWall TZ370" {
			t.Errorf("Sonicwall = %q, want TZ370 (60 < 100*0.8)", got.Sonicwall)
		}
	})

	t.Run("perfil medio nunca rebaixa", func(t *testing.T) {
		profile := perfilDimensionamento(70)
		profile.Infraestrutura.PerfilUso = entity.PerfilUsoMedio

		got := SuggestFirewall(profile, catalog)
		if got.Sonicwall != "SonicWall TZ370" {
			t.Errorf("Sonicwall = %q, want TZ370 without downgrade", got.Sonicwall)
		}
	})
}

func TestSuggestFirewallDeterministico(t *testing.T) {
	profile := perfilDimensionamento(80, entity.LinkInfo{Provedor: "Vivo", Velocidade: "1 Gbps"})
	catalog := testCatalog()

	first := SuggestFirewall(profile, catalog)
	for i := 0; i < 5; i++ {
		if got := SuggestFirewall(profile, catalog); got != first {
			t.Fatalf("suggestion changed between runs: %+v vs %+v", got, first)
		}
	}
}

func TestSuggestFirewallCatalogoVazio(t *testing.T) {
	got := SuggestFirewall(perfilDimensionamento(50), nil)
	if got.Sonicwall != "" || got.Fortinet != "" {
		t.Errorf("empty catalog should yield empty suggestion, got %+v", got)
	}
}

func TestParseVelocidade(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"500 Mbps", 500},
		{"500mbps", 500},
		{"1 Gbps", 1000},
		{"2.5 gbps", 2500},
		{"1,5 Gbps", 1500},
		{"300", 300},
		{"700mb", 700},
		{"", 0},
		{"fibra dedicada", 0},
		{"GBPS", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseVelocidade(tt.in); got != tt.want {
				t.Errorf("ParseVelocidade(%q) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}
}
