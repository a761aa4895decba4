package service

import (
	"math"
	"testing"

	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
)

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-6
}

func TestCalculateROI(t *testing.T) {
	// Um único perigo com probabilidade 1 deixa todos os números redondos.
	params := types.ROIParams{
		CustoMedioIncidenteRansomware: 100000,
		ProbRansomwareBase:            1,

		EficaciaFirewall: 0.70,
		EficaciaEndpoint: 0.80,
		EficaciaBackup:   0.85,

		CustoImplantacao: 10000,
	}

	roi := CalculateROI(params)

	if !approx(roi.PerdaEsperadaSemControles, 100000) {
		t.Errorf("PerdaEsperadaSemControles = %f, want 100000", roi.PerdaEsperadaSemControles)
	}
	if !approx(roi.PerdaComFirewall, 30000) {
		t.Errorf("PerdaComFirewall = %f, want 30000", roi.PerdaComFirewall)
	}
	if !approx(roi.PerdaComEndpoint, 20000) {
		t.Errorf("PerdaComEndpoint = %f, want 20000", roi.PerdaComEndpoint)
	}
	if !approx(roi.PerdaComBackup, 15000) {
		t.Errorf("PerdaComBackup = %f, want 15000", roi.PerdaComBackup)
	}
	if !approx(roi.PerdaCombinada, 900) {
		t.Errorf("PerdaCombinada = %f, want 900", roi.PerdaCombinada)
	}
	if !approx(roi.CustoAnualSolucao, 10000) {
		t.Errorf("CustoAnualSolucao = %f, want 10000", roi.CustoAnualSolucao)
	}
	if !approx(roi.PerdaEvitada, 99100) {
		t.Errorf("PerdaEvitada = %f, want 99100", roi.PerdaEvitada)
	}
	if !approx(roi.ROIPercentual, 891) {
		t.Errorf("ROIPercentual = %f, want 891", roi.ROIPercentual)
	}
}

func TestCalculateROIMultiplosPerigos(t *testing.T) {
	params := types.ROIParams{
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

	roi := CalculateROI(params)

	// 0.35*50000 + 0.25*75000 + 0.45*(2500*24) = 17500 + 18750 + 27000
	if !approx(roi.PerdaEsperadaSemControles, 63250) {
		t.Errorf("PerdaEsperadaSemControles = %f, want 63250", roi.PerdaEsperadaSemControles)
	}
	// 63250 * 0.30 * 0.20 * 0.15
	if !approx(roi.PerdaCombinada, 569.25) {
		t.Errorf("PerdaCombinada = %f, want 569.25", roi.PerdaCombinada)
	}
	if !approx(roi.CustoAnualSolucao, 45000) {
		t.Errorf("CustoAnualSolucao = %f, want 45000", roi.CustoAnualSolucao)
	}
	if !approx(roi.PerdaEvitada, 62680.75) {
		t.Errorf("PerdaEvitada = %f, want 62680.75", roi.PerdaEvitada)
	}

	want := (62680.75 - 45000) / 45000 * 100
	if !approx(roi.ROIPercentual, want) {
		t.Errorf("ROIPercentual = %f, want %f", roi.ROIPercentual, want)
	}
}

func TestCalculateROICustoZero(t *testing.T) {
	params := types.ROIParams{
		CustoMedioIncidenteRansomware: 100000,
		ProbRansomwareBase:            0.5,
		EficaciaFirewall:              0.5,
	}

	roi := CalculateROI(params)

	if !math.IsNaN(roi.ROIPercentual) {
		t.Errorf("ROIPercentual with zero annual cost = %f, want NaN", roi.ROIPercentual)
	}
	if math.IsNaN(roi.PerdaEsperadaSemControles) || math.IsNaN(roi.PerdaEvitada) {
		t.Error("loss projections must stay finite when annual cost is zero")
	}
}

func TestCalculateROIEscalaLinear(t *testing.T) {
	base := types.ROIParams{
		CustoMedioIncidenteRansomware: 40000,
		CustoMedioBreachDados:         60000,
		ProbRansomwareBase:            0.3,
		ProbBreachBase:                0.2,
		EficaciaFirewall:              0.6,
		EficaciaEndpoint:              0.5,
		EficaciaBackup:                0.4,
		CustoImplantacao:              5000,
		CustoMensal:                   1000,
	}

	dobro := base
	dobro.CustoMedioIncidenteRansomware *= 2
	dobro.CustoMedioBreachDados *= 2

	r1 := CalculateROI(base)
	r2 := CalculateROI(dobro)

	if !approx(r2.PerdaEsperadaSemControles, 2*r1.PerdaEsperadaSemControles) {
		t.Errorf("doubling costs should double base loss: %f vs %f", r2.PerdaEsperadaSemControles, r1.PerdaEsperadaSemControles)
	}
	if !approx(r2.PerdaCombinada, 2*r1.PerdaCombinada) {
		t.Errorf("doubling costs should double combined loss: %f vs %f", r2.PerdaCombinada, r1.PerdaCombinada)
	}
}
