package service

import (
	"math"

	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
)

// CalculateROI projeta a perda anual esperada sem controles, com cada
// controle isolado e com os três combinados, e deriva o ROI anual da
// solução.
//
// Modelo: três perigos (ransomware, vazamento de dados, indisponibilidade)
// com probabilidade e custo base independentes. Firewall e endpoint
// reduzem probabilidade; backup reduz impacto. No cenário combinado as
// reduções de probabilidade compõem multiplicativamente e a redução de
// impacto do backup é aplicada sobre o residual.
//
// Com custo anual da solução igual a zero o ROI é indefinido; o resultado
// carrega NaN como sentinela em vez de propagar uma divisão por zero.
func CalculateROI(params types.ROIParams) entity.ROIResult {
	perdaRansomware := params.ProbRansomwareBase * params.CustoMedioIncidenteRansomware
	perdaBreach := params.ProbBreachBase * params.CustoMedioBreachDados
	perdaIndisponibilidade := params.ProbIndisponibilidadeBase *
		(params.CustoHoraIndisponibilidade * params.HorasMediasParadaPorIncidente)

	perdaBase := perdaRansomware + perdaBreach + perdaIndisponibilidade

	perdaComFirewall := perdaBase * (1 - params.EficaciaFirewall)
	perdaComEndpoint := perdaBase * (1 - params.EficaciaEndpoint)
	perdaComBackup := perdaBase * (1 - params.EficaciaBackup)

	perdaCombinada := perdaBase *
		(1 - params.EficaciaFirewall) *
		(1 - params.EficaciaEndpoint) *
		(1 - params.EficaciaBackup)

	custoAnual := params.CustoImplantacao + params.CustoMensal*12
	perdaEvitada := perdaBase - perdaCombinada

	roi := math.NaN()
	if custoAnual != 0 {
		roi = ((perdaEvitada - custoAnual) / custoAnual) * 100
	}

	return entity.ROIResult{
		PerdaEsperadaSemControles: perdaBase,
		PerdaComFirewall:          perdaComFirewall,
		PerdaComEndpoint:          perdaComEndpoint,
		PerdaComBackup:            perdaComBackup,
		PerdaCombinada:            perdaCombinada,
		CustoImplantacao:          params.CustoImplantacao,
		CustoMensal:               params.CustoMensal,
		CustoAnualSolucao:         custoAnual,
		PerdaEvitada:              perdaEvitada,
		ROIPercentual:             roi,
	}
}
