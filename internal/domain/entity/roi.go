package entity

// ROIResult é o resultado de uma execução da calculadora de ROI.
// Todos os valores são anuais, em reais. ROIPercentual é NaN quando o
// custo anual da solução é zero (sentinela para "ROI indefinido").
type ROIResult struct {
	PerdaEsperadaSemControles float64 `json:"perda_esperada_sem_controles"`
	PerdaComFirewall          float64 `json:"perda_com_firewall"`
	PerdaComEndpoint          float64 `json:"perda_com_endpoint"`
	PerdaComBackup            float64 `json:"perda_com_backup"`
	PerdaCombinada            float64 `json:"perda_combinada"`
	CustoImplantacao          float64 `json:"custo_implantacao"`
	CustoMensal               float64 `json:"custo_mensal"`
	CustoAnualSolucao         float64 `json:"custo_anual_solucao"`
	PerdaEvitada              float64 `json:"perda_evitada"`
	ROIPercentual             float64 `json:"roi_percentual"`
}
