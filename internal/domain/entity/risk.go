package entity

// RiskCategory é a severidade de um risco identificado.
type RiskCategory string

const (
	RiskAlto     RiskCategory = "alto"
	RiskModerado RiskCategory = "moderado"
	RiskBaixo    RiskCategory = "baixo"
)

// RiskFinding é uma linha do resultado do classificador de riscos:
// um risco nomeado com probabilidade, explicação, fator causador e
// mitigação sugerida. Nunca é persistido; é recalculado sob demanda.
type RiskFinding struct {
	Titulo            string       `json:"titulo"`
	Probabilidade     int          `json:"probabilidade"`
	Explicacao        string       `json:"explicacao"`
	FatorCausador     string       `json:"fator_causador"`
	MitigacaoSugerida string       `json:"mitigacao_sugerida"`
	Categoria         RiskCategory `json:"categoria"`
}
