package entity

import "time"

// ReportData é o snapshot completo entregue à camada de apresentação e
// exportação: perfil coletado mais todas as saídas derivadas. É um
// artefato de escrita única, sem ciclo de vida próprio.
type ReportData struct {
	ReportID    string             `json:"report_id"`
	SessionID   string             `json:"session_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Profile     Profile            `json:"profile"`
	Riscos      []RiskFinding      `json:"riscos"`
	ROI         ROIResult          `json:"roi"`
	Equipamento FirewallSuggestion `json:"equipamento"`
}
