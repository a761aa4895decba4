package repository

import (
	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
)

// ExportRepository serializa um snapshot do relatório em artefatos
// autocontidos. Cada método devolve o caminho absoluto do arquivo gerado.
type ExportRepository interface {
	ExportToHTML(report entity.ReportData, filename, outputDir string) (string, error)
	ExportToPDF(report entity.ReportData, filename, outputDir string) (string, error)
	ExportToJSON(report entity.ReportData, filename, outputDir string) (string, error)
	ExportRisksToCSV(report entity.ReportData, filename, outputDir string) (string, error)
}
