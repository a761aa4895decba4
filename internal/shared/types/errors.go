package types

import "errors"

var (
	ErrIntakeFileRequired = errors.New("an intake file is required when running with --export-only")
	ErrUnknownReportType  = errors.New("unknown report type; supported: html, pdf, json, csv")
	ErrEmptyCompanyName   = errors.New("company name is required before exporting a report")
)
