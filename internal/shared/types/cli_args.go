package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	IntakeFile string
	ReportName string
	ReportType []string
	Dir        string
	ExportOnly bool
}
