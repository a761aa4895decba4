package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qostecnologia/concierge-onboarding/internal/application/usecase"
	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
	"github.com/qostecnologia/concierge-onboarding/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd           *cobra.Command
	onboardingUseCase *usecase.OnboardingUseCase
	version           string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "concierge-onboarding",
		Short:   "Assistente de onboarding Concierge Segurança Digital",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Concierge Onboarding version: %s\n" .Version}}`)

	// Flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("intake-file", "i", "", "Path to a pre-filled client profile (TOML, YAML, or JSON); skips the wizard")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: html, pdf, json, csv")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("export-only", false, "Export the report from an intake file without entering the wizard")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	intakeFile, _ := app.rootCmd.Flags().GetString("intake-file")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	exportOnly, _ := app.rootCmd.Flags().GetBool("export-only")

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile: configFile,
		IntakeFile: intakeFile,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		ExportOnly: exportOnly,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.onboardingUseCase.RunOnboarding(ctx, cliArgs)
}

// SetOnboardingUseCase sets the onboarding use case for the CLI app.
func (app *CLIApp) SetOnboardingUseCase(useCase *usecase.OnboardingUseCase) {
	app.onboardingUseCase = useCase
}
