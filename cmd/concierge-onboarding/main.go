package main

import (
	"fmt"
	"os"

	"github.com/qostecnologia/concierge-onboarding/internal/adapter/driven/config"
	"github.com/qostecnologia/concierge-onboarding/internal/adapter/driven/export"
	"github.com/qostecnologia/concierge-onboarding/internal/adapter/driven/store"
	"github.com/qostecnologia/concierge-onboarding/internal/adapter/driving/cli"
	"github.com/qostecnologia/concierge-onboarding/internal/application/usecase"
	"github.com/qostecnologia/concierge-onboarding/pkg/console"
	"github.com/qostecnologia/concierge-onboarding/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	profileRepo := store.NewProfileStore()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	onboardingUseCase := usecase.NewOnboardingUseCase(
		profileRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetOnboardingUseCase(onboardingUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
