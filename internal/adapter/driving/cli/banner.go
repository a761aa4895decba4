package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/qostecnologia/concierge-onboarding/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$                               /$$
         /$$__  $$                             |__/
        | $$  \__/  /$$$$$$  /$$$$$$$   /$$$$$$$ /$$  /$$$$$$   /$$$$$$   /$$$$$$
        | $$       /$$__  $$| $$__  $$ /$$_____/| $$ /$$__  $$ /$$__  $$ /$$__  $$
        | $$      | $$  \ $$| $$  \ $$| $$      | $$| $$$$$$$$| $$  \__/| $$  \ $$
        | $$    $$| $$  | $$| $$  | $$| $$      | $$| $$_____/| $$      | $$  | $$
        |  $$$$$$/|  $$$$$$/| $$  | $$|  $$$$$$$| $$|  $$$$$$$| $$      |  $$$$$$$
         \______/  \______/ |__/  |__/ \_______/|__/ \_______/|__/       \____  $$
                                                                         /$$  \ $$
                                                                        |  $$$$$$/
                                                                         \______/
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Concierge Segurança Digital - Onboarding CLI (v%s)", formattedVersion)))
}
