package repository

import (
	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration and
// intake files.
type ConfigRepository interface {
	// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
	LoadConfigFile(filePath string) (*types.Config, error)

	// LoadIntakeFile carrega um perfil de cliente pré-preenchido, nos
	// mesmos três formatos, para execuções não interativas.
	LoadIntakeFile(filePath string) (*entity.Profile, error)

	// LoadParameters resolve as tabelas de conhecimento efetivas:
	// defaults compilados, sobrescritos pelo arquivo de configuração
	// quando presente, com eficácias normalizadas para [0,1].
	LoadParameters(configFile string) (types.Parameters, error)
}
