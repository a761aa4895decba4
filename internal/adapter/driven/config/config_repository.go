package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/qostecnologia/concierge-onboarding/internal/domain/entity"
	"github.com/qostecnologia/concierge-onboarding/internal/domain/repository"
	"github.com/qostecnologia/concierge-onboarding/internal/shared/types"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	var config types.Config
	if err := unmarshalFile(filePath, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadIntakeFile carrega um perfil de cliente pré-preenchido.
func (r *ConfigRepositoryImpl) LoadIntakeFile(filePath string) (*entity.Profile, error) {
	var profile entity.Profile
	if err := unmarshalFile(filePath, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// LoadParameters resolve as tabelas de conhecimento efetivas da execução:
// defaults compilados, com seções sobrescritas pelo arquivo quando
// presente. Eficácias e probabilidades são normalizadas para [0,1].
func (r *ConfigRepositoryImpl) LoadParameters(configFile string) (types.Parameters, error) {
	params := types.Parameters{
		Riscos:   DefaultRiskTable(),
		ROI:      DefaultROIParams(),
		Catalogo: DefaultCatalog(),
	}

	if configFile != "" {
		config, err := r.LoadConfigFile(configFile)
		if err != nil {
			return types.Parameters{}, err
		}
		if config.Riscos != nil {
			params.Riscos = *config.Riscos
		}
		if config.ROI != nil {
			params.ROI = *config.ROI
		}
		if len(config.Catalogo) > 0 {
			params.Catalogo = config.Catalogo
		}
	}

	params.ROI.EficaciaFirewall = clampFraction(params.ROI.EficaciaFirewall)
	params.ROI.EficaciaEndpoint = clampFraction(params.ROI.EficaciaEndpoint)
	params.ROI.EficaciaBackup = clampFraction(params.ROI.EficaciaBackup)
	params.ROI.ProbRansomwareBase = clampFraction(params.ROI.ProbRansomwareBase)
	params.ROI.ProbBreachBase = clampFraction(params.ROI.ProbBreachBase)
	params.ROI.ProbIndisponibilidadeBase = clampFraction(params.ROI.ProbIndisponibilidadeBase)

	return params, nil
}

// unmarshalFile decodifica um arquivo TOML, YAML ou JSON pelo sufixo.
func unmarshalFile(filePath string, out interface{}) error {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, out); err != nil {
			return fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, out); err != nil {
			return fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, out); err != nil {
			return fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return nil
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
