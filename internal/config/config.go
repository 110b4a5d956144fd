package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ihbirlik/geocoord-pro/internal/pkg/bst"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
)

const envPrefix = "GEOCOORD"

func setDefaults() {
	viper.SetDefault(constants.ViperServerAddrKey, ":8080")
	viper.SetDefault(constants.ViperServerAllowOriginsKey, []string{"http://localhost:3000"})
	viper.SetDefault(constants.ViperStorageDriverKey, constants.StorageDriverPostgres)
	viper.SetDefault(constants.ViperPostgresDSNKey, "postgres://localhost:5432/geocoord")
	viper.SetDefault(constants.ViperPostgresConnectRetriesKey, 10)
	viper.SetDefault(constants.ViperLogLevelKey, "info")
	viper.SetDefault(constants.ViperLogModeKey, "development")
	viper.SetDefault(constants.ViperBSTIntervalKey, 5.0)
	viper.SetDefault(constants.ViperBSTPressureTypeKey, string(bst.DefaultStageDefaults().PressureType))
	viper.SetDefault(constants.ViperBSTMaxPressureKey, 6.0)
	viper.SetDefault(constants.ViperBSTReversibleKey, true)
	viper.SetDefault(constants.ViperRecomputeConcurrencyKey, 4)
}

// Init loads .env, defaults, the optional config file and GEOCOORD_*
// environment overrides into the global viper instance. An empty path looks
// for ./config.yaml and tolerates its absence.
func Init(path string) error {
	_ = godotenv.Load() // a missing .env is fine

	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("viper.ReadInConfig, path-%s: %w", path, err)
		}
		return nil
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	return nil
}

// StageDefaults returns the configured setup for newly added test stages.
func StageDefaults() bst.StageDefaults {
	return bst.StageDefaults{
		Interval:     viper.GetFloat64(constants.ViperBSTIntervalKey),
		PressureType: bst.NormalizePressureType(viper.GetString(constants.ViperBSTPressureTypeKey)),
		MaxPressure:  viper.GetFloat64(constants.ViperBSTMaxPressureKey),
		Reversible:   viper.GetBool(constants.ViperBSTReversibleKey),
	}
}

func RecomputeConcurrency() int {
	n := viper.GetInt(constants.ViperRecomputeConcurrencyKey)
	if n <= 0 {
		return 1
	}
	return n
}
