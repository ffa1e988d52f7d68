package config

import (
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name  string `mapstructure:"NAME"`
		Port  string `mapstructure:"PORT"`
		State string `mapstructure:"STATE"`
	}

	DATABASE struct {
		Postgres struct {
			DSN string `mapstructure:"DSN"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
		}
	}

	APP_SECRET struct {
		Paseto struct {
			HexKey string `mapstructure:"HEX_KEY"`
		}
	}

	// PLANNING bündelt die Stellschrauben der Kapazitätsrechnung.
	PLANNING struct {
		NonProjectHours   float64 `mapstructure:"NON_PROJECT_HOURS"`   // Meetings/Admin pro Woche
		ClampThresholdPct float64 `mapstructure:"CLAMP_THRESHOLD_PCT"` // ab hier warnt die Allokation
		HeatmapWeeks      int     `mapstructure:"HEATMAP_WEEKS"`
	}

	MAILTRAP struct {
		Sandbox struct {
			SandboxHost   string `mapstructure:"SANDBOX_HOST"`
			SandboxAPI    string `mapstructure:"SANDBOX_API"`
			SandboxURL    string `mapstructure:"SANDBOX_URL"`
			SandboxDomain string `mapstructure:"SANDBOX_DOMAIN"`
		}
		API struct {
			APIToken         string `mapstructure:"API_TOKEN"`
			APIHost          string `mapstructure:"API_HOST"`
			MailtrapTokenAPI string `mapstructure:"MAILTRAP_TOKEN_API"`
			MailtrapURL      string `mapstructure:"MAILTRAP_URL"`
			MailtrapDomain   string `mapstructure:"MAILTRAP_DOMAIN"`
		}
	}
}

// LoadConfig liest application.yaml über viper ein und füllt fehlende Werte mit Defaults.
func LoadConfig() *AppConfig {
	viper.SetConfigName("application")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Error().Err(err).Msg("Fehler beim Lesen der Konfigurationsdatei")
		return nil
	}

	var config AppConfig
	if err := viper.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("Fehler beim Entpacken der Konfiguration")
		return nil
	}

	if config.APP.Port == "" {
		config.APP.Port = "8080"
	}

	if config.DATABASE.Postgres.DSN == "" {
		log.Error().Msg("Datenbank-DSN ist nicht konfiguriert")
		return nil
	}

	if config.APP_SECRET.Paseto.HexKey == "" {
		config.APP_SECRET.Paseto.HexKey = utils.GenerateSymmetricKey()
	}

	// Defaults der Kapazitätsrechnung, falls der Abschnitt PLANNING fehlt.
	if config.PLANNING.NonProjectHours <= 0 {
		config.PLANNING.NonProjectHours = 8
	}
	if config.PLANNING.ClampThresholdPct <= 0 {
		config.PLANNING.ClampThresholdPct = 120
	}
	if config.PLANNING.HeatmapWeeks <= 0 {
		config.PLANNING.HeatmapWeeks = 8
	}

	log.Info().Msg("Konfiguration geladen...")
	return &config
}
