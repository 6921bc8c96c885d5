package config

import (
	"log"
	"os"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Cors struct {
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"https://exploride.pl"`
	}
	Facebook struct {
		PageToken     string `env:"FB_PAGE_TOKEN"`
		GraphBaseURL  string `env:"FB_GRAPH_BASE_URL" env-default:"https://graph.facebook.com/v19.0"`
		DefaultPageID string `env:"FB_DEFAULT_PAGE_ID"`
	}
	Gallery struct {
		ManifestPath  string `env:"GALLERY_MANIFEST_PATH"`
		ReloadMinutes int    `env:"GALLERY_RELOAD_MINUTES" env-default:"0"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}

		var err error
		if _, statErr := os.Stat(".env"); statErr == nil {
			err = cleanenv.ReadConfig(".env", cfg)
		} else {
			err = cleanenv.ReadEnv(cfg)
		}

		if err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
