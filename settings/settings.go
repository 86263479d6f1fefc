package settings

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var lock = &sync.Mutex{}
var singleSettingsInstace *Settings

type Settings struct {
	MONGO_CONNECTION    string `validate:"required,oneof=mongodb mongodb+srv"`
	MONGO_DB            string `validate:"required"`
	MONGO_ROOT_USERNAME string
	MONGO_ROOT_PASSWORD string
	MONGO_HOST          string `validate:"required"`
	NATS_HOST           string
	AWS_BUCKET          string
	AWS_REGION          string `validate:"required_with=AWS_BUCKET"`
	ELS_HOST            string
	ELS_PASSWORD        string
	ELS_PORT            int `validate:"min=0,max=65535"`
	ELS_USERNAME        string
	CLIENT_URL          string
	PDF_FONT            string
	NODE_ENV            string `validate:"oneof=dev test prod"`
}

// MongoURI builds the connection string from the split MONGO_* keys.
func (s *Settings) MongoURI() string {
	if s.MONGO_ROOT_USERNAME == "" {
		return fmt.Sprintf("%s://%s", s.MONGO_CONNECTION, s.MONGO_HOST)
	}
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		s.MONGO_CONNECTION,
		s.MONGO_ROOT_USERNAME,
		s.MONGO_ROOT_PASSWORD,
		s.MONGO_HOST,
	)
}

func (s *Settings) IsProd() bool {
	return s.NODE_ENV == "prod"
}

func newViper() *viper.Viper {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("MONGO_CONNECTION", "mongodb")
	conf.SetDefault("MONGO_DB", "")
	conf.SetDefault("MONGO_ROOT_USERNAME", "")
	conf.SetDefault("MONGO_ROOT_PASSWORD", "")
	conf.SetDefault("MONGO_HOST", "")
	conf.SetDefault("NATS_HOST", "")
	conf.SetDefault("AWS_BUCKET", "")
	conf.SetDefault("AWS_REGION", "")
	conf.SetDefault("ELS_HOST", "")
	conf.SetDefault("ELS_PASSWORD", "")
	conf.SetDefault("ELS_PORT", 9200)
	conf.SetDefault("ELS_USERNAME", "")
	conf.SetDefault("CLIENT_URL", "localhost:3000")
	conf.SetDefault("PDF_FONT", "")
	conf.SetDefault("NODE_ENV", "dev")
	conf.AutomaticEnv()
	return conf
}

// Load reads and validates the settings without touching the singleton.
func Load() (*Settings, error) {
	conf := newViper()
	s := &Settings{
		MONGO_CONNECTION:    conf.GetString("MONGO_CONNECTION"),
		MONGO_DB:            conf.GetString("MONGO_DB"),
		MONGO_ROOT_USERNAME: conf.GetString("MONGO_ROOT_USERNAME"),
		MONGO_ROOT_PASSWORD: conf.GetString("MONGO_ROOT_PASSWORD"),
		MONGO_HOST:          conf.GetString("MONGO_HOST"),
		NATS_HOST:           conf.GetString("NATS_HOST"),
		AWS_BUCKET:          conf.GetString("AWS_BUCKET"),
		AWS_REGION:          conf.GetString("AWS_REGION"),
		ELS_HOST:            conf.GetString("ELS_HOST"),
		ELS_PASSWORD:        conf.GetString("ELS_PASSWORD"),
		ELS_PORT:            conf.GetInt("ELS_PORT"),
		ELS_USERNAME:        conf.GetString("ELS_USERNAME"),
		CLIENT_URL:          conf.GetString("CLIENT_URL"),
		PDF_FONT:            conf.GetString("PDF_FONT"),
		NODE_ENV:            conf.GetString("NODE_ENV"),
	}
	if err := validator.New().Struct(s); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return s, nil
}

func init() {
	if os.Getenv("NODE_ENV") != "prod" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("settings: cannot load .env: %v", err)
		}
	}
}

func GetSettings() *Settings {
	lock.Lock()
	defer lock.Unlock()
	if singleSettingsInstace == nil {
		s, err := Load()
		if err != nil {
			panic(err)
		}
		singleSettingsInstace = s
	}
	return singleSettingsInstace
}
