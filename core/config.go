package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "Escolar")
	Conf.SetDefault("build", "develop")
	Conf.SetDefault("rollbarToken", "")
	Conf.SetDefault("apiUrl", "http://127.0.0.1:8000")
	Conf.SetDefault("apiTimeout", 15*time.Second)
	Conf.SetDefault("sessionFile", defaultSessionFile())
	Conf.SetDefault("sandboxAddress", ":8000")
	Conf.SetDefault("sandboxSecretKey", "poq5-wer)enb$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	Conf.SetDefault("sandboxDisableReqLogs", false)
	Conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		Conf.SetDefault("testMode", true)
	}
	Conf.SetDefault("env", env)
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "escolar", "session.json")
}

type (
	APIConfig struct {
		URL     string
		Timeout time.Duration
	}

	SandboxConfig struct {
		Address            string
		SecretKey          string
		DisableReqLogs     bool
		JWTExpirationDelta time.Duration
	}

	Config struct {
		Env          string
		Debug        bool
		TestMode     bool
		AppName      string
		Build        string
		RollbarToken string
		SessionFile  string
		API          APIConfig
		Sandbox      SandboxConfig
	}
)

// NewConfig snapshots Conf into a Config.
func NewConfig() *Config {
	return &Config{
		Env:          Conf.GetString("env"),
		Debug:        Conf.GetBool("debug"),
		TestMode:     Conf.GetBool("testMode"),
		AppName:      Conf.GetString("appName"),
		Build:        Conf.GetString("build"),
		RollbarToken: Conf.GetString("rollbarToken"),
		SessionFile:  Conf.GetString("sessionFile"),
		API: APIConfig{
			URL:     strings.TrimRight(Conf.GetString("apiUrl"), "/"),
			Timeout: Conf.GetDuration("apiTimeout"),
		},
		Sandbox: SandboxConfig{
			Address:            Conf.GetString("sandboxAddress"),
			SecretKey:          Conf.GetString("sandboxSecretKey"),
			DisableReqLogs:     Conf.GetBool("sandboxDisableReqLogs"),
			JWTExpirationDelta: Conf.GetDuration("jwtExpirationDelta"),
		},
	}
}
