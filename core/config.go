package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (local; default), TEST, QA, PROD
		Build    string

		AppName          string
		SecretKey        string
		FrontendBaseURL  string
		defaultFromEmail string
		SendgridApiKey   string
		RollbarToken     string
		WorkDir          string

		Server     ServerConfig
		Storage    StorageConfig
		Moderation ModerationConfig
		Chat       ChatConfig
	}

	ServerConfig struct {
		Host               string
		Addr               string
		DebugAddr          string
		JWTExpirationDelta time.Duration
		ShutdownTimeout    time.Duration
	}

	StorageConfig struct {
		Dir string // directory holding the durable JSON records
	}

	ModerationConfig struct {
		PassRate float64 // probability that a submission passes the gate
	}

	ChatConfig struct {
		ReplyDelay time.Duration // cosmetic delay hint returned to clients
	}
)

func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "dev")
	conf.SetDefault("appName", "Vruksha")
	conf.SetDefault("secretKey", "x#mw2ju)0_=g3%8o+ajbd^u4$kq5!vru7(ty&ze9f-cnp1")
	conf.SetDefault("frontendBaseURL", "http://localhost:3000")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverDebugAddr", ":8001")
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("shutdownTimeout", 5*time.Second)
	conf.SetDefault("storageDir", filepath.Join(Getwd(), "data"))
	conf.SetDefault("moderationPassRate", 0.8)
	conf.SetDefault("chatReplyDelay", time.Second)

	env := os.Getenv("ENV")
	testMode := false
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:            conf.GetBool("debug"),
		TestMode:         testMode,
		Env:              env,
		Build:            conf.GetString("build"),
		AppName:          conf.GetString("appName"),
		SecretKey:        conf.GetString("secretKey"),
		FrontendBaseURL:  conf.GetString("frontendBaseURL"),
		defaultFromEmail: conf.GetString("defaultFromEmail"),
		SendgridApiKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
		WorkDir:          Getwd(),
		Server: ServerConfig{
			Host:               conf.GetString("serverHost"),
			Addr:               conf.GetString("serverAddr"),
			DebugAddr:          conf.GetString("serverDebugAddr"),
			JWTExpirationDelta: conf.GetDuration("jwtExpirationDelta"),
			ShutdownTimeout:    conf.GetDuration("shutdownTimeout"),
		},
		Storage: StorageConfig{
			Dir: conf.GetString("storageDir"),
		},
		Moderation: ModerationConfig{
			PassRate: conf.GetFloat64("moderationPassRate"),
		},
		Chat: ChatConfig{
			ReplyDelay: conf.GetDuration("chatReplyDelay"),
		},
	}
}

func (c *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: c.AppName, Address: c.defaultFromEmail}
}
