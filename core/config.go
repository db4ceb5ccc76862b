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

type Config struct {
	Env      string
	Debug    bool
	TestMode bool
	AppName  string
	Build    string

	Server struct {
		Host            string
		Addr            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}

	// Canvas is the upstream LMS the deadline feed is pulled from.
	Canvas struct {
		BaseURL string
		Token   string
	}

	// Timezone is the institution's local zone; every due date is expressed in it.
	Timezone     string
	RollbarToken string

	location *time.Location
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Kesho")
	v.SetDefault("build", "develop")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("serverDebugHost", "localhost:8001")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("canvasBaseUrl", "https://clemson.instructure.com")
	v.SetDefault("timezone", "US/Eastern")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	testMode := false
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	// the upstream API credential is supplied out-of-band, un-prefixed
	_ = v.BindEnv("canvasApiToken", "CANVAS_API_TOKEN")
	_ = v.BindEnv("rollbarToken", "ROLLBAR_TOKEN")

	conf := &Config{
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     testMode,
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		Timezone:     v.GetString("timezone"),
		RollbarToken: v.GetString("rollbarToken"),
	}
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.Addr = v.GetString("serverAddr")
	conf.Server.DebugHost = v.GetString("serverDebugHost")
	conf.Server.ShutdownTimeout = v.GetDuration("serverShutdownTimeout")
	conf.Canvas.BaseURL = v.GetString("canvasBaseUrl")
	conf.Canvas.Token = v.GetString("canvasApiToken")

	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		log.Fatalf("config.time.LoadLocation(%s): %v", conf.Timezone, err)
	}
	conf.location = loc

	return conf
}

// Location returns the institution's local zone.
func (conf *Config) Location() *time.Location {
	return conf.location
}
