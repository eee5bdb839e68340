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
		Env      string // DEV (local; default), TEST, QA, PROD
		Build    string
		Debug    bool
		TestMode bool
		WorkDir  string

		AppName          string
		SecretKey        string
		RollbarToken     string
		SendgridApiKey   string
		defaultFromEmail string

		Server  ServerConfig
		Session SessionConfig
		CLI     CLIConfig
	}

	ServerConfig struct {
		Host            string
		Addr            string
		DebugAddr       string
		ShutdownTimeout time.Duration
	}

	SessionConfig struct {
		// LoginDelay simulates the latency of resolving credentials.
		LoginDelay    time.Duration
		Backend       string // cookie (default), redis, memory
		CookieName    string
		CookieMaxAge  time.Duration
		RedisAddr     string
		RedisPassword string
		RedisPrefix   string
	}

	CLIConfig struct {
		SessionFile string
	}
)

// Session backends
const (
	SessionBackendCookie = "cookie"
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "develop")
	conf.SetDefault("appName", "EduConnect")
	conf.SetDefault("secretKey", "k2#v9-zq!4fr@8uye$1m7p^oc0(ws)&hd5l+t3x=gnj6ba")
	conf.SetDefault("defaultFromEmail", "noreply@school.edu")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("sendgridApiKey", "")

	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverDebugAddr", ":4000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)

	conf.SetDefault("sessionLoginDelay", time.Second)
	conf.SetDefault("sessionBackend", SessionBackendCookie)
	conf.SetDefault("sessionCookieName", "currentUser")
	conf.SetDefault("sessionCookieMaxAge", 30*24*time.Hour)
	conf.SetDefault("sessionRedisAddr", "127.0.0.1:6379")
	conf.SetDefault("sessionRedisPassword", "")
	conf.SetDefault("sessionRedisPrefix", "educonnect:session")

	conf.SetDefault("cliSessionFile", defaultCLISessionFile())

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	workDir, _ := os.Getwd()
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:              env,
		Build:            conf.GetString("build"),
		Debug:            conf.GetBool("debug"),
		TestMode:         conf.GetBool("testMode"),
		WorkDir:          workDir,
		AppName:          conf.GetString("appName"),
		SecretKey:        conf.GetString("secretKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
		SendgridApiKey:   conf.GetString("sendgridApiKey"),
		defaultFromEmail: conf.GetString("defaultFromEmail"),
		Server: ServerConfig{
			Host:            conf.GetString("serverHost"),
			Addr:            conf.GetString("serverAddr"),
			DebugAddr:       conf.GetString("serverDebugAddr"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
		},
		Session: SessionConfig{
			LoginDelay:    conf.GetDuration("sessionLoginDelay"),
			Backend:       strings.ToLower(conf.GetString("sessionBackend")),
			CookieName:    conf.GetString("sessionCookieName"),
			CookieMaxAge:  conf.GetDuration("sessionCookieMaxAge"),
			RedisAddr:     conf.GetString("sessionRedisAddr"),
			RedisPassword: conf.GetString("sessionRedisPassword"),
			RedisPrefix:   conf.GetString("sessionRedisPrefix"),
		},
		CLI: CLIConfig{
			SessionFile: conf.GetString("cliSessionFile"),
		},
	}
}

func (c *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: c.AppName, Address: c.defaultFromEmail}
}

// NewTestConfig returns a Config suitable for tests: no delays, in-memory sessions.
func NewTestConfig() *Config {
	return &Config{
		Env:              "TEST",
		Build:            "test",
		Debug:            false,
		TestMode:         true,
		AppName:          "EduConnect",
		SecretKey:        "test-secret",
		defaultFromEmail: "noreply@school.edu",
		Server: ServerConfig{
			Host:            "localhost",
			ShutdownTimeout: time.Second,
		},
		Session: SessionConfig{
			Backend:      SessionBackendCookie,
			CookieName:   "currentUser",
			CookieMaxAge: time.Hour,
			RedisPrefix:  "educonnect:test:session",
		},
	}
}

func defaultCLISessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".educonnect", "session.json")
	}
	return filepath.Join(home, ".educonnect", "session.json")
}
