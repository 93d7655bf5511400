package core

import (
	"log"
	"net"
	"net/mail"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug            bool
		TestMode         bool
		Env              string
		Build            string
		AppName          string
		SecretKey        string
		FrontendBaseURL  string
		SendgridApiKey   string
		RollbarToken     string
		defaultFromEmail string

		API      APIConfig
		Server   ServerConfig
		UI       UIConfig
		Database DatabaseConfig
	}

	// APIConfig points at the external content API.
	APIConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	ServerConfig struct {
		Host            string
		Address         string
		DebugAddress    string
		ShutdownTimeout time.Duration
		VisitorTokenTTL time.Duration
		DisableReqLogs  bool
	}

	// UIConfig holds the fixed delays of the page wizards.
	UIConfig struct {
		SuccessResetDelay time.Duration
		VerifyDelay       time.Duration
	}

	DatabaseConfig struct {
		Enabled       bool
		Engine        string
		Host          string
		Port          int
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		DisableTLS    bool
	}
)

func (c *Config) DefaultFromEmail() mail.Address {
	addr, err := mail.ParseAddress(c.defaultFromEmail)
	if err != nil {
		return mail.Address{Name: c.AppName, Address: "noreply@localhost"}
	}
	if addr.Name == "" {
		addr.Name = c.AppName
	}
	return *addr
}

func (db DatabaseConfig) Address() string {
	return net.JoinHostPort(db.Host, strconv.Itoa(db.Port))
}

// NewConfig loads the configuration of the current ENV (DEV by default).
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("build", "develop")
	v.SetDefault("appName", "GodCares")
	v.SetDefault("secretKey", "u7%k!b2m$pq0=zx&d9w+ag4(hf)c1#e8r5t^y3ls6nvj*o")
	v.SetDefault("defaultFromEmail", "GodCares <noreply@localhost>")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("frontendBaseURL", "http://localhost:8000")
	v.SetDefault("api.baseURL", "")
	v.SetDefault("api.timeout", 15*time.Second)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.debugAddress", ":4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.visitorTokenTTL", 365*24*time.Hour)
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("ui.successResetDelay", 3*time.Second)
	v.SetDefault("ui.verifyDelay", 1200*time.Millisecond)
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.engine", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "godcares")
	v.SetDefault("database.user", "godcares")
	v.SetDefault("database.password", "godcares")
	v.SetDefault("database.adminUser", "")
	v.SetDefault("database.adminPassword", "")
	v.SetDefault("database.disableTLS", true)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	if wd, err := os.Getwd(); err == nil {
		dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
		}
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:            v.GetBool("debug"),
		TestMode:         v.GetBool("testMode"),
		Env:              env,
		Build:            v.GetString("build"),
		AppName:          v.GetString("appName"),
		SecretKey:        v.GetString("secretKey"),
		FrontendBaseURL:  strings.TrimRight(v.GetString("frontendBaseURL"), "/"),
		SendgridApiKey:   v.GetString("sendgridApiKey"),
		RollbarToken:     v.GetString("rollbarToken"),
		defaultFromEmail: v.GetString("defaultFromEmail"),
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("api.baseURL"), "/"),
			Timeout: v.GetDuration("api.timeout"),
		},
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Address:         v.GetString("server.address"),
			DebugAddress:    v.GetString("server.debugAddress"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			VisitorTokenTTL: v.GetDuration("server.visitorTokenTTL"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
		},
		UI: UIConfig{
			SuccessResetDelay: v.GetDuration("ui.successResetDelay"),
			VerifyDelay:       v.GetDuration("ui.verifyDelay"),
		},
		Database: DatabaseConfig{
			Enabled:       v.GetBool("database.enabled"),
			Engine:        v.GetString("database.engine"),
			Host:          v.GetString("database.host"),
			Port:          v.GetInt("database.port"),
			Name:          v.GetString("database.name"),
			User:          v.GetString("database.user"),
			Password:      v.GetString("database.password"),
			AdminUser:     v.GetString("database.adminUser"),
			AdminPassword: v.GetString("database.adminPassword"),
			DisableTLS:    v.GetBool("database.disableTLS"),
		},
	}

	// the API lives on the page's own origin unless configured otherwise
	if conf.API.BaseURL == "" {
		conf.API.BaseURL = conf.FrontendBaseURL
	}
	return conf
}

// NewTestConfig returns a Config suitable for tests: no external services, tiny UI delays.
func NewTestConfig(apiBaseURL string) *Config {
	return &Config{
		Debug:            false,
		TestMode:         true,
		Env:              "TEST",
		Build:            "test",
		AppName:          "GodCares",
		SecretKey:        "secret",
		FrontendBaseURL:  "http://localhost",
		defaultFromEmail: "GodCares <noreply@localhost>",
		API:              APIConfig{BaseURL: apiBaseURL, Timeout: 5 * time.Second},
		Server: ServerConfig{
			Host:            "localhost",
			ShutdownTimeout: time.Second,
			VisitorTokenTTL: time.Hour,
			DisableReqLogs:  true,
		},
		UI: UIConfig{
			SuccessResetDelay: 10 * time.Millisecond,
			VerifyDelay:       10 * time.Millisecond,
		},
	}
}
