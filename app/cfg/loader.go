package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Backend catalog service
	Host     string `long:"host" env:"CATALOG_HOSTNAME" description:"Hostname of the backend catalog service (e.g. sapes5.sapdevcenter.com)"`
	User     string `long:"user" env:"CATALOG_USER" description:"User id for HTTP Basic authentication against the backend"`
	Password string `long:"password" env:"CATALOG_PASSWORD" description:"Password for HTTP Basic authentication against the backend"`

	// Application configuration
	Port           string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	UserAgent      string `long:"user-agent" env:"USER_AGENT" default:"Catalog Browser/1.0" description:"User agent string for outbound requests"`
	RequestTimeout int    `long:"request-timeout" env:"REQUEST_TIMEOUT" default:"30" description:"Outbound request timeout in seconds"`

	// Optional system profiles
	ProfilesFile string `long:"profiles-file" env:"CATALOG_PROFILES_FILE" description:"Path to a YAML file with named backend system profiles"`
	Profile      string `long:"profile" env:"CATALOG_PROFILE" description:"Name of the profile to activate from the profiles file"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Host:           raw.Host,
		User:           raw.User,
		Password:       raw.Password,
		Port:           raw.Port,
		UserAgent:      raw.UserAgent,
		RequestTimeout: raw.RequestTimeout,
		ProfilesFile:   raw.ProfilesFile,
		Profile:        raw.Profile,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	if cfg.Profile != "" {
		if err := applyProfile(cfg, cfg.ProfilesFile, cfg.Profile); err != nil {
			return nil, err
		}
	}

	if cfg.Host == "" {
		return nil, fmt.Errorf("no catalog service hostname configured (set CATALOG_HOSTNAME or select a profile)")
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
