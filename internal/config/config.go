package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"GPAConverter/pkg/gradescale"
)

const (
	configPathEnv = "GPA_CONVERTER_CONFIG"
	usernameEnv   = "CAGR_USERNAME"
	passwordEnv   = "CAGR_PASSWORD"

	// Unprefixed variants are also accepted, matching plain .env files.
	fallbackUsernameEnv = "USERNAME"
	fallbackPasswordEnv = "PASSWORD"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging     LoggingConfig `yaml:"logging"`
	Portal      PortalConfig  `yaml:"portal"`
	Cache       CacheConfig   `yaml:"cache"`
	Export      ExportConfig  `yaml:"export"`
	Scales      []ScaleConfig `yaml:"scales"`
	Credentials Credentials   `yaml:"-"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// PortalConfig describes the academic records portal endpoints.
type PortalConfig struct {
	LoginURL       string `yaml:"loginUrl"`
	WallURL        string `yaml:"wallUrl"`
	RecordURL      string `yaml:"recordUrl"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
	WeeksPerTerm   int    `yaml:"weeksPerTerm"`
}

// Timeout resolves the HTTP timeout for portal requests.
func (p PortalConfig) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// TermWeeks resolves the divisor that turns class hours into credits.
func (p PortalConfig) TermWeeks() float64 {
	if p.WeeksPerTerm <= 0 {
		return 18
	}
	return float64(p.WeeksPerTerm)
}

// CacheConfig bounds how long a scraped transcript is reused.
type CacheConfig struct {
	TTLMinutes int `yaml:"ttlMinutes"`
}

// TTL resolves the transcript cache lifetime.
func (c CacheConfig) TTL() time.Duration {
	if c.TTLMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.TTLMinutes) * time.Minute
}

// ExportConfig sets the spreadsheet destinations.
type ExportConfig struct {
	Path         string `yaml:"path"`
	Translations string `yaml:"translations"`
}

// Credentials come exclusively from the environment or a .env file, never
// from YAML.
type Credentials struct {
	Username string
	Password string
}

// ScaleConfig declares one conversion table. Entries follow the same rules
// gradescale enforces at registration.
type ScaleConfig struct {
	ID       int           `yaml:"id"`
	Name     string        `yaml:"name"`
	Source   string        `yaml:"source"`
	MaxGrade float64       `yaml:"maxGrade"`
	Entries  []EntryConfig `yaml:"entries"`
}

// EntryConfig is one breakpoint row in YAML form.
type EntryConfig struct {
	Min float64 `yaml:"min"`
	GPA float64 `yaml:"gpa"`
}

// LoadDotenv loads an optional .env file into the process environment before
// Load reads it. A missing file is fine.
func LoadDotenv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: cannot load .env: %v", err)
	}
}

// Load reads YAML configuration (if present) and applies environment
// overrides. An explicit path wins over the GPA_CONVERTER_CONFIG variable.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// ScaleSet converts the configured tables for registration. With no scales
// configured, the three published reference tables apply.
func (c Config) ScaleSet() []gradescale.Scale {
	if len(c.Scales) == 0 {
		return gradescale.DefaultScales()
	}

	scales := make([]gradescale.Scale, 0, len(c.Scales))
	for _, sc := range c.Scales {
		entries := make([]gradescale.Entry, 0, len(sc.Entries))
		for _, e := range sc.Entries {
			entries = append(entries, gradescale.Entry{Min: e.Min, GPA: e.GPA})
		}
		scales = append(scales, gradescale.Scale{
			ID:       sc.ID,
			Name:     sc.Name,
			Source:   sc.Source,
			MaxGrade: sc.MaxGrade,
			Entries:  entries,
		})
	}
	return scales
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(usernameEnv); v != "" {
		c.Credentials.Username = v
	} else if v := os.Getenv(fallbackUsernameEnv); v != "" {
		c.Credentials.Username = v
	}

	if v := os.Getenv(passwordEnv); v != "" {
		c.Credentials.Password = v
	} else if v := os.Getenv(fallbackPasswordEnv); v != "" {
		c.Credentials.Password = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Portal.LoginURL != "" {
		base.Portal.LoginURL = override.Portal.LoginURL
	}
	if override.Portal.WallURL != "" {
		base.Portal.WallURL = override.Portal.WallURL
	}
	if override.Portal.RecordURL != "" {
		base.Portal.RecordURL = override.Portal.RecordURL
	}
	if override.Portal.TimeoutSeconds > 0 {
		base.Portal.TimeoutSeconds = override.Portal.TimeoutSeconds
	}
	if override.Portal.WeeksPerTerm > 0 {
		base.Portal.WeeksPerTerm = override.Portal.WeeksPerTerm
	}

	if override.Cache.TTLMinutes > 0 {
		base.Cache.TTLMinutes = override.Cache.TTLMinutes
	}

	if override.Export.Path != "" {
		base.Export.Path = override.Export.Path
	}
	if override.Export.Translations != "" {
		base.Export.Translations = override.Export.Translations
	}

	if len(override.Scales) > 0 {
		base.Scales = override.Scales
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Portal: PortalConfig{
			LoginURL:       "https://sistemas.ufsc.br/login?service=https%3A%2F%2Fcagr.sistemas.ufsc.br%2Fj_spring_cas_security_check&userType=padrao&convertToUserType=alunoGraduacao&lockUserType=1",
			WallURL:        "https://collecta.sistemas.ufsc.br/restrito/confirmacaoFrame.xhtml",
			RecordURL:      "https://cagr.sistemas.ufsc.br/modules/aluno/historicoEscolar/",
			TimeoutSeconds: 20,
			WeeksPerTerm:   18,
		},
		Cache: CacheConfig{TTLMinutes: 15},
		Export: ExportConfig{
			Path:         "exported_translated_transcript.xlsx",
			Translations: "translated.xlsx",
		},
	}
}
