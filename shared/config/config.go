package config

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port              int           `yaml:"port"`
	CORSAllowedOrigin string        `yaml:"cors_allowed_origin"`
	SecureCookies     bool          `yaml:"secure_cookies"`
	JwtTTL            time.Duration `yaml:"jwt_ttl"`
	WorshipWeekday    string        `yaml:"worship_weekday"` // weekday bulletins are expected to fall on
	RotationWeeks     int           `yaml:"rotation_weeks"`  // default duty-rotation planning horizon
	LogLevel          string        `yaml:"log_level"`
	LogJSON           bool          `yaml:"log_json"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Weekday resolves the configured worship weekday, defaulting to Saturday
// when unset and failing loudly on a typo.
func (p *Public) Weekday() (time.Weekday, error) {
	if p.WorshipWeekday == "" {
		return time.Saturday, nil
	}
	if d, ok := weekdays[strings.ToLower(p.WorshipWeekday)]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown worship_weekday %q", p.WorshipWeekday)
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
