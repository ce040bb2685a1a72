package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/alexanderramin/punchclock/internal/aggregator"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/spf13/viper"
)

const (
	appName   = "punchclock"
	envPrefix = "PUNCHCLOCK"
)

// Config holds everything the CLI needs to open the store and build
// reports. Bucket and policy fields stay as raw strings until
// BoundaryRule or Policy converts them.
type Config struct {
	DBPath        string
	Subject       string
	DayResetHour  int
	WeekStart     string
	Timezone      string
	DanglingStart string
	OpenTail      string
	LogUseCases   bool

	// ConfigFile is the file that was read, empty when none existed.
	ConfigFile string
}

// Load resolves configuration from defaults, an optional YAML file and
// PUNCHCLOCK_* environment variables, in increasing precedence. An empty
// path looks in the user config directory; a missing file there is fine.
// An explicit path that does not exist is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(appName)
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	return Config{
		DBPath:        v.GetString("db"),
		Subject:       v.GetString("subject"),
		DayResetHour:  v.GetInt("day_reset_hour"),
		WeekStart:     v.GetString("week_start"),
		Timezone:      v.GetString("timezone"),
		DanglingStart: v.GetString("dangling_start"),
		OpenTail:      v.GetString("open_tail"),
		LogUseCases:   v.GetBool("log_use_cases"),
		ConfigFile:    v.ConfigFileUsed(),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db", defaultDBPath())
	v.SetDefault("subject", defaultSubject())
	v.SetDefault("day_reset_hour", 5)
	v.SetDefault("week_start", "monday")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("dangling_start", string(aggregator.LastStartWins))
	v.SetDefault("open_tail", string(aggregator.StatusAuthoritative))
	v.SetDefault("log_use_cases", false)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("."+appName, appName+".db")
	}
	return filepath.Join(home, "."+appName, appName+".db")
}

func defaultSubject() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "default"
}

// configDir mirrors XDG_CONFIG_HOME with the usual per-OS fallbacks.
func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(home, "AppData", "Roaming"), nil
	}
	return filepath.Join(home, ".config"), nil
}

// BoundaryRule converts the bucket settings, validating each one.
func (c Config) BoundaryRule() (domain.BoundaryRule, error) {
	weekday, err := parseWeekday(c.WeekStart)
	if err != nil {
		return domain.BoundaryRule{}, err
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return domain.BoundaryRule{}, fmt.Errorf("%w: timezone %q", domain.ErrInvalidBoundaryRule, c.Timezone)
	}
	rule := domain.BoundaryRule{
		DayResetHour: c.DayResetHour,
		WeekStartDay: weekday,
		Location:     loc,
	}
	if err := rule.Validate(); err != nil {
		return domain.BoundaryRule{}, err
	}
	return rule, nil
}

// Policy converts the recovery settings.
func (c Config) Policy() (aggregator.Policy, error) {
	dangling, err := aggregator.ParseDanglingStartPolicy(c.DanglingStart)
	if err != nil {
		return aggregator.Policy{}, err
	}
	tail, err := aggregator.ParseOpenTailPolicy(c.OpenTail)
	if err != nil {
		return aggregator.Policy{}, err
	}
	return aggregator.Policy{DanglingStart: dangling, OpenTail: tail}, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: week start %q", domain.ErrInvalidBoundaryRule, s)
}
