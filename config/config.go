package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar time tracking specifics
	GoogleCalendar GoogleCalendarConfig
	Tracker        TrackerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// TrackerConfig holds the server-side defaults for the working-hours
// model. Requests may override any individual key; omitted keys fall
// back to these values.
type TrackerConfig struct {
	WorkStartTime        string
	WorkEndTime          string
	LunchDurationMinutes int
	WorkDays             []int // 0=Monday .. 6=Sunday

	DefaultService   string
	OOOService       string
	FocusTimeService string
	UnlabeledService string

	GroupUnlabeled bool
	UseColorTags   bool
	ColorTags      map[string]string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Calendar provider
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Working-hours defaults
	cfg.Tracker.WorkStartTime = viper.GetString("tracker.work_start_time")
	cfg.Tracker.WorkEndTime = viper.GetString("tracker.work_end_time")
	cfg.Tracker.LunchDurationMinutes = viper.GetInt("tracker.lunch_duration_minutes")
	cfg.Tracker.WorkDays = viper.GetIntSlice("tracker.work_days")
	cfg.Tracker.DefaultService = viper.GetString("tracker.default_service")
	cfg.Tracker.OOOService = viper.GetString("tracker.ooo_service")
	cfg.Tracker.FocusTimeService = viper.GetString("tracker.focus_time_service")
	cfg.Tracker.UnlabeledService = viper.GetString("tracker.unlabeled_service")
	cfg.Tracker.GroupUnlabeled = viper.GetBool("tracker.group_unlabeled")
	cfg.Tracker.UseColorTags = viper.GetBool("tracker.use_color_tags")
	cfg.Tracker.ColorTags = viper.GetStringMapString("tracker.color_tags")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google_calendar.credentials_path", "credentials.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("tracker.work_start_time", "09:00")
	viper.SetDefault("tracker.work_end_time", "17:00")
	viper.SetDefault("tracker.lunch_duration_minutes", 60)
	viper.SetDefault("tracker.work_days", []int{0, 1, 2, 3, 4})
	viper.SetDefault("tracker.default_service", "TIEMPO NO ETIQUETADO")
	viper.SetDefault("tracker.ooo_service", "FUERA DE OFICINA")
	viper.SetDefault("tracker.focus_time_service", "TIEMPO DE CONCENTRACIÓN")
	viper.SetDefault("tracker.unlabeled_service", "SIN ETIQUETA")
	viper.SetDefault("tracker.group_unlabeled", false)
	viper.SetDefault("tracker.use_color_tags", false)
}
