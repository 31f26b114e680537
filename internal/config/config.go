package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/example/srsqueue/internal/database"
	"github.com/example/srsqueue/internal/spaced_repetition"
	"github.com/example/srsqueue/pkg/models"
)

type Config struct {
	App      AppConfig                `mapstructure:"app"`
	API      APIConfig                `mapstructure:"api"`
	DB       database.Config          `mapstructure:"db"`
	Study    models.StudySettings     `mapstructure:"study"`
	Policy   spaced_repetition.Policy `mapstructure:"policy"`
	Jobs     JobsConfig               `mapstructure:"jobs"`
	Telegram TelegramConfig           `mapstructure:"telegram"`
	Metrics  MetricsConfig            `mapstructure:"metrics"`
}

type AppConfig struct {
	Env  string `mapstructure:"env" validate:"oneof=development production staging"`
	Seed int64  `mapstructure:"seed"` // Jitter seed; zero seeds from the clock
}

type APIConfig struct {
	BaseURL           string        `mapstructure:"base_url" validate:"required,url"`
	Token             string        `mapstructure:"token" validate:"required"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"min=1"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second" validate:"min=0"`
}

type JobsConfig struct {
	DueCountInterval time.Duration `mapstructure:"due_count_interval" validate:"min=1"`
	FetchInterval    time.Duration `mapstructure:"fetch_interval" validate:"min=1"`
	FlushInterval    time.Duration `mapstructure:"flush_interval" validate:"min=1"`
	ReminderInterval time.Duration `mapstructure:"reminder_interval" validate:"min=1"`
	FlushBatchSize   int           `mapstructure:"flush_batch_size" validate:"min=1"`
	FetchLimit       int           `mapstructure:"fetch_limit" validate:"min=1"`
	// Items are added when fewer than this many are due; zero disables adding
	AddBelowDue int `mapstructure:"add_below_due" validate:"min=0"`
	AddLimit    int `mapstructure:"add_limit" validate:"min=1"`
}

type TelegramConfig struct {
	Token     string `mapstructure:"token"`
	ChatID    int64  `mapstructure:"chat_id" validate:"required_with=Token"`
	StartHour int    `mapstructure:"start_hour" validate:"min=0,max=23"`
	EndHour   int    `mapstructure:"end_hour" validate:"min=0,max=23,gtefield=StartHour"`
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr"` // Empty disables the metrics listener
}

var validate = validator.New()

// Load reads .env, an optional configs/<CONFIG_NAME>.yaml and the environment.
// Environment variables win over the file, the file over defaults.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may already be set
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}
	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	setDefaults(v)

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToListHook,
	))
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct tags across every section
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validation failed: %w", err)
		}
		var errMsgs []string
		for _, e := range verrs {
			errMsgs = append(errMsgs, fmt.Sprintf(
				"Field: %s, Tag: %s, Param: %s", e.Namespace(), e.Tag(), e.Param(),
			))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "production")
	v.SetDefault("app.seed", 0)

	v.SetDefault("api.base_url", "https://legacy.skritter.com/api/v0")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.requests_per_second", 5)

	v.SetDefault("db.type", database.TypeSQLite)
	v.SetDefault("db.path", "data/srsqueue.db")
	v.SetDefault("db.dsn", "")

	v.SetDefault("study.lang", "zh")
	v.SetDefault("study.parts", []string{"defn", "rdng", "rune", "tone"})
	v.SetDefault("study.styles", []string{})
	v.SetDefault("study.lists", []string{})
	v.SetDefault("study.study_kana", false)
	v.SetDefault("study.review_simplified", true)
	v.SetDefault("study.review_traditional", false)

	p := spaced_repetition.DefaultPolicy()
	v.SetDefault("policy.initial_wrong_interval", p.InitialWrongInterval)
	v.SetDefault("policy.initial_right_interval", p.InitialRightInterval)
	v.SetDefault("policy.right_factors", p.RightFactors)
	v.SetDefault("policy.wrong_factors", p.WrongFactors)
	v.SetDefault("policy.hard_factor", p.HardFactor)
	v.SetDefault("policy.easy_factor", p.EasyFactor)
	v.SetDefault("policy.min_interval", p.MinInterval)
	v.SetDefault("policy.min_hard_interval", p.MinHardInterval)
	v.SetDefault("policy.max_wrong_interval", p.MaxWrongInterval)
	v.SetDefault("policy.max_interval", p.MaxInterval)
	v.SetDefault("policy.jitter", p.Jitter)

	v.SetDefault("jobs.due_count_interval", 5*time.Minute)
	v.SetDefault("jobs.fetch_interval", 15*time.Minute)
	v.SetDefault("jobs.flush_interval", time.Minute)
	v.SetDefault("jobs.reminder_interval", time.Hour)
	v.SetDefault("jobs.flush_batch_size", 100)
	v.SetDefault("jobs.fetch_limit", 50)
	v.SetDefault("jobs.add_below_due", 0)
	v.SetDefault("jobs.add_limit", 5)

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.chat_id", 0)
	v.SetDefault("telegram.start_hour", 4)
	v.SetDefault("telegram.end_hour", 18)

	v.SetDefault("metrics.addr", ":9090")
}

func bindEnv(v *viper.Viper) error {
	binds := map[string]string{
		"app.env":             "APP_ENV",
		"api.base_url":        "API_BASE_URL",
		"api.token":           "API_TOKEN",
		"db.type":             "DB_TYPE",
		"db.path":             "DB_PATH",
		"db.dsn":              "DB_DSN",
		"study.user_id":       "USER_ID",
		"study.lang":          "STUDY_LANG",
		"study.parts":         "STUDY_PARTS",
		"study.lists":         "STUDY_LISTS",
		"telegram.token":      "TELEGRAM_BOT_TOKEN",
		"telegram.chat_id":    "TELEGRAM_CHAT_ID",
		"telegram.start_hour": "NOTIFICATION_START_HOUR",
		"telegram.end_hour":   "NOTIFICATION_END_HOUR",
		"metrics.addr":        "METRICS_ADDR",
	}
	for key, env := range binds {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	return nil
}

// stringToListHook splits comma separated env values into any string-kinded
// slice, so STUDY_PARTS=defn,rune decodes into []models.Part.
func stringToListHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice || to.Elem().Kind() != reflect.String {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	if s == "" {
		return []string{}, nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}
