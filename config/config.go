package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"intake"`
		Timezone string `envconfig:"TIMEZONE" default:"Asia/Tokyo"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		// StartPath is where visitors without an active session are sent.
		StartPath string `envconfig:"START_PATH" default:"/start"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"3600"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret    string `envconfig:"ACCESS_SECRET"`
		AccessExpireMin int    `envconfig:"ACCESS_EXPIRE_MIN" default:"60"`
	} `envconfig:"JWT"`

	CRM struct {
		BaseURL        string `envconfig:"BASE_URL" default:"https://api.hubapi.com"`
		AccessToken    string `envconfig:"ACCESS_TOKEN"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`

		Ticket struct {
			PipelineID          string `envconfig:"PIPELINE_ID" default:"0"`
			PendingStageID      string `envconfig:"STAGE_PENDING" default:"1"`
			Subject             string `envconfig:"SUBJECT" default:"仮予約 - オンライン相談"`
			AssociationCategory string `envconfig:"ASSOCIATION_CATEGORY" default:"HUBSPOT_DEFINED"`
			AssociationTypeID   int    `envconfig:"ASSOCIATION_TYPE_ID" default:"16"`
			TargetTypeProperty  string `envconfig:"TARGET_TYPE_PROP" default:"subject_target_type"`
			AgeBandProperty     string `envconfig:"AGE_BAND_PROP" default:"subject_age_band"`
		} `envconfig:"TICKET"`

		Contact struct {
			LastNameKanaProperty   string `envconfig:"LASTNAME_KANA_PROP" default:"lastname_kana"`
			FirstNameKanaProperty  string `envconfig:"FIRSTNAME_KANA_PROP" default:"firstname_kana"`
			AgeBandProperty        string `envconfig:"AGE_BAND_PROP" default:"age_band"`
			TargetTypeProperty     string `envconfig:"TARGET_TYPE_PROP" default:"consult_target_type"`
			RelationOtherProperty  string `envconfig:"RELATION_OTHER_PROP" default:"consult_target_relation_other"`
			SubjectAgeBandProperty string `envconfig:"SUBJECT_AGE_BAND_PROP" default:"subject_age_band_temp"`
		} `envconfig:"CONTACT"`
	} `envconfig:"CRM"`

	Passcode struct {
		Length           int      `envconfig:"LENGTH" default:"6"`
		TTLSeconds       int      `envconfig:"TTL_SECONDS" default:"600"`
		MaxAttempts      int      `envconfig:"MAX_ATTEMPTS" default:"5"`
		AllowedRedirects []string `envconfig:"ALLOWED_REDIRECTS"`
	} `envconfig:"PASSCODE"`

	Intake struct {
		LockSeconds        int `envconfig:"LOCK_SECONDS" default:"30"`
		TicketCacheSeconds int `envconfig:"TICKET_CACHE_SECONDS" default:"86400"`
	} `envconfig:"INTAKE"`

	Mail struct {
		SMTP struct {
			Host           string `envconfig:"HOST"`
			Port           int    `envconfig:"PORT" default:"587"`
			Username       string `envconfig:"USERNAME"`
			Password       string `envconfig:"PASSWORD"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"15"`
		} `envconfig:"SMTP"`
		FromEmail string `envconfig:"FROM_EMAIL"`
		FromName  string `envconfig:"FROM_NAME"`
	} `envconfig:"MAIL"`

	Kafka struct {
		Enable  bool     `envconfig:"ENABLE"`
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			Intake string `envconfig:"INTAKE" default:"intake.events"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	BookingWidget struct {
		ScriptURL   string `envconfig:"SCRIPT_URL" default:"//widget.simplybook.asia/v2/widget/widget.js"`
		URL         string `envconfig:"URL"`
		Theme       string `envconfig:"THEME" default:"adacompliant"`
		Timeline    string `envconfig:"TIMELINE" default:"modern_week"`
		// TicketField is the widget's additional field that receives the ticket number.
		TicketField string `envconfig:"TICKET_FIELD" default:"ticket_id"`
	} `envconfig:"BOOKING_WIDGET"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

// Get returns the process-wide configuration. It is built once and must be
// treated as read-only by callers.
func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
