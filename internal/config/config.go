package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	// FailurePolicyPartial keeps appraising when a metric fetch fails and scores it as 0.
	FailurePolicyPartial = "partial"
	// FailurePolicyStrict aborts the appraisal on the first failed metric fetch.
	FailurePolicyStrict = "strict"

	// AgeSourceWhois reads the creation date from the whois.com registrar page.
	AgeSourceWhois = "whois"
	// AgeSourceRDAP reads the registration event from RDAP.
	AgeSourceRDAP = "rdap"
)

// Sub-score names accepted by the appraiser's disabledScores list.
const (
	ScoreTrend           = "trend"
	ScoreDomainAge       = "domainAge"
	ScoreBacklinks       = "backlinks"
	ScoreFollowedLinks   = "followedLinks"
	ScoreDomainAuthority = "domainAuthority"
	ScoreLinkingDomains  = "linkingDomains"
	ScoreMobileFriendly  = "mobileFriendly"
	ScoreContent         = "content"
	ScoreSocialMentions  = "socialMentions"
	ScoreTraffic         = "traffic"
)

var disableableScores = map[string]struct{}{
	ScoreTrend:           {},
	ScoreDomainAge:       {},
	ScoreBacklinks:       {},
	ScoreFollowedLinks:   {},
	ScoreDomainAuthority: {},
	ScoreLinkingDomains:  {},
	ScoreMobileFriendly:  {},
	ScoreContent:         {},
	ScoreSocialMentions:  {},
	ScoreTraffic:         {},
}

// MaxValues are the reference maxima each raw metric is normalized against.
// A zero or missing value falls back to the default; use the appraiser's
// DisabledScores list to turn a sub-score off.
type MaxValues struct {
	Trend               float64 `env:"SCORING_MAX_TREND" env-default:"100" yaml:"trend"`
	DomainAgeYears      float64 `env:"SCORING_MAX_DOMAIN_AGE" env-default:"20" yaml:"domainAgeYears"`
	TotalExternalLinks  float64 `env:"SCORING_MAX_TOTAL_EXTERNAL_LINKS" env-default:"1000" yaml:"totalExternalLinks"`
	FollowedLinks       float64 `env:"SCORING_MAX_FOLLOWED_LINKS" env-default:"1000" yaml:"followedLinks"`
	DomainAuthority     float64 `env:"SCORING_MAX_DOMAIN_AUTHORITY" env-default:"100" yaml:"domainAuthority"`
	LinkingDomains      float64 `env:"SCORING_MAX_LINKING_DOMAINS" env-default:"100" yaml:"linkingDomains"`
	ContentWordCount    float64 `env:"SCORING_MAX_CONTENT_WORD_COUNT" env-default:"1000" yaml:"contentWordCount"`
	SocialMentions      float64 `env:"SCORING_MAX_SOCIAL_MENTIONS" env-default:"1000" yaml:"socialMentions"`
	Traffic             float64 `env:"SCORING_MAX_TRAFFIC" env-default:"1000" yaml:"traffic"`
	MobileFriendlyBonus float64 `env:"SCORING_MOBILE_FRIENDLY_BONUS" env-default:"10" yaml:"mobileFriendlyBonus"`
}

// Config represents the application configuration. Values are read from a
// YAML file and can be overridden by environment variables; API keys are
// expected to come from the environment (or a .env file) rather than the file.
type Config struct {
	// Environment selects the logger flavour (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP configures the server started by the serve command.
	HTTP struct {
		Addr              string        `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"3m" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds a whole appraisal request; appraisals call
		// every provider one after another so this is generous.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"2m" yaml:"requestTimeout"`
		MaxHeaderBytes int           `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		MetricsPath    string        `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		AllowedOrigin  string        `env:"HTTP_ALLOWED_ORIGIN" env-default:"*" yaml:"allowedOrigin"`
		EnablePprof    bool          `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// Client configures the outbound HTTP client shared by all providers.
	Client struct {
		Timeout   time.Duration `env:"CLIENT_TIMEOUT" env-default:"20s" yaml:"timeout"`
		UserAgent string        `env:"CLIENT_USER_AGENT" env-default:"appraiser/1.0" yaml:"userAgent"`
	} `yaml:"client"`

	// Appraiser configures how metrics are combined.
	Appraiser struct {
		FailurePolicy string    `env:"APPRAISER_FAILURE_POLICY" env-default:"partial" yaml:"failurePolicy"`
		MaxValues     MaxValues `yaml:"maxValues"`
		// DisabledScores names sub-scores that always score 0.
		DisabledScores []string `env:"APPRAISER_DISABLED_SCORES" env-separator:"," yaml:"disabledScores"`
	} `yaml:"appraiser"`

	// Providers configures every external metric service.
	Providers struct {
		Trends struct {
			BaseURL   string `env:"TRENDS_BASE_URL" env-default:"https://trends.google.com" yaml:"baseURL"`
			Language  string `env:"TRENDS_LANGUAGE" env-default:"en-US" yaml:"language"`
			TZOffset  int    `env:"TRENDS_TZ_OFFSET" env-default:"360" yaml:"tzOffset"`
			Timeframe string `env:"TRENDS_TIMEFRAME" env-default:"today 5-y" yaml:"timeframe"`
			Geo       string `env:"TRENDS_GEO" env-default:"" yaml:"geo"`
		} `yaml:"trends"`
		Age struct {
			Source       string `env:"AGE_SOURCE" env-default:"whois" yaml:"source"`
			WhoisBaseURL string `env:"AGE_WHOIS_BASE_URL" env-default:"https://www.whois.com" yaml:"whoisBaseURL"`
			// RDAPServer pins the RDAP server; empty uses IANA bootstrap.
			RDAPServer string `env:"AGE_RDAP_SERVER" env-default:"" yaml:"rdapServer"`
		} `yaml:"age"`
		Backlinks struct {
			BaseURL string `env:"BACKLINKS_BASE_URL" env-default:"https://moz.com" yaml:"baseURL"`
			APIKey  string `env:"BACKLINKS_API_KEY" yaml:"-"`
		} `yaml:"backlinks"`
		PageSpeed struct {
			BaseURL string `env:"PAGESPEED_BASE_URL" env-default:"https://pagespeedonline.googleapis.com/" yaml:"baseURL"`
			APIKey  string `env:"GOOGLE_API_KEY" yaml:"-"`
		} `yaml:"pageSpeed"`
		Mobile struct {
			BaseURL string `env:"MOBILE_BASE_URL" env-default:"https://searchconsole.googleapis.com" yaml:"baseURL"`
			APIKey  string `env:"GOOGLE_API_KEY" yaml:"-"`
		} `yaml:"mobile"`
		Social struct {
			BaseURL string `env:"SOCIAL_BASE_URL" env-default:"https://socialmediaapi.com" yaml:"baseURL"`
			APIKey  string `env:"SOCIAL_API_KEY" yaml:"-"`
		} `yaml:"social"`
		Traffic struct {
			BaseURL string `env:"TRAFFIC_BASE_URL" env-default:"https://trafficapi.com" yaml:"baseURL"`
			APIKey  string `env:"TRAFFIC_API_KEY" yaml:"-"`
		} `yaml:"traffic"`
		Marketplace struct {
			BaseURL string `env:"MARKETPLACE_BASE_URL" env-default:"https://api.godaddy.com" yaml:"baseURL"`
			APIKey  string `env:"MARKETPLACE_API_KEY" yaml:"-"`
		} `yaml:"marketplace"`
	} `yaml:"providers"`

	// GracefulShutdownTimeout bounds how long serve waits for in-flight requests.
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Validate checks values that cleanenv cannot express with tags.
func (c *Config) Validate() error {
	switch c.Appraiser.FailurePolicy {
	case FailurePolicyPartial, FailurePolicyStrict:
	default:
		return fmt.Errorf("unknown failure policy %q", c.Appraiser.FailurePolicy)
	}
	switch c.Providers.Age.Source {
	case AgeSourceWhois, AgeSourceRDAP:
	default:
		return fmt.Errorf("unknown age source %q", c.Providers.Age.Source)
	}
	for _, name := range c.Appraiser.DisabledScores {
		if _, ok := disableableScores[name]; !ok {
			return fmt.Errorf("unknown disabled score %q", name)
		}
	}
	if c.Client.Timeout <= 0 {
		return errors.New("client timeout must be positive")
	}

	return nil
}

// Load reads the optional .env file at envPath into the process environment,
// then the YAML config at configPath. A missing config file is not an error:
// defaults and environment variables are used instead.
func Load(configPath, envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load env file: %w", err)
		}
	}

	var cfg Config
	var err error
	if _, statErr := os.Stat(configPath); statErr == nil {
		err = cleanenv.ReadConfig(configPath, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
