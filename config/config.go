package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "32MB"
	defaultMaxPhotoSize       = "5MB"
	defaultCountryCode        = "91"
	defaultMetricsPath        = "/metrics"
	defaultAccessTokenTTL     = 15 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access    string        `json:"access" yaml:"access"`
		AccessTTL time.Duration `json:"accessTtl" yaml:"accessTtl"`
	} `json:"secretKey" yaml:"secretKey"`

	// Storage configuration for complaint, resolution and bill photos
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Messaging configuration for assignment and status notifications
	Messaging MessagingConfig `json:"messaging" yaml:"messaging"`

	// Stores adds or overrides store name to code entries, e.g. "baner: BNR"
	Stores map[string]string `json:"stores" yaml:"stores"`

	// AutoAssign configuration for routing unattended complaints
	AutoAssign AutoAssignConfig `json:"autoAssign" yaml:"autoAssign"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for complaint job-card labels
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Metrics configuration for the Prometheus endpoint
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines schema management options
type DatabaseConfig struct {
	// Create or update tables on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Statements slower than this are logged as warnings; 0 keeps the default
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// StorageConfig defines where uploaded photos are kept
type StorageConfig struct {
	// Bucket URL understood by gocloud.dev/blob, e.g. "s3://bucket?region=ap-south-1", "gs://bucket", "file:///var/lib/servicedesk/photos" or "mem://"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Base URL prepended to storage keys to build public photo URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// Maximum size of a single photo, e.g. "5MB"
	MaxPhotoSize string `json:"maxPhotoSize" yaml:"maxPhotoSize"`
}

// MessagingConfig defines the outbound notification channel
type MessagingConfig struct {
	// Provider type: "sns" for AWS SNS SMS, "firebase" for FCM topic push, "log" for development
	Provider string `json:"provider" yaml:"provider"`

	// Country calling code prepended to normalized local numbers
	CountryCode string `json:"countryCode" yaml:"countryCode"`

	SNS      SNSConfig      `json:"sns" yaml:"sns"`
	Firebase FirebaseConfig `json:"firebase" yaml:"firebase"`
	Breaker  BreakerConfig  `json:"breaker" yaml:"breaker"`
}

// SNSConfig defines AWS SNS SMS settings
type SNSConfig struct {
	Region          string `json:"region" yaml:"region"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
	SenderID        string `json:"senderId" yaml:"senderId"`
	SMSType         string `json:"smsType" yaml:"smsType"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Topic prefix; recipients subscribe to "<prefix><10-digit number>"
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
}

// BreakerConfig defines the circuit breaker around the messaging channel
type BreakerConfig struct {
	// Consecutive failures before the breaker opens; 0 disables the breaker
	MaxFailures uint32 `json:"maxFailures" yaml:"maxFailures"`

	// Time the breaker stays open before probing again
	OpenTimeout time.Duration `json:"openTimeout" yaml:"openTimeout"`
}

// AutoAssignConfig defines the default technician routing policy
type AutoAssignConfig struct {
	// Contact number of the technician who receives unattended complaints
	DefaultTechnicianPhone string `json:"defaultTechnicianPhone" yaml:"defaultTechnicianPhone"`

	// Also run the policy for complaints raised by clients
	ApplyToClientComplaints bool `json:"applyToClientComplaints" yaml:"applyToClientComplaints"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv reads <currEnv>.yaml from the working directory or one of
// configPath, then overlays environment variables. POSTGRES_SSLMODE
// lands on postgres.sslMode because segments are matched against the
// keys the YAML already has.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	configFile, err := findConfigFile(currEnv+".yaml", configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	yamlKeys := k.Raw()
	overlay := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, yamlKeys), value
		},
	})
	if err := k.Load(overlay, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(name string, configPath []string) (string, error) {
	dirs := []string{defaultPath}
	if len(configPath) > 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range configPath {
			dirs = append(dirs, filepath.Join(pwd, dir))
		}
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", name)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	setDefault(&cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	setDefault(&cfg.Storage.MaxPhotoSize, defaultMaxPhotoSize)
	setDefault(&cfg.Messaging.CountryCode, defaultCountryCode)
	setDefault(&cfg.Metrics.Path, defaultMetricsPath)
	if cfg.SecretKey.AccessTTL <= 0 {
		cfg.SecretKey.AccessTTL = defaultAccessTokenTTL
	}
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

// validate rejects settings that would only fail later, mid-request.
func (c *Config) validate() error {
	if c.SecretKey.Access == "" {
		return errors.New("secretKey.access is required to verify bearer tokens")
	}
	if c.Storage.BucketURL == "" {
		return errors.New("storage.bucketUrl is required to keep complaint photos")
	}
	for _, r := range c.Messaging.CountryCode {
		if !unicode.IsDigit(r) {
			return errors.Errorf("messaging.countryCode %q must contain digits only", c.Messaging.CountryCode)
		}
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.Errorf("metrics.path %q must start with /", c.Metrics.Path)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	var path []string
	level := existing

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

// matchKey returns the YAML key at this level that equals segment once
// case and punctuation are ignored, or segment itself when none does.
func matchKey(level map[string]any, segment string) (string, map[string]any) {
	needle := normalizeToken(segment)
	for key, value := range level {
		if normalizeToken(key) == needle {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... until a host or port is missing.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"
		host, port := getenv(prefix+"HOST"), getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: getenv(prefix + "USERNAME"),
			Password: getenv(prefix + "PASSWORD"),
		})
	}
}
