package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"veridian-datagen/internal/generator"
	"veridian-datagen/models"
)

// ErrInvalidConfig is wrapped by every Validate and ParseDistribution failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Load builds the configuration from the environment. Variables from the .env
// file at envPath (or ./.env) are loaded first without overriding the real
// environment; a missing file is not an error. DATAGEN_PROFILE=dev starts
// from Dev() instead of Default().
func Load(envPath ...string) (*Config, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("[config] no .env file loaded (path: %v): %v", envPath, err)
	}

	cfg := Default()
	if getEnvAsString("DATAGEN_PROFILE", "") == "dev" {
		cfg = Dev()
	}

	g := &cfg.Generation
	g.Total = getEnvAsInt("DATAGEN_TOTAL", g.Total)
	g.Traps = getEnvAsInt("DATAGEN_TRAPS", g.Traps)
	g.Seed = getEnvAsInt64("DATAGEN_SEED", g.Seed)
	if raw, ok := os.LookupEnv("DATAGEN_DISTRIBUTION"); ok {
		d, err := ParseDistribution(raw)
		if err != nil {
			return nil, fmt.Errorf("DATAGEN_DISTRIBUTION: %w", err)
		}
		g.Distribution = d
	}

	o := &cfg.Output
	if raw, ok := os.LookupEnv("DATAGEN_SINKS"); ok {
		o.Sinks = splitList(raw)
	}
	o.JSONPath = getEnvAsString("DATAGEN_JSON_PATH", o.JSONPath)
	o.CSVPath = getEnvAsString("DATAGEN_CSV_PATH", o.CSVPath)
	o.ShapefilePath = getEnvAsString("DATAGEN_SHP_PATH", o.ShapefilePath)
	o.Color = getEnvAsBool("DATAGEN_COLOR", o.Color)

	cfg.SQL.Driver = getEnvAsString("DATAGEN_SQL_DRIVER", cfg.SQL.Driver)
	cfg.SQL.DSN = getEnvAsString("DATAGEN_SQL_DSN", getEnvAsString("PG_DSN", cfg.SQL.DSN))
	cfg.SQL.Table = getEnvAsString("DATAGEN_SQL_TABLE", cfg.SQL.Table)

	cfg.AWS.Region = getEnvAsString("AWS_REGION", cfg.AWS.Region)
	cfg.AWS.S3Bucket = getEnvAsString("S3_BUCKET", cfg.AWS.S3Bucket)
	cfg.AWS.S3Prefix = getEnvAsString("S3_PREFIX", cfg.AWS.S3Prefix)
	cfg.AWS.DynamoDBTable = getEnvAsString("DYNAMODB_TABLE", cfg.AWS.DynamoDBTable)

	cfg.RabbitMQ.URL = getEnvAsString("RABBITMQ_URL", cfg.RabbitMQ.URL)
	cfg.RabbitMQ.Exchange = getEnvAsString("RABBITMQ_EXCHANGE", cfg.RabbitMQ.Exchange)
	cfg.RabbitMQ.RoutingKey = getEnvAsString("RABBITMQ_ROUTING_KEY", cfg.RabbitMQ.RoutingKey)
	cfg.RabbitMQ.MaxPublishesPerSecond = getEnvAsFloat("RABBITMQ_MAX_PUBLISH_RATE", cfg.RabbitMQ.MaxPublishesPerSecond)

	cfg.Retry.MaxRetries = getEnvAsInt("DATAGEN_MAX_RETRIES", cfg.Retry.MaxRetries)
	cfg.Retry.InitialBackoff = getEnvAsDuration("DATAGEN_INITIAL_BACKOFF", cfg.Retry.InitialBackoff)
	cfg.Retry.MaxBackoff = getEnvAsDuration("DATAGEN_MAX_BACKOFF", cfg.Retry.MaxBackoff)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the batch parameters and the settings each selected sink needs.
func (c *Config) Validate() error {
	g := c.Generation
	if g.Total <= 0 {
		return fmt.Errorf("total must be positive, got %d: %w", g.Total, ErrInvalidConfig)
	}
	if g.Traps < 0 || g.Traps > g.Total {
		return fmt.Errorf("traps must be in [0,%d], got %d: %w", g.Total, g.Traps, ErrInvalidConfig)
	}
	if err := generator.ValidateDistribution(g.Distribution); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if len(c.Output.Sinks) == 0 {
		return fmt.Errorf("no sinks configured: %w", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Output.Sinks))
	for _, name := range c.Output.Sinks {
		if seen[name] {
			return fmt.Errorf("sink %q listed twice: %w", name, ErrInvalidConfig)
		}
		seen[name] = true
		if err := c.validateSink(name); err != nil {
			return err
		}
	}

	r := c.Retry
	if r.MaxRetries < 0 {
		return fmt.Errorf("max retries must not be negative: %w", ErrInvalidConfig)
	}
	if r.InitialBackoff <= 0 || r.MaxBackoff < r.InitialBackoff {
		return fmt.Errorf("backoff must satisfy 0 < initial (%v) <= max (%v): %w",
			r.InitialBackoff, r.MaxBackoff, ErrInvalidConfig)
	}
	return nil
}

func (c *Config) validateSink(name string) error {
	missing := func(setting string) error {
		return fmt.Errorf("sink %q requires %s: %w", name, setting, ErrInvalidConfig)
	}
	switch name {
	case SinkJSON:
		if c.Output.JSONPath == "" {
			return missing("DATAGEN_JSON_PATH")
		}
	case SinkCSV:
		if c.Output.CSVPath == "" {
			return missing("DATAGEN_CSV_PATH")
		}
	case SinkShapefile:
		if c.Output.ShapefilePath == "" {
			return missing("DATAGEN_SHP_PATH")
		}
	case SinkSQL:
		if c.SQL.Driver != DriverPostgres && c.SQL.Driver != DriverOracle {
			return fmt.Errorf("unknown sql driver %q: %w", c.SQL.Driver, ErrInvalidConfig)
		}
		if c.SQL.DSN == "" {
			return missing("DATAGEN_SQL_DSN or PG_DSN")
		}
		if c.SQL.Table == "" {
			return missing("DATAGEN_SQL_TABLE")
		}
	case SinkS3:
		if c.AWS.S3Bucket == "" {
			return missing("S3_BUCKET")
		}
	case SinkDynamoDB:
		if c.AWS.DynamoDBTable == "" {
			return missing("DYNAMODB_TABLE")
		}
	case SinkAMQP:
		if c.RabbitMQ.URL == "" {
			return missing("RABBITMQ_URL")
		}
		if c.RabbitMQ.MaxPublishesPerSecond < 0 {
			return fmt.Errorf("publish rate must not be negative: %w", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("unknown sink %q: %w", name, ErrInvalidConfig)
	}
	return nil
}

// ParseDistribution parses "Apartment:0.5,Villa:0.15,..." into a
// distribution. Categories may be omitted but not repeated; the shares are
// checked by Validate, not here.
func ParseDistribution(raw string) (models.Distribution, error) {
	d := make(models.Distribution)
	for _, part := range splitList(raw) {
		name, share, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("entry %q is not category:share: %w", part, ErrInvalidConfig)
		}
		c := models.Category(strings.TrimSpace(name))
		if !c.IsValid() {
			return nil, fmt.Errorf("unknown category %q: %w", c, ErrInvalidConfig)
		}
		if _, dup := d[c]; dup {
			return nil, fmt.Errorf("category %q listed twice: %w", c, ErrInvalidConfig)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(share), 64)
		if err != nil {
			return nil, fmt.Errorf("share of %s: %w: %w", c, ErrInvalidConfig, err)
		}
		d[c] = f
	}
	if len(d) == 0 {
		return nil, fmt.Errorf("empty distribution: %w", ErrInvalidConfig)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// getEnvAsString reads an env var as string or returns the default.
func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an env var as int, logging and keeping the default when
// the value does not parse.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[config] warning: %s=%q is not an int: %v; using default %d", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("[config] warning: %s=%q is not an int64: %v; using default %d", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("[config] warning: %s=%q is not a float: %v; using default %v", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsBool reads an env var as bool or returns the default.
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("[config] warning: %s=%q is not a bool: %v; using default %t", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("[config] warning: %s=%q is not a duration: %v; using default %v", key, valStr, err, defaultValue)
		return defaultValue
	}
	return d
}
