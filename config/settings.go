package config

import (
	"time"

	"veridian-datagen/models"
)

// Sink names accepted in OutputConfig.Sinks.
const (
	SinkJSON      = "json"
	SinkCSV       = "csv"
	SinkSQL       = "sql"
	SinkShapefile = "shapefile"
	SinkS3        = "s3"
	SinkDynamoDB  = "dynamodb"
	SinkAMQP      = "amqp"
)

// SQL drivers accepted in SQLConfig.Driver. They are the database/sql driver
// names the sql sink opens.
const (
	DriverPostgres = "postgres"
	DriverOracle   = "oracle"
)

// GenerationConfig controls the size and shape of one batch.
type GenerationConfig struct {
	// Number of records N
	Total int
	// Number of injected trap records T, 0 <= T <= N
	Traps int
	// Seed for the random source; 0 means derive one from the clock
	Seed int64
	// Fraction of N per category, summing to 1
	Distribution models.Distribution
}

// OutputConfig selects the sinks and their local file paths.
type OutputConfig struct {
	// Sinks run in this order after generation
	Sinks         []string
	JSONPath      string
	CSVPath       string
	ShapefilePath string
	// Print the summary with ANSI colour when stdout is a terminal
	Color bool
}

// SQLConfig controls the relational sink.
type SQLConfig struct {
	// "postgres" or "oracle"
	Driver string
	DSN    string
	Table  string
}

// AWSConfig controls the S3 and DynamoDB sinks.
type AWSConfig struct {
	Region   string
	S3Bucket string
	// Key prefix; objects land under <prefix>/<run id>/
	S3Prefix      string
	DynamoDBTable string
}

// RabbitMQConfig controls the AMQP sink.
type RabbitMQConfig struct {
	URL        string
	Exchange   string
	RoutingKey string
	// Max messages published per second (0 = unlimited)
	MaxPublishesPerSecond float64
}

// RetryConfig controls retry behavior for the network sinks.
type RetryConfig struct {
	// Max number of retry attempts for failed operations
	MaxRetries int
	// Initial backoff duration before first retry
	InitialBackoff time.Duration
	// Max backoff duration (caps exponential growth)
	MaxBackoff time.Duration
}

// Config is the root configuration passed into the generator app.
type Config struct {
	Generation GenerationConfig
	Output     OutputConfig
	SQL        SQLConfig
	AWS        AWSConfig
	RabbitMQ   RabbitMQConfig
	Retry      RetryConfig
}

// Default returns the configuration that reproduces the demo dataset:
// 1000 records, 50 traps, written to the JSON file the front end reads.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			Total:        1000,
			Traps:        50,
			Seed:         0,
			Distribution: DefaultDistribution(),
		},
		Output: OutputConfig{
			Sinks:         []string{SinkJSON},
			JSONPath:      "api/data/pune_properties.json",
			CSVPath:       "api/data/pune_properties.csv",
			ShapefilePath: "api/data/pune_properties.shp",
			Color:         true,
		},
		SQL: SQLConfig{
			Driver: DriverPostgres,
			Table:  "properties",
		},
		AWS: AWSConfig{
			Region:   "us-east-1",
			S3Prefix: "datasets",
		},
		RabbitMQ: RabbitMQConfig{
			Exchange:              "properties",
			RoutingKey:            "property.generated",
			MaxPublishesPerSecond: 0,
		},
		Retry: RetryConfig{
			MaxRetries:     3,
			InitialBackoff: 2 * time.Second,
			MaxBackoff:     10 * time.Second,
		},
	}
}

// Dev returns a smaller, reproducible config suited for local development and testing.
func Dev() *Config {
	cfg := Default()
	cfg.Generation.Total = 100
	cfg.Generation.Traps = 5
	cfg.Generation.Seed = 42
	cfg.Output.Sinks = []string{SinkJSON, SinkCSV}
	cfg.Output.JSONPath = "tmp/pune_properties.json"
	cfg.Output.CSVPath = "tmp/pune_properties.csv"
	cfg.Output.ShapefilePath = "tmp/pune_properties.shp"
	cfg.Retry.MaxRetries = 1
	cfg.Retry.InitialBackoff = 200 * time.Millisecond
	cfg.Retry.MaxBackoff = time.Second
	return cfg
}
