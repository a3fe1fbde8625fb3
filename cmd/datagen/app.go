package application

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"veridian-datagen/config"
	"veridian-datagen/internal/domain"
	"veridian-datagen/internal/generator"
	"veridian-datagen/service"
)

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg, out: os.Stdout}
}

type App struct {
	cfg *config.Config
	out io.Writer
}

func (a *App) Run(ctx context.Context) error {
	gen := a.cfg.Generation
	log.Printf("datagen config: total=%d, traps=%d, sinks=%v, max_retries=%d, initial_backoff=%v, max_backoff=%v",
		gen.Total, gen.Traps, a.cfg.Output.Sinks,
		a.cfg.Retry.MaxRetries, a.cfg.Retry.InitialBackoff, a.cfg.Retry.MaxBackoff)

	seed := gen.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// logged so any run can be reproduced with DATAGEN_SEED
	log.Printf("seed: %d", seed)

	registry, err := generator.NewRegistry(config.DefaultLocalities())
	if err != nil {
		return fmt.Errorf("locality table: %w", err)
	}
	synth, err := generator.NewSynthesizer(registry, config.DefaultCatalog(), generator.WithSeed(seed))
	if err != nil {
		return fmt.Errorf("synthesizer: %w", err)
	}

	repos, closers, err := a.buildRepositories(ctx)
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cerr := closers[i](); cerr != nil {
				log.Printf("close: %v", cerr)
			}
		}
	}()
	if err != nil {
		return err
	}

	datasetService := service.NewDatasetService(generator.NewAssembler(synth), repos, a.cfg)
	dataset, err := datasetService.Run(ctx)
	if len(dataset.Records) > 0 {
		color := a.cfg.Output.Color && a.out == os.Stdout && service.ColorEnabled(os.Stdout)
		service.PrintSummary(a.out, service.Summarize(dataset), color)
	}
	if err != nil {
		return fmt.Errorf("generation run failed: %w", err)
	}

	fmt.Fprintf(a.out, "\n✓ Generation completed successfully: %d properties saved to %d sink(s)\n",
		len(dataset.Records), len(repos))
	return nil
}

// buildRepositories creates one sink per configured name, in order. The
// returned closers release connections and must run even on error.
func (a *App) buildRepositories(ctx context.Context) ([]domain.PropertyRepository, []func() error, error) {
	var (
		repos   []domain.PropertyRepository
		closers []func() error
		s3c     *s3.Client
		dynamo  *dynamodb.Client
	)

	awsClients := func() error {
		if s3c != nil {
			return nil
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(a.cfg.AWS.Region))
		if err != nil {
			return fmt.Errorf("failed to load AWS config: %w", err)
		}
		s3c = s3.NewFromConfig(awsCfg)
		dynamo = dynamodb.NewFromConfig(awsCfg)
		return nil
	}

	for _, name := range a.cfg.Output.Sinks {
		switch name {
		case config.SinkJSON:
			repos = append(repos, domain.NewJSONRepository(a.cfg.Output.JSONPath))
		case config.SinkCSV:
			repos = append(repos, domain.NewCSVRepository(a.cfg.Output.CSVPath))
		case config.SinkShapefile:
			repos = append(repos, domain.NewShapefileRepository(a.cfg.Output.ShapefilePath))
		case config.SinkSQL:
			db, err := domain.OpenSQL(ctx, a.cfg.SQL.Driver, a.cfg.SQL.DSN)
			if err != nil {
				return repos, closers, err
			}
			closers = append(closers, db.Close)
			repos = append(repos, domain.NewSQLRepository(db, a.cfg.SQL.Driver, a.cfg.SQL.Table))
		case config.SinkS3:
			if err := awsClients(); err != nil {
				return repos, closers, err
			}
			repos = append(repos, domain.NewS3Repository(s3c, a.cfg.AWS.S3Bucket, a.cfg.AWS.S3Prefix))
		case config.SinkDynamoDB:
			if err := awsClients(); err != nil {
				return repos, closers, err
			}
			repos = append(repos, domain.NewDynamoDBRepository(dynamo, a.cfg.AWS.DynamoDBTable))
		case config.SinkAMQP:
			mq := a.cfg.RabbitMQ
			conn, ch, err := domain.DialAMQP(mq.URL, mq.Exchange)
			if err != nil {
				return repos, closers, err
			}
			closers = append(closers, conn.Close, ch.Close)
			repos = append(repos, domain.NewAMQPRepository(ch, mq.Exchange, mq.RoutingKey, mq.MaxPublishesPerSecond))
		default:
			return repos, closers, fmt.Errorf("unknown sink %q", name)
		}
	}
	return repos, closers, nil
}
