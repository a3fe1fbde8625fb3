package service

import (
	"context"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veridian-datagen/config"
	"veridian-datagen/internal/domain"
	"veridian-datagen/internal/generator"
	"veridian-datagen/models"
)

var fixedNow = time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)

type fakeRepo struct {
	name   string
	remote bool
	// number of leading Save calls that fail
	failures int
	calls    int
	saved    []models.Dataset
	order    *[]string
}

func (f *fakeRepo) Name() string { return f.name }

func (f *fakeRepo) Remote() bool { return f.remote }

func (f *fakeRepo) Save(_ context.Context, ds models.Dataset) error {
	f.calls++
	if f.order != nil {
		*f.order = append(*f.order, f.name)
	}
	if f.calls <= f.failures {
		return errors.New(f.name + " unavailable")
	}
	f.saved = append(f.saved, ds)
	return nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Generation.Total = 120
	cfg.Generation.Traps = 6
	cfg.Retry = config.RetryConfig{
		MaxRetries:     2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     4 * time.Millisecond,
	}
	return cfg
}

func newTestService(t *testing.T, cfg *config.Config, repos ...domain.PropertyRepository) *DatasetService {
	t.Helper()
	reg, err := generator.NewRegistry(config.DefaultLocalities())
	require.NoError(t, err)
	synth, err := generator.NewSynthesizer(reg, config.DefaultCatalog(),
		generator.WithSeed(99), generator.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return NewDatasetService(generator.NewAssembler(synth), repos, cfg)
}

func TestDatasetService_RunSavesToEverySinkInOrder(t *testing.T) {
	var order []string
	a := &fakeRepo{name: "json", order: &order}
	b := &fakeRepo{name: "s3", remote: true, order: &order}

	ds, err := newTestService(t, testConfig(), a, b).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Records, 120)
	assert.NotEmpty(t, ds.RunID)
	assert.Equal(t, fixedNow, ds.GeneratedAt)
	assert.Equal(t, []string{"json", "s3"}, order)
	require.Len(t, a.saved, 1)
	assert.Equal(t, ds.RunID, a.saved[0].RunID)
	assert.Equal(t, ds.RunID, b.saved[0].RunID)

	traps := 0
	for _, p := range ds.Records {
		if p.Trap {
			traps++
		}
	}
	assert.Equal(t, 6, traps)
}

func TestDatasetService_RetriesRemoteSinks(t *testing.T) {
	remote := &fakeRepo{name: "dynamodb", remote: true, failures: 2}

	_, err := newTestService(t, testConfig(), remote).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, remote.calls)
	assert.Len(t, remote.saved, 1)
}

func TestDatasetService_RemoteSinkExhaustsRetries(t *testing.T) {
	remote := &fakeRepo{name: "amqp", remote: true, failures: 10}
	after := &fakeRepo{name: "csv"}

	ds, err := newTestService(t, testConfig(), remote, after).Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "sink amqp")
	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, 3, remote.calls)
	assert.Zero(t, after.calls)
	assert.Len(t, ds.Records, 120, "dataset is returned with the sink error")
}

func TestDatasetService_LocalSinkNotRetried(t *testing.T) {
	local := &fakeRepo{name: "json", failures: 1}

	_, err := newTestService(t, testConfig(), local).Run(context.Background())
	assert.ErrorContains(t, err, "sink json: json unavailable")
	assert.Equal(t, 1, local.calls)
}

func TestDatasetService_GenerationErrorSkipsSinks(t *testing.T) {
	cfg := testConfig()
	cfg.Generation.Traps = cfg.Generation.Total + 1
	repo := &fakeRepo{name: "json"}

	_, err := newTestService(t, cfg, repo).Run(context.Background())
	assert.True(t, errors.Is(err, generator.ErrInvalidTrapCount), "got %v", err)
	assert.Zero(t, repo.calls)
}

func TestDatasetService_BackoffHonoursContext(t *testing.T) {
	cfg := testConfig()
	cfg.Retry.InitialBackoff = time.Hour
	cfg.Retry.MaxBackoff = time.Hour
	remote := &fakeRepo{name: "s3", remote: true, failures: 10}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestService(t, cfg, remote).Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, remote.calls)
}

// flakyPublisher drops the connection once, on call number failAt.
type flakyPublisher struct {
	calls  int
	failAt int
	ids    []string
}

func (f *flakyPublisher) PublishWithContext(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
	f.calls++
	if f.calls == f.failAt {
		return errors.New("connection reset")
	}
	f.ids = append(f.ids, msg.MessageId)
	return nil
}

func TestDatasetService_RetriedAMQPSinkPublishesEachRecordOnce(t *testing.T) {
	pub := &flakyPublisher{failAt: 50}
	sink := domain.NewAMQPRepository(pub, "properties", "property.generated", 0)

	ds, err := newTestService(t, testConfig(), sink).Run(context.Background())
	require.NoError(t, err)

	// 120 records plus the completion event, which has no message id
	require.Len(t, pub.ids, len(ds.Records)+1)
	seen := make(map[string]bool)
	for _, id := range pub.ids[:len(ds.Records)] {
		assert.False(t, seen[id], "record %s published twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, 120)
}
