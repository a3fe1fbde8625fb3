package domain

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"veridian-datagen/models"
)

// BatchWriteItem accepts at most 25 requests per call.
const dynamoBatchSize = 25

const maxUnprocessedRounds = 5

// BatchWriter is the part of *dynamodb.Client the DynamoDB sink uses.
type BatchWriter interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// DynamoDBRepository puts one item per record, keyed by id and tagged with
// run_id and generated_at.
type DynamoDBRepository struct {
	client    BatchWriter
	tableName string
	// wait before resending unprocessed items, doubled each round
	unprocessedDelay time.Duration
}

func NewDynamoDBRepository(client BatchWriter, tableName string) *DynamoDBRepository {
	return &DynamoDBRepository{
		client:           client,
		tableName:        tableName,
		unprocessedDelay: 100 * time.Millisecond,
	}
}

func (r *DynamoDBRepository) Name() string { return "dynamodb" }

func (r *DynamoDBRepository) Remote() bool { return true }

func (r *DynamoDBRepository) Save(ctx context.Context, dataset models.Dataset) error {
	if r.client == nil {
		return fmt.Errorf("DynamoDB client not initialized")
	}

	requests := make([]dynamodbtypes.WriteRequest, 0, len(dataset.Records))
	generatedAt := dataset.GeneratedAt.UTC().Format(time.RFC3339)
	for _, p := range dataset.Records {
		item, err := attributevalue.MarshalMap(p)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", p.ID, err)
		}
		item["run_id"] = &dynamodbtypes.AttributeValueMemberS{Value: dataset.RunID}
		item["generated_at"] = &dynamodbtypes.AttributeValueMemberS{Value: generatedAt}
		requests = append(requests, dynamodbtypes.WriteRequest{
			PutRequest: &dynamodbtypes.PutRequest{Item: item},
		})
	}

	for start := 0; start < len(requests); start += dynamoBatchSize {
		end := min(start+dynamoBatchSize, len(requests))
		if err := r.writeBatch(ctx, requests[start:end]); err != nil {
			return fmt.Errorf("failed to write items %d-%d to %s: %w", start, end-1, r.tableName, err)
		}
	}

	log.Printf("[sink:dynamodb] put %d items into %s", len(requests), r.tableName)
	return nil
}

// writeBatch sends one chunk and resends whatever DynamoDB reports as
// unprocessed.
func (r *DynamoDBRepository) writeBatch(ctx context.Context, batch []dynamodbtypes.WriteRequest) error {
	pending := batch
	delay := r.unprocessedDelay
	for round := 0; ; round++ {
		out, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]dynamodbtypes.WriteRequest{r.tableName: pending},
		})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems[r.tableName]
		if len(pending) == 0 {
			return nil
		}
		if round+1 >= maxUnprocessedRounds {
			return fmt.Errorf("%d items still unprocessed after %d rounds", len(pending), maxUnprocessedRounds)
		}

		log.Printf("[sink:dynamodb] %d unprocessed items; resending in %v", len(pending), delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}
}
