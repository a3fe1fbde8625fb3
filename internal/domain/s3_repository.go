package domain

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"veridian-datagen/models"
)

// ObjectPutter is the part of *s3.Client the S3 sink uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Repository uploads properties.json and localities.json under
// <prefix>/<run id>/.
type S3Repository struct {
	client ObjectPutter
	bucket string
	prefix string
}

func NewS3Repository(client ObjectPutter, bucket, prefix string) *S3Repository {
	return &S3Repository{client: client, bucket: bucket, prefix: prefix}
}

func (r *S3Repository) Name() string { return "s3" }

func (r *S3Repository) Remote() bool { return true }

// Key returns the object key of name for a run.
func (r *S3Repository) Key(runID, name string) string {
	return path.Join(r.prefix, runID, name)
}

func (r *S3Repository) Save(ctx context.Context, dataset models.Dataset) error {
	var records bytes.Buffer
	if err := writeRecordsJSON(&records, dataset.Records); err != nil {
		return fmt.Errorf("s3: encode records: %w", err)
	}
	localities, err := json.Marshal(dataset.Localities, jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("s3: encode localities: %w", err)
	}

	meta := map[string]string{
		"run-id":       dataset.RunID,
		"generated-at": dataset.GeneratedAt.UTC().Format(time.RFC3339),
		"records":      strconv.Itoa(len(dataset.Records)),
	}
	objects := []struct {
		name string
		body []byte
	}{
		{"properties.json", records.Bytes()},
		{"localities.json", localities},
	}
	for _, obj := range objects {
		key := r.Key(dataset.RunID, obj.name)
		_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(r.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(obj.body),
			ContentType: aws.String("application/json"),
			Metadata:    meta,
		})
		if err != nil {
			return fmt.Errorf("failed to upload %s to S3: %w", key, err)
		}
		log.Printf("[sink:s3] uploaded s3://%s/%s (%d bytes)", r.bucket, key, len(obj.body))
	}
	return nil
}
