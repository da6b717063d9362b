package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"bellavista/internal/config"
	"bellavista/internal/contact"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// R2Client archives contact submissions as JSON objects in an
// S3-compatible bucket.
type R2Client struct {
	client objectPutter
	bucket string
}

func NewR2Client(ctx context.Context, cfg config.R2Config) (*R2Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load r2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &R2Client{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// PutJSON writes v under key with a JSON content type.
func (r *R2Client) PutJSON(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (r *R2Client) ArchiveSubmission(ctx context.Context, sub *contact.Submission) error {
	return r.PutJSON(ctx, SubmissionKey(sub), sub)
}

// SubmissionKey files submissions by creation month: contact/2026/10/<id>.json
func SubmissionKey(sub *contact.Submission) string {
	created := sub.CreatedAt.UTC()
	return fmt.Sprintf("contact/%04d/%02d/%s.json", created.Year(), int(created.Month()), sub.ID)
}
