package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Lumora-KR/rps-server/internal/config"
)

// S3Storage implements Storage by putting uploads into an S3 bucket. Used
// when AWS_S3_BUCKET is configured; the /uploads URL space then points at the
// bucket's public base URL.
type S3Storage struct {
	cfg      *config.Config
	s3Client *s3.Client
}

// NewS3Storage creates a new S3 storage backend.
func NewS3Storage(cfg *config.Config) (*S3Storage, error) {
	awsCfg, err := aws_config.LoadDefaultConfig(context.TODO(),
		aws_config.WithRegion(cfg.AwsRegion),
		aws_config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AwsAccessKeyID,
			cfg.AwsSecretAccessKey,
			"", // session token
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Storage{
		cfg:      cfg,
		s3Client: s3.NewFromConfig(awsCfg),
	}, nil
}

// Save uploads the file and returns its public URL.
func (s *S3Storage) Save(ctx context.Context, category, filename string, data []byte, contentType string) (string, error) {
	objectKey := fmt.Sprintf("uploads/%s/%s", category, filename)

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.AwsS3Bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", objectKey, err)
	}

	base := strings.TrimSuffix(s.cfg.ImageBaseS3URL, "/")
	return fmt.Sprintf("%s/%s", base, objectKey), nil
}
