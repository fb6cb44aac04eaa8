package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader wraps an S3 bucket used for avatars and resumes. Objects are
// world-readable; PublicURL derives the stable URL for a stored path.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewUploader builds an Uploader for bucket using the default AWS credential
// chain. baseURL overrides the public URL prefix (e.g. a CDN domain); when
// empty the standard virtual-hosted S3 URL is used.
func NewUploader(ctx context.Context, bucket, region, baseURL string) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &Uploader{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload stores body at path and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, path string, body io.Reader, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(path),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", path, err)
	}
	return u.PublicURL(path), nil
}

// PublicURL returns the public URL for a stored object path.
func (u *Uploader) PublicURL(path string) string {
	return u.baseURL + "/" + strings.TrimLeft(path, "/")
}
