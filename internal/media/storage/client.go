// Package storage wraps the S3-compatible client used to back up venue
// pictures.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gig_venues_backend/platform/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client uploads picture backups to a single bucket.
type Client struct {
	mc        *minio.Client
	endpoint  string
	bucket    string
	useSSL    bool
	publicURL string
}

func New(cfg config.ObjectStorageConfig) (*Client, error) {
	mc, err := minio.New(cfg.GetStorageEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetStorageAccessKey(), cfg.GetStorageSecretKey(), ""),
		Secure: cfg.GetStorageUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &Client{
		mc:        mc,
		endpoint:  cfg.GetStorageEndpoint(),
		bucket:    cfg.GetStorageBucket(),
		useSSL:    cfg.GetStorageUseSSL(),
		publicURL: strings.TrimRight(cfg.GetStoragePublicBaseURL(), "/"),
	}, nil
}

// EnsureBucket creates the backup bucket when it does not exist yet.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.mc.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", c.bucket, err)
	}
	if exists {
		return nil
	}
	if err := c.mc.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", c.bucket, err)
	}
	return nil
}

// Upload stores one object under key.
func (c *Client) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := c.mc.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// PublicURL builds the externally reachable URL of an uploaded object.
// A configured public base URL wins over the raw endpoint.
func (c *Client) PublicURL(key string) string {
	if c.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", c.publicURL, c.bucket, key)
	}
	scheme := "http"
	if c.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, c.endpoint, c.bucket, key)
}
