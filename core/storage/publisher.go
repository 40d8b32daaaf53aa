package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Artifact is one file produced by a merge run.
type Artifact struct {
	// Name is the object name below the run folder (e.g. diff.sql).
	Name string
	// ContentType is sent with the upload.
	ContentType string
	// Data is the file content.
	Data []byte
}

// Publisher uploads the artifacts of a run into <bucket>/<prefix>/<run id>/.
type Publisher struct {
	client Client
	bucket string
	prefix string
	region string
	logger *zap.Logger
}

// NewPublisher creates a publisher writing into the configured bucket.
func NewPublisher(client Client, cfg Config, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		region: cfg.Region,
		logger: logger,
	}
}

// ObjectName returns the key an artifact of the given run is stored under.
func (p *Publisher) ObjectName(runID, name string) string {
	return path.Join(p.prefix, runID, name)
}

// Publish creates the bucket when missing and uploads every artifact in
// order. It returns the object names written so far, also on failure.
func (p *Publisher) Publish(ctx context.Context, runID string, artifacts []Artifact) ([]string, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", p.bucket, err)
	}
	if !exists {
		p.logger.Info("Creating bucket", zap.String("bucket", p.bucket))
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{Region: p.region}); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", p.bucket, err)
		}
	}

	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		key := p.ObjectName(runID, a.Name)
		_, err := p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(a.Data), int64(len(a.Data)),
			minio.PutObjectOptions{ContentType: a.ContentType})
		if err != nil {
			return written, fmt.Errorf("uploading %s: %w", key, err)
		}
		p.logger.Debug("Artifact uploaded", zap.String("bucket", p.bucket), zap.String("key", key))
		written = append(written, key)
	}
	return written, nil
}
