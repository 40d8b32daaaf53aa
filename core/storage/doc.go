// Package storage publishes merge artifacts to object storage.
//
// It wraps the MinIO Go client, which works against both AWS S3 and
// self-hosted MinIO instances. Only the operations needed for publishing are
// exposed through the Client interface so that tests can use the testify mock
// in core/storage/mocks.
//
// # Layout
//
// A published run is stored as:
//
//	<bucket>/<prefix>/<run id>/combined-create.xml
//	<bucket>/<prefix>/<run id>/diff.sql
//	<bucket>/<prefix>/<run id>/report.yaml
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	pub := storage.NewPublisher(client, cfg.Storage, log)
//	keys, err := pub.Publish(ctx, runID, artifacts)
package storage
