// Package storage provides the object storage client used by the s3 snapshot
// backend.
//
// It wraps the Minio SDK behind a small Client interface so the snapshot
// store can be tested against a mock (see the mocks subpackage) without a
// running object store.
package storage
