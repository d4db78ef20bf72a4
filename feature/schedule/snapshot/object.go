package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"

	"timetable-sync/core/storage"
	"timetable-sync/feature/schedule/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectStore keeps one JSON object per cache identity in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewObjectStore creates an object-storage-backed snapshot store. The bucket
// is created on first use if it does not exist.
func NewObjectStore(ctx context.Context, client storage.Client, bucket, prefix string, logger *zap.Logger) (*ObjectStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check snapshot bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create snapshot bucket: %w", err)
		}
	}

	return &ObjectStore{client: client, bucket: bucket, prefix: prefix, logger: logger}, nil
}

func (s *ObjectStore) key(identity string) string {
	return path.Join(s.prefix, identity+".json")
}

// Load reads the snapshot object for identity. Any retrieval or decode
// failure is a miss.
func (s *ObjectStore) Load(ctx context.Context, identity string) (*models.Schedule, bool) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key(identity), minio.GetObjectOptions{})
	if err != nil {
		return nil, false
	}
	defer obj.Close()

	// Minio surfaces missing objects on read, not on open.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, false
	}

	return decode(data, s.logger, identity)
}

// Save uploads the snapshot object, replacing any previous version. Object
// stores replace keys atomically.
func (s *ObjectStore) Save(ctx context.Context, identity string, schedule *models.Schedule) error {
	data, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot %s: %w", identity, err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.key(identity),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to store snapshot %s: %w", identity, err)
	}

	return nil
}
