package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"timetable-sync/feature/schedule/models"

	"go.uber.org/zap"
)

// FileStore keeps one JSON document per cache identity in a directory.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a filesystem-backed snapshot store rooted at dir.
// The directory is created lazily on the first Save.
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{dir: dir, logger: logger}
}

func (s *FileStore) path(identity string) string {
	return filepath.Join(s.dir, identity+".json")
}

// Load reads the snapshot for identity. Absent or unreadable files are misses.
func (s *FileStore) Load(ctx context.Context, identity string) (*models.Schedule, bool) {
	data, err := os.ReadFile(s.path(identity))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read snapshot file",
				zap.String("identity", identity),
				zap.Error(err),
			)
		}
		return nil, false
	}

	return decode(data, s.logger, identity)
}

// Save writes the snapshot atomically: the document goes to a temp file in
// the same directory first and is moved into place with a rename, so a
// concurrent Load sees either the old snapshot or the new one, never a
// partial write.
func (s *FileStore) Save(ctx context.Context, identity string, schedule *models.Schedule) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(schedule, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot %s: %w", identity, err)
	}

	tmp, err := os.CreateTemp(s.dir, identity+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot %s: %w", identity, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(identity)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot %s: %w", identity, err)
	}

	return nil
}
