package search

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// indexFile is the on-disk layout of a persisted index.
type indexFile struct {
	BuiltAt  time.Time `json:"built_at"`
	Entities []Entity  `json:"entities"`
}

// Cache persists the built index between runs so startup does not have to
// probe the site every time.
type Cache struct {
	path   string
	logger *zap.Logger
}

// NewCache creates an index cache at the given file path.
func NewCache(path string, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{path: path, logger: logger}
}

// Load reads the persisted index. A missing, unreadable, or empty file is a
// miss, never an error; the caller rebuilds from the site instead.
func (c *Cache) Load() ([]Entity, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("failed to read search index cache", zap.String("path", c.path), zap.Error(err))
		}
		return nil, false
	}

	var file indexFile
	if err := json.Unmarshal(data, &file); err != nil {
		c.logger.Warn("discarding corrupt search index cache", zap.String("path", c.path), zap.Error(err))
		return nil, false
	}

	if len(file.Entities) == 0 {
		return nil, false
	}
	return file.Entities, true
}

// Save writes the index atomically so a concurrent load never sees a
// partial file.
func (c *Cache) Save(entities []Entity) error {
	data, err := json.MarshalIndent(indexFile{BuiltAt: time.Now(), Entities: entities}, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".index-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), c.path)
}
