package search

// Config holds configuration for the fuzzy search index.
type Config struct {
	// CacheFile is where the built index is persisted between runs.
	CacheFile string `mapstructure:"cache_file" default:".cache/search_index.json"`
	// GroupIDStart is the first group id probed when building the index.
	GroupIDStart int `mapstructure:"group_id_start" default:"3099"`
	// GroupIDEnd is the last group id probed (inclusive).
	GroupIDEnd int `mapstructure:"group_id_end" default:"3102"`
	// ProfessorIDStart is the first professor id probed.
	ProfessorIDStart int `mapstructure:"professor_id_start" default:"13500"`
	// ProfessorIDEnd is the last professor id probed (inclusive).
	ProfessorIDEnd int `mapstructure:"professor_id_end" default:"13502"`
	// MaxConcurrency bounds parallel page fetches during an index build.
	MaxConcurrency int `mapstructure:"max_concurrency" default:"8"`
}
