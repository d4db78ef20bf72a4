package fetch

// Config holds configuration for the upstream timetable source.
type Config struct {
	// BaseURL is the root URL of the timetable site.
	BaseURL string `mapstructure:"base_url" default:"https://timetable.pallada.sibsau.ru"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// InsecureSkipVerify disables TLS certificate verification.
	// The upstream site serves an invalid certificate chain.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" default:"true"`
}
