package poolgen

// Config controls the behavior of the pool generation service.
type Config struct {
	// MaxTokens is the token budget for the generation response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// DefaultCount is the question count used when the caller passes
	// zero or a negative count.
	DefaultCount int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    1800,
		Temperature:  0.7,
		DefaultCount: 10,
	}
}
