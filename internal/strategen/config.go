package strategen

// Config holds tunables for strategy generation.
type Config struct {
	// MaxTokens caps the response size. Strategy batches are large.
	MaxTokens int

	// Temperature for generation. Strategies benefit from variety.
	Temperature float64

	// DefaultQuestionCount is used when the form leaves the count unset.
	DefaultQuestionCount int
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:            8192,
		Temperature:          0.7,
		DefaultQuestionCount: 10,
	}
}
