package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Settings are the persisted platform configuration values. Empty
// fields mean "use the built-in default".
type Settings struct {
	APIKey     string
	CustomLogo string
	MoeLogo    string
	RabbitLogo string
}

// SettingsRepo manages the platform configuration key/value pairs.
type SettingsRepo interface {
	// Load reads all known settings. Missing keys come back empty.
	Load(ctx context.Context) (Settings, error)

	// Save writes the given settings, overwriting existing values.
	// Empty fields delete the stored value.
	Save(ctx context.Context, s Settings) error

	// Set writes a single setting key.
	Set(ctx context.Context, key, value string) error

	// Delete removes a single setting key.
	Delete(ctx context.Context, key string) error
}

// Profile is the stable part of the lesson form, persisted across
// sessions. Per-lesson fields (title, content, date) are not stored.
type Profile struct {
	TeacherName string
	School      string
	Region      string
	Subject     string
	Grade       string
	Principal   string
}

// ProfileRepo manages the single persisted lesson profile.
type ProfileRepo interface {
	// Load reads the stored profile. Returns a zero Profile when none
	// has been saved yet.
	Load(ctx context.Context) (Profile, error)

	// Save overwrites the stored profile.
	Save(ctx context.Context, p Profile) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates token usage for one purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest-first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
