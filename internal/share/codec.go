// Package share implements the URL codecs for passing a lesson's
// flashcards or the platform configuration between teachers. Payloads
// are compact JSON with single-letter keys, percent-encoded so the
// base64 layer only ever sees ASCII.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
	"github.com/google/uuid"
)

// View modes a share link can open into.
const (
	ViewCards  = "cards"
	ViewReport = "report"
)

// Payload is the shareable slice of a lesson: just enough to rebuild
// the flashcards on the receiving side.
type Payload struct {
	ID       string            `json:"id,omitempty"`
	Title    string            `json:"t,omitempty"`
	Subject  string            `json:"s,omitempty"`
	Grade    string            `json:"g,omitempty"`
	Date     string            `json:"d,omitempty"`
	Quizzes  []lesson.Question `json:"q,omitempty"`
	Strategy string            `json:"sn,omitempty"`
	View     string            `json:"v,omitempty"`
}

// NewPayload builds a share payload from the lesson details and the
// selected strategy.
func NewPayload(d lesson.Details, s lesson.Strategy, view string) Payload {
	return Payload{
		ID:       uuid.NewString(),
		Title:    d.LessonTitle,
		Subject:  d.Subject,
		Grade:    d.GradeLevel,
		Date:     d.Date,
		Quizzes:  s.Questions,
		Strategy: s.Name,
		View:     view,
	}
}

// Encode serializes the payload into a URL-safe share token.
func Encode(p Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode share payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString([]byte(percentEncode(string(raw)))), nil
}

// Decode parses a share token back into a payload. Callers treat any
// error as "not a share link" and carry on.
func Decode(token string) (Payload, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Payload{}, fmt.Errorf("decode share payload: %w", err)
	}
	unescaped, err := url.PathUnescape(string(raw))
	if err != nil {
		return Payload{}, fmt.Errorf("decode share payload: %w", err)
	}
	var p Payload
	if err := json.Unmarshal([]byte(unescaped), &p); err != nil {
		return Payload{}, fmt.Errorf("decode share payload: %w", err)
	}
	return p, nil
}

// Apply merges the payload into existing lesson details and rebuilds
// the shared strategy. Absent fields keep their previous values, and
// the view defaults to the flashcards.
func (p Payload) Apply(d lesson.Details) (lesson.Details, lesson.Strategy, string) {
	if p.Title != "" {
		d.LessonTitle = p.Title
	}
	if p.Subject != "" {
		d.Subject = p.Subject
	}
	if p.Grade != "" {
		d.GradeLevel = p.Grade
	}
	if p.Date != "" {
		d.Date = p.Date
	}
	view := p.View
	if view == "" {
		view = ViewCards
	}
	return d, lesson.SharedStrategy(p.Strategy, p.Quizzes), view
}

// Config is the shareable slice of the platform settings. Logos travel
// only when they are embedded image data; the API key is base64
// obfuscated, not encrypted.
type Config struct {
	CustomLogo string `json:"cl,omitempty"`
	MoeLogo    string `json:"ml,omitempty"`
	RabbitLogo string `json:"rl,omitempty"`
	Key        string `json:"k,omitempty"`
}

// NewConfig builds a config payload, dropping logos that still point at
// platform defaults and omitting an empty key.
func NewConfig(customLogo, moeLogo, rabbitLogo, apiKey string) Config {
	c := Config{}
	if strings.HasPrefix(customLogo, "data:") {
		c.CustomLogo = customLogo
	}
	if strings.HasPrefix(moeLogo, "data:") {
		c.MoeLogo = moeLogo
	}
	if strings.HasPrefix(rabbitLogo, "data:") {
		c.RabbitLogo = rabbitLogo
	}
	if apiKey != "" {
		c.Key = base64.StdEncoding.EncodeToString([]byte(apiKey))
	}
	return c
}

// APIKey returns the de-obfuscated key, or "" when absent or garbled.
func (c Config) APIKey() string {
	if c.Key == "" {
		return ""
	}
	raw, err := base64.StdEncoding.DecodeString(c.Key)
	if err != nil {
		return ""
	}
	return string(raw)
}

// EncodeConfig serializes the config payload into a URL-safe token.
func EncodeConfig(c Config) (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config payload: %w", err)
	}
	return percentEncode(string(raw)), nil
}

// DecodeConfig parses a config token as extracted from the query
// string, where the percent layer is already stripped. Errors mean
// "ignore the link".
func DecodeConfig(token string) (Config, error) {
	var c Config
	if err := json.Unmarshal([]byte(token), &c); err != nil {
		return Config{}, fmt.Errorf("decode config payload: %w", err)
	}
	return c, nil
}

// LessonURL attaches the share token to a base address.
func LessonURL(base string, p Payload) (string, error) {
	token, err := Encode(p)
	if err != nil {
		return "", err
	}
	return base + "?share=" + url.QueryEscape(token), nil
}

// ConfigURL attaches the config token to a base address.
func ConfigURL(base string, c Config) (string, error) {
	token, err := EncodeConfig(c)
	if err != nil {
		return "", err
	}
	return base + "?config=" + token, nil
}

// ParseURL extracts the share or config token from an address. Either
// return value may be empty; a malformed address yields two empties.
func ParseURL(addr string) (shareToken, configToken string) {
	u, err := url.Parse(addr)
	if err != nil {
		return "", ""
	}
	q := u.Query()
	return q.Get("share"), q.Get("config")
}

// percentEncode escapes every byte outside the unreserved set, leaving
// the result pure ASCII regardless of the input script.
func percentEncode(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' ||
			strings.IndexByte("-_.!~*'()", c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}
