package form

import (
	"time"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
)

// strategiesReadyMsg is sent when strategy generation finishes.
type strategiesReadyMsg struct {
	Details    lesson.Details
	Strategies []lesson.Strategy
	Err        error
}

// ocrDoneMsg is sent when text extraction from the attached file finishes.
type ocrDoneMsg struct {
	Text string
	Err  error
}

// spinnerTickMsg animates the busy indicator while a request is in flight.
type spinnerTickMsg time.Time
