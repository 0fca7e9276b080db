package models

import (
	"strings"
	"time"
)

// Status is the report lifecycle of an item. Matching only ever pairs a lost
// item with a found one; claimed and returned items stay out of candidate pools.
type Status string

const (
	StatusLost     Status = "lost"
	StatusFound    Status = "found"
	StatusClaimed  Status = "claimed"
	StatusReturned Status = "returned"
)

// ParseStatus normalizes raw status input to one of the known statuses.
// Unknown input returns an empty Status.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "lost":
		return StatusLost
	case "found":
		return StatusFound
	case "claimed":
		return StatusClaimed
	case "returned":
		return StatusReturned
	}
	return ""
}

// Matchable reports whether items with this status participate in matching.
func (s Status) Matchable() bool {
	return s == StatusLost || s == StatusFound
}

// Opposite returns the counterpart status for matching. Only defined for
// lost and found; other statuses return an empty Status.
func (s Status) Opposite() Status {
	switch s {
	case StatusLost:
		return StatusFound
	case StatusFound:
		return StatusLost
	}
	return ""
}

type Item struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Location      string    `json:"location"`
	Date          string    `json:"date"` // calendar day the item was lost/found; empty when unknown
	Status        Status    `json:"status"`
	ReporterName  string    `json:"reporter_name,omitempty"`
	ReporterEmail string    `json:"reporter_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Category is one entry of the closed category set items are filed under.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}
