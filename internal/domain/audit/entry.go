// Package audit models the append-only transaction log. Entries are never
// mutated or deleted through normal operation.
package audit

import (
	"context"
	"time"
)

// Details captures the request/response context of a logged call.
type Details struct {
	Method       string            `json:"method"`
	URL          string            `json:"url"`
	StatusCode   int               `json:"statusCode"`
	RequestBody  interface{}       `json:"requestBody,omitempty"`
	RequestQuery map[string]string `json:"requestQuery,omitempty"`
	ResponseData string            `json:"responseData,omitempty"`
	UserAgent    string            `json:"userAgent,omitempty"`
	IPAddress    string            `json:"ipAddress,omitempty"`
}

// Entry is one audit log row.
type Entry struct {
	ID        uint
	UserID    uint
	Action    string
	Details   Details
	Timestamp time.Time
	IPAddress string
}

// Actor is the joined user summary attached to listed entries.
type Actor struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ListedEntry pairs an entry with its actor for the read endpoint.
type ListedEntry struct {
	Entry
	User *Actor
}

// Filter narrows audit log listings.
type Filter struct {
	UserID    *uint
	Action    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	List(ctx context.Context, filter Filter) ([]*ListedEntry, int64, error)
}
