package events

import (
	"time"

	"github.com/google/uuid"
)

// StreamName is the Redis stream carrying domain list events.
const StreamName = "omnibar:domain-events"

// EventType identifies a domain list mutation.
type EventType string

const (
	DomainAdded     EventType = "domain.added"
	DomainRemoved   EventType = "domain.removed"
	DomainsImported EventType = "domains.imported"
)

// DomainEvent describes a mutation of the custom domain list, published so
// other browser surfaces can refresh their copies.
type DomainEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	EventType EventType `json:"event_type"`
	Domain    string    `json:"domain,omitempty"`
	Count     int       `json:"count,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
