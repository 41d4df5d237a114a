package event

import (
	"time"

	"github.com/google/uuid"
)

// Matching modes.
const (
	ModeAny             = "any"
	ModePreferenceBased = "preference_based"
)

// Event is a single matchmaking session identified by a short code.
type Event struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code              string    `gorm:"type:varchar(16);uniqueIndex;not null" json:"code"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	HostName          *string   `gorm:"type:varchar(100)" json:"host_name,omitempty"`
	HostUserID        *string   `gorm:"type:varchar(255);index" json:"-"`
	EventType         string    `gorm:"type:varchar(50);not null;default:party" json:"event_type"`
	MatchingMode      string    `gorm:"type:varchar(50);not null;default:any" json:"matching_mode"`
	MatchesPerGuest   int       `gorm:"not null;default:1" json:"matches_per_guest"`
	MatchingCompleted bool      `gorm:"not null;default:false" json:"matching_completed"`
	MatchesRevealed   bool      `gorm:"not null;default:false" json:"matches_revealed"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Host returns the ownership of this event as an explicit value rather
// than a nullable column comparison.
func (e *Event) Host() Host {
	if e.HostUserID == nil || *e.HostUserID == "" {
		return Anonymous()
	}
	return OwnedBy(*e.HostUserID)
}

// Host is the owner of an event: either a signed-in user or nobody.
// Anonymous events exist because hosts may create events without an
// account.
type Host struct {
	userID string
	owned  bool
}

// OwnedBy builds a Host for an authenticated user id.
func OwnedBy(userID string) Host { return Host{userID: userID, owned: true} }

// Anonymous builds the ownerless Host.
func Anonymous() Host { return Host{} }

// Owned reports whether the event has a host reference at all.
func (h Host) Owned() bool { return h.owned }

// CanModify reports whether callerID may perform host-only actions such
// as running matching or revealing. Events without an owner allow any
// caller.
func (h Host) CanModify(callerID string) bool {
	return !h.owned || h.userID == callerID
}

// IsOwnedBy reports whether callerID is the owner. Unlike CanModify,
// anonymous events fail this check; used for event update and delete.
func (h Host) IsOwnedBy(callerID string) bool {
	return h.owned && h.userID == callerID
}

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	Name            string  `json:"name" binding:"required,max=255"`
	HostName        *string `json:"host_name,omitempty" binding:"omitempty,max=100"`
	MatchingMode    string  `json:"matching_mode" binding:"omitempty,oneof=any preference_based"`
	MatchesPerGuest int     `json:"matches_per_guest" binding:"omitempty,min=1,max=5"`
	EventType       string  `json:"event_type" binding:"omitempty,oneof=party networking"`
}

// UpdateEventRequest is the payload for partially updating an event.
// Nil fields are left untouched.
type UpdateEventRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	HostName        *string `json:"host_name,omitempty" binding:"omitempty,max=100"`
	MatchingMode    *string `json:"matching_mode,omitempty" binding:"omitempty,oneof=any preference_based"`
	MatchesPerGuest *int    `json:"matches_per_guest,omitempty" binding:"omitempty,min=1,max=5"`
}

// EventPublic is the event info exposed to guests joining by code.
type EventPublic struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	HostName     *string `json:"host_name,omitempty"`
	MatchingMode string  `json:"matching_mode"`
}

// EventStatus summarizes progress for the host dashboard.
type EventStatus struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	HostName          *string `json:"host_name,omitempty"`
	GuestCount        int64   `json:"guest_count"`
	ResponsesCount    int64   `json:"responses_count"`
	MatchingCompleted bool    `json:"matching_completed"`
}
