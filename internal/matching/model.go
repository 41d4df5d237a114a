package matching

import (
	"time"

	"github.com/google/uuid"
)

// Match pairs two guests of the same event with a similarity score in
// [0,1]. The pair is unordered; a/b carries no meaning.
type Match struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	GuestAID  uuid.UUID `gorm:"type:uuid;not null" json:"guest_a_id"`
	GuestBID  uuid.UUID `gorm:"type:uuid;not null" json:"guest_b_id"`
	Score     float64   `gorm:"not null" json:"score"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// EnrichedMatch is a match decorated with guest nicknames for the host
// overview.
type EnrichedMatch struct {
	Match
	GuestANickname string `json:"guest_a_nickname"`
	GuestBNickname string `json:"guest_b_nickname"`
}

// MyMatch is what a guest sees after the reveal: the counterpart's
// identity and the pair's score.
type MyMatch struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
	Score    float64   `json:"score"`
}
