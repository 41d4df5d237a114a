package guest

import (
	"time"

	"github.com/google/uuid"
)

// Guest is a participant who joined an event under a nickname.
// Gender and looking_for are optional and only consulted by
// preference-based matching.
type Guest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EventID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_guest_nickname,priority:1" json:"event_id"`
	Nickname   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_guest_nickname,priority:2" json:"nickname"`
	Gender     *string   `gorm:"type:varchar(20)" json:"gender,omitempty"`
	LookingFor *string   `gorm:"type:varchar(20)" json:"looking_for,omitempty"`
	JoinedAt   time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// JoinRequest is the payload for joining an event.
type JoinRequest struct {
	Nickname   string  `json:"nickname" binding:"required,min=1,max=100"`
	Gender     *string `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	LookingFor *string `json:"looking_for,omitempty" binding:"omitempty,oneof=male female any"`
}
