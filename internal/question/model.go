package question

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Question is a host-authored prompt guests answer before matching runs.
// Options carries the choice list for multiple_choice questions.
type Question struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EventID      uuid.UUID                   `gorm:"type:uuid;not null;index" json:"event_id"`
	Text         string                      `gorm:"type:text;not null" json:"text"`
	QuestionType string                      `gorm:"type:varchar(50);not null;default:multiple_choice" json:"question_type"`
	Options      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"options,omitempty"`
	OrderIndex   int                         `gorm:"not null;default:0" json:"order_index"`
}

// CreateQuestionRequest is the payload for adding a question.
type CreateQuestionRequest struct {
	Text         string   `json:"text" binding:"required,min=1"`
	QuestionType string   `json:"question_type" binding:"omitempty"`
	Options      []string `json:"options,omitempty"`
	OrderIndex   int      `json:"order_index"`
}

// UpdateQuestionRequest is the payload for editing a question. Nil
// fields are left untouched.
type UpdateQuestionRequest struct {
	Text       *string   `json:"text,omitempty" binding:"omitempty,min=1"`
	Options    *[]string `json:"options,omitempty"`
	OrderIndex *int      `json:"order_index,omitempty"`
}
