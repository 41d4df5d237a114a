package response

import "github.com/google/uuid"

// Response is one guest's answer to one question. At most one row per
// (guest, question) pair; re-submission overwrites.
type Response struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	GuestID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_guest_question,priority:1" json:"guest_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_guest_question,priority:2" json:"question_id"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
}

// AnswerSubmit is a single answer in a batch submission.
type AnswerSubmit struct {
	QuestionID uuid.UUID `json:"question_id" binding:"required"`
	Answer     string    `json:"answer" binding:"required"`
}

// AnswersSubmit is a guest's batch answer submission.
type AnswersSubmit struct {
	GuestID uuid.UUID      `json:"guest_id" binding:"required"`
	Answers []AnswerSubmit `json:"answers" binding:"required,dive"`
}
