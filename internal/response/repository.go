package response

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persistence surface the response service needs.
type Store interface {
	Upsert(responses []Response) error
	ByGuest(guestID uuid.UUID) ([]Response, error)
	ByGuests(guestIDs []uuid.UUID) ([]Response, error)
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Upsert inserts answers, overwriting any prior answer for the same
// (guest, question) pair.
func (r *Repository) Upsert(responses []Response) error {
	if len(responses) == 0 {
		return nil
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guest_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer"}),
	}).Create(&responses).Error
}

func (r *Repository) ByGuest(guestID uuid.UUID) ([]Response, error) {
	var responses []Response
	err := r.DB.Where("guest_id = ?", guestID).Find(&responses).Error
	return responses, err
}

func (r *Repository) ByGuests(guestIDs []uuid.UUID) ([]Response, error) {
	var responses []Response
	err := r.DB.Where("guest_id IN ?", guestIDs).Find(&responses).Error
	return responses, err
}
