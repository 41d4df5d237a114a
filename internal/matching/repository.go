package matching

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the persistence surface the matching state machine needs.
type Store interface {
	// Replace swaps the event's whole match set and marks matching
	// completed, atomically. It must not touch matches_revealed.
	Replace(eventID uuid.UUID, matches []Match) error
	Insert(m *Match) error
	ByEvent(eventID uuid.UUID) ([]Match, error)
	// ForGuest returns the first match containing the guest, or nil.
	ForGuest(eventID, guestID uuid.UUID) (*Match, error)
	// Delete removes one match scoped to the event, reporting how many
	// rows went away.
	Delete(eventID, matchID uuid.UUID) (int64, error)
	SetRevealed(eventID uuid.UUID) error
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Replace(eventID uuid.UUID, matches []Match) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&Match{}).Error; err != nil {
			return err
		}
		if len(matches) > 0 {
			if err := tx.Create(&matches).Error; err != nil {
				return err
			}
		}
		return tx.Table("events").
			Where("id = ?", eventID).
			Update("matching_completed", true).Error
	})
}

func (r *Repository) Insert(m *Match) error {
	return r.DB.Create(m).Error
}

func (r *Repository) ByEvent(eventID uuid.UUID) ([]Match, error) {
	var matches []Match
	err := r.DB.Where("event_id = ?", eventID).Order("created_at ASC").Find(&matches).Error
	return matches, err
}

func (r *Repository) ForGuest(eventID, guestID uuid.UUID) (*Match, error) {
	var m Match
	err := r.DB.
		Where("event_id = ? AND (guest_a_id = ? OR guest_b_id = ?)", eventID, guestID, guestID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Delete(eventID, matchID uuid.UUID) (int64, error) {
	result := r.DB.Where("id = ? AND event_id = ?", matchID, eventID).Delete(&Match{})
	return result.RowsAffected, result.Error
}

func (r *Repository) SetRevealed(eventID uuid.UUID) error {
	return r.DB.Table("events").
		Where("id = ?", eventID).
		Update("matches_revealed", true).Error
}
