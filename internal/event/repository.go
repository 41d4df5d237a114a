package event

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the persistence surface the event service needs.
type Store interface {
	Create(e *Event) error
	ByCode(code string) (*Event, error)
	CodeExists(code string) (bool, error)
	ByHost(userID string) ([]Event, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*Event, error)
	Delete(id uuid.UUID) error
	GuestCount(eventID uuid.UUID) (int64, error)
	ResponseCount(eventID uuid.UUID) (int64, error)
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(e *Event) error {
	return r.DB.Create(e).Error
}

// ByCode looks up an event by its join code, case-insensitively.
func (r *Repository) ByCode(code string) (*Event, error) {
	var e Event
	err := r.DB.Where("code = ?", strings.ToUpper(code)).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&Event{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *Repository) ByHost(userID string) ([]Event, error) {
	var events []Event
	err := r.DB.
		Where("host_user_id = ?", userID).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

func (r *Repository) Update(id uuid.UUID, fields map[string]interface{}) (*Event, error) {
	if err := r.DB.Model(&Event{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	var e Event
	if err := r.DB.First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes an event together with its guests, questions, responses
// and matches in one transaction.
func (r *Repository) Delete(id uuid.UUID) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM matches WHERE event_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM responses WHERE guest_id IN (SELECT id FROM guests WHERE event_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM questions WHERE event_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM guests WHERE event_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Event{}).Error
	})
}

func (r *Repository) GuestCount(eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.DB.Table("guests").Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

func (r *Repository) ResponseCount(eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.DB.Table("responses").
		Joins("JOIN guests ON guests.id = responses.guest_id").
		Where("guests.event_id = ?", eventID).
		Count(&count).Error
	return count, err
}
