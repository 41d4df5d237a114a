package question

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the persistence surface the question service needs.
type Store interface {
	Create(q *Question) error
	ByEvent(eventID uuid.UUID) ([]Question, error)
	ByID(id uuid.UUID) (*Question, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*Question, error)
	Delete(id uuid.UUID) error
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(q *Question) error {
	return r.DB.Create(q).Error
}

func (r *Repository) ByEvent(eventID uuid.UUID) ([]Question, error) {
	var questions []Question
	err := r.DB.Where("event_id = ?", eventID).Order("order_index ASC").Find(&questions).Error
	return questions, err
}

func (r *Repository) ByID(id uuid.UUID) (*Question, error) {
	var q Question
	if err := r.DB.First(&q, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *Repository) Update(id uuid.UUID, fields map[string]interface{}) (*Question, error) {
	if err := r.DB.Model(&Question{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.ByID(id)
}

// Delete removes a question and any responses to it.
func (r *Repository) Delete(id uuid.UUID) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM responses WHERE question_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Question{}).Error
	})
}
