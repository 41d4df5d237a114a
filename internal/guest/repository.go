package guest

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the persistence surface the guest service needs.
type Store interface {
	Create(g *Guest) error
	ByID(id uuid.UUID) (*Guest, error)
	ByEvent(eventID uuid.UUID) ([]Guest, error)
	NicknameExists(eventID uuid.UUID, nickname string) (bool, error)
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(g *Guest) error {
	return r.DB.Create(g).Error
}

func (r *Repository) ByID(id uuid.UUID) (*Guest, error) {
	var g Guest
	if err := r.DB.First(&g, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) ByEvent(eventID uuid.UUID) ([]Guest, error) {
	var guests []Guest
	err := r.DB.Where("event_id = ?", eventID).Order("joined_at ASC").Find(&guests).Error
	return guests, err
}

func (r *Repository) NicknameExists(eventID uuid.UUID, nickname string) (bool, error) {
	var count int64
	err := r.DB.Model(&Guest{}).
		Where("event_id = ? AND nickname = ?", eventID, nickname).
		Count(&count).Error
	return count > 0, err
}
