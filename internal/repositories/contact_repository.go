package repositories

import (
	"github.com/blognity/backend/internal/models"
	"gorm.io/gorm"
)

// ContactMessageRepository defines the interface for the support queue
type ContactMessageRepository interface {
	CreateMessage(message *models.ContactMessage) error
	GetMessages() ([]models.ContactMessage, error)
	ResolveMessage(id uint) error
}

type postgresContactMessageRepository struct {
	db *gorm.DB
}

func NewPostgresContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &postgresContactMessageRepository{db: db}
}

func (r *postgresContactMessageRepository) CreateMessage(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *postgresContactMessageRepository) GetMessages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *postgresContactMessageRepository) ResolveMessage(id uint) error {
	res := r.db.Model(&models.ContactMessage{}).Where("id = ?", id).
		Update("status", models.ContactStatusResolved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
