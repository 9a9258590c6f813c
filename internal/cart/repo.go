package cart

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BVKSH0/baked-bounty-backend/pkg/db/models"
)

// Repository defines the persistence surface required by the cart service.
type Repository interface {
	FindByVisitor(ctx context.Context, visitorID string) (*models.CartRecord, error)
	Save(ctx context.Context, record *models.CartRecord) error
	DeleteByVisitor(ctx context.Context, visitorID string) error
}

// RecordRepository persists cart records through GORM.
type RecordRepository struct {
	db *gorm.DB
}

// NewRecordRepository binds the repository to the provided GORM handle.
func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// FindByVisitor returns the visitor's cart record, or gorm.ErrRecordNotFound.
func (r *RecordRepository) FindByVisitor(ctx context.Context, visitorID string) (*models.CartRecord, error) {
	var record models.CartRecord
	err := r.db.WithContext(ctx).
		Where("visitor_id = ?", visitorID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Save writes the full record, replacing any existing payload for the
// visitor. The cart is stored whole on every change.
func (r *RecordRepository) Save(ctx context.Context, record *models.CartRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "visitor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(record).Error
}

// DeleteByVisitor removes the visitor's cart record if one exists.
func (r *RecordRepository) DeleteByVisitor(ctx context.Context, visitorID string) error {
	return r.db.WithContext(ctx).
		Where("visitor_id = ?", visitorID).
		Delete(&models.CartRecord{}).Error
}

// DeleteStale removes carts not touched since the cutoff and reports how
// many rows went away. Visitor tokens are anonymous, so an untouched cart
// has no owner coming back for it.
func (r *RecordRepository) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&models.CartRecord{})
	return result.RowsAffected, result.Error
}
