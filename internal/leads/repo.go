package leads

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/leadhubhq/leadhub-backend/pkg/db/models"
	"github.com/leadhubhq/leadhub-backend/pkg/pagination"
)

// Repository issues owner-scoped lead persistence operations. Every query
// carries the user_id predicate; a cross-tenant id behaves exactly like a
// missing one.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a leads repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) scoped(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Lead{}).Where("user_id = ?", ownerID)
}

// List returns the total matching count and one page ordered by creation time
// descending.
func (r *Repository) List(ctx context.Context, ownerID uuid.UUID, conditions []Condition, params pagination.Params) ([]models.Lead, int64, error) {
	params = params.Normalize()

	query := r.scoped(ctx, ownerID)
	for _, cond := range conditions {
		query = query.Where(cond.Query, cond.Args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leads []models.Lead
	err := query.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// Create inserts the lead and returns the persisted model.
func (r *Repository) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		return nil, err
	}
	return lead, nil
}

// FindByID loads one lead owned by ownerID.
func (r *Repository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	if err := r.scoped(ctx, ownerID).Where("id = ?", id).First(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// Update applies a column map to one owned lead and reloads it. A miss on the
// owner predicate reports gorm.ErrRecordNotFound.
func (r *Repository) Update(ctx context.Context, ownerID, id uuid.UUID, updates map[string]any) (*models.Lead, error) {
	if len(updates) == 0 {
		return r.FindByID(ctx, ownerID, id)
	}

	result := r.scoped(ctx, ownerID).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, ownerID, id)
}

// Delete removes one owned lead and returns the removed record.
func (r *Repository) Delete(ctx context.Context, ownerID, id uuid.UUID) (*models.Lead, error) {
	lead, err := r.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Lead{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return lead, nil
}
