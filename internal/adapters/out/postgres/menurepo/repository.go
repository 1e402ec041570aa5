package menurepo

import (
	"context"

	"restaurant/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item to the database and copies the store-assigned
// identifier back into the entity.
func (r *GormMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := item.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// GetByNames retrieves the catalog entries matching the given names.
// Unknown names are simply absent from the result.
func (r *GormMenuRepository) GetByNames(ctx context.Context, names []string) ([]*menu.Item, error) {
	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Where("name IN ?", names).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Count returns the number of catalog entries.
func (r *GormMenuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ItemDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
