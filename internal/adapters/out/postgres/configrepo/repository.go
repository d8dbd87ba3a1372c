package configrepo

import (
	"context"
	"errors"

	"shiprates/internal/core/domain/model/pricing"
	"shiprates/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormConfigRepository implements SettingsRepository using GORM. The
// configuration lives in three tables read together: rate_settings holds the
// singleton scalar row, box_types the shipping-box catalog, lead_times the
// per-SKU overrides.
type GormConfigRepository struct {
	db *gorm.DB
}

// NewGormConfigRepository creates a new GORM configuration repository.
func NewGormConfigRepository(db *gorm.DB) *GormConfigRepository {
	return &GormConfigRepository{
		db: db,
	}
}

// Load reads the complete configuration and returns it as one snapshot.
// A missing rate_settings row is an ObjectNotFoundError; the service cannot
// quote without it.
func (r *GormConfigRepository) Load(ctx context.Context) (pricing.Settings, error) {
	var settingsDTO RateSettingsDTO
	if err := r.db.WithContext(ctx).Order("id DESC").First(&settingsDTO).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.Settings{}, errs.NewObjectNotFoundError("rate_settings", "singleton")
		}
		return pricing.Settings{}, err
	}

	var boxDTOs []BoxTypeDTO
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&boxDTOs).Error; err != nil {
		return pricing.Settings{}, err
	}

	var leadDTOs []LeadTimeDTO
	if err := r.db.WithContext(ctx).Find(&leadDTOs).Error; err != nil {
		return pricing.Settings{}, err
	}

	return toDomain(settingsDTO, boxDTOs, leadDTOs)
}
