// Package configrepo loads the rating configuration from PostgreSQL.
// The configuration is operator-maintained reference data, read as one
// immutable snapshot; this package maps the relational rows to the
// pricing.Settings value object.
package configrepo

import (
	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/packing"
	"shiprates/internal/core/domain/model/pricing"

	"github.com/lib/pq"
)

// RateSettingsDTO is the singleton configuration row. List-valued fields use
// native PostgreSQL text arrays rather than join tables because they are
// opaque allow lists, never queried element-wise.
type RateSettingsDTO struct {
	ID               int64          `gorm:"primaryKey;autoIncrement"`
	HomeCountry      string         `gorm:"type:varchar(2);not null"`
	LocalZips        pq.StringArray `gorm:"type:text[]"`
	AllowedServices  pq.StringArray `gorm:"type:text[]"`
	GroundFeeCents   int64          `gorm:"type:bigint;not null"`
	OtherFeeCents    int64          `gorm:"type:bigint;not null"`
	PriorityFeeCents int64          `gorm:"type:bigint;not null"`
	DefaultLeadDays  int            `gorm:"type:int;not null"`
	ShipperCountry   string         `gorm:"type:varchar(2);not null"`
	ShipperPostal    string         `gorm:"type:varchar(16);not null"`
	ShipperProvince  string         `gorm:"type:varchar(64)"`
	ShipperCity      string         `gorm:"type:varchar(128)"`
}

// TableName specifies the database table name for the configuration row.
func (RateSettingsDTO) TableName() string {
	return "rate_settings"
}

// BoxTypeDTO is one row of the shipping-box catalog. Dimensions are inches,
// weights are pounds.
type BoxTypeDTO struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"type:varchar(64);not null;uniqueIndex"`
	LengthIn      float64 `gorm:"type:numeric;not null"`
	WidthIn       float64 `gorm:"type:numeric;not null"`
	HeightIn      float64 `gorm:"type:numeric;not null"`
	MaxWeightLb   float64 `gorm:"type:numeric;not null"`
	EmptyWeightLb float64 `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for box catalog rows.
func (BoxTypeDTO) TableName() string {
	return "box_types"
}

// LeadTimeDTO is one per-SKU lead-time override in business days.
type LeadTimeDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Sku  string `gorm:"type:varchar(64);not null;uniqueIndex"`
	Days int    `gorm:"type:int;not null"`
}

// TableName specifies the database table name for lead-time overrides.
func (LeadTimeDTO) TableName() string {
	return "lead_times"
}

// boxTypeToDomain converts a catalog row to the domain value object.
func boxTypeToDomain(dto BoxTypeDTO) (packing.BoxType, error) {
	maxWeight, err := kernel.NewWeightFromPounds(dto.MaxWeightLb)
	if err != nil {
		return packing.BoxType{}, err
	}

	emptyWeight, err := kernel.NewWeightFromPounds(dto.EmptyWeightLb)
	if err != nil {
		return packing.BoxType{}, err
	}

	return packing.NewBoxType(dto.Name, dto.LengthIn, dto.WidthIn, dto.HeightIn, maxWeight, emptyWeight)
}

// toDomain assembles the complete settings snapshot from the loaded rows.
func toDomain(
	settingsDTO RateSettingsDTO,
	boxDTOs []BoxTypeDTO,
	leadDTOs []LeadTimeDTO,
) (pricing.Settings, error) {
	boxTypes := make([]packing.BoxType, 0, len(boxDTOs))
	for _, dto := range boxDTOs {
		boxType, err := boxTypeToDomain(dto)
		if err != nil {
			return pricing.Settings{}, err
		}
		boxTypes = append(boxTypes, boxType)
	}

	groundFee, err := kernel.NewMoney(settingsDTO.GroundFeeCents)
	if err != nil {
		return pricing.Settings{}, err
	}

	otherFee, err := kernel.NewMoney(settingsDTO.OtherFeeCents)
	if err != nil {
		return pricing.Settings{}, err
	}

	priorityFee, err := kernel.NewMoney(settingsDTO.PriorityFeeCents)
	if err != nil {
		return pricing.Settings{}, err
	}

	bySku := make(map[string]int, len(leadDTOs))
	for _, dto := range leadDTOs {
		bySku[dto.Sku] = dto.Days
	}

	shipper, err := cart.NewAddress(
		settingsDTO.ShipperCountry,
		settingsDTO.ShipperPostal,
		settingsDTO.ShipperProvince,
		settingsDTO.ShipperCity,
	)
	if err != nil {
		return pricing.Settings{}, err
	}

	return pricing.NewSettings(
		settingsDTO.HomeCountry,
		settingsDTO.LocalZips,
		boxTypes,
		pricing.NewHandlingFeeTable(groundFee, otherFee),
		pricing.NewLeadTimeTable(settingsDTO.DefaultLeadDays, bySku),
		priorityFee,
		settingsDTO.AllowedServices,
		shipper,
	)
}
