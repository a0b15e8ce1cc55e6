package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitSpecification holds the physical attributes of a property unit,
// created together with the unit in one transaction.
type UnitSpecification struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UnitTypeID   uint            `gorm:"not null;index" json:"unit_type_id"`
	UnitType     UnitType        `gorm:"foreignKey:UnitTypeID" json:"-"`
	LocationID   uint            `gorm:"not null;index" json:"location_id"`
	Location     Location        `gorm:"foreignKey:LocationID" json:"-"`
	Address      string          `gorm:"type:text" json:"address"`
	TotalArea    decimal.Decimal `gorm:"type:numeric(12,2)" json:"total_area"`
	Floor        *int            `json:"floor,omitempty"`
	RoomNo       *int            `json:"room_no,omitempty"`
	BathRoomNo   *int            `json:"bath_room_no,omitempty"`
	LivingRoomNo *int            `json:"living_room_no,omitempty"`
	BalconyNo    *int            `json:"balcony_no,omitempty"`
	IsFurnished  int             `gorm:"default:0" json:"is_furnished"`
	Audit
}

func (UnitSpecification) TableName() string { return "unit_specifications" }

// Unit is a tenant-scoped property unit.
type Unit struct {
	ID                uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UnitNumber        string            `gorm:"type:varchar(100);not null;index" json:"unit_number"`
	ProjectID         uint              `gorm:"not null;index" json:"project_id"`
	CompanyProject    CompanyProject    `gorm:"foreignKey:ProjectID" json:"-"`
	SpecificationID   uint              `gorm:"not null;index" json:"specification_id"`
	Specification     UnitSpecification `gorm:"foreignKey:SpecificationID" json:"specification"`
	Notes             string            `gorm:"type:text" json:"notes,omitempty"`
	IsActive          int               `gorm:"default:1" json:"is_active"`
	IsBroker          int               `gorm:"default:0" json:"is_broker"`
	IsEligibleForRent int               `gorm:"default:0" json:"is_eligible_for_rent"`
	DeliveryDate      *time.Time        `json:"delivery_date,omitempty"`
	ContractingDate   *time.Time        `json:"contracting_date,omitempty"`
	IsLocked          int               `gorm:"default:0" json:"is_locked"`
	LockDate          *time.Time        `json:"lock_date,omitempty"`
	LockedBy          string            `gorm:"type:varchar(255)" json:"locked_by,omitempty"`
	UnlockDate        *time.Time        `json:"unlock_date,omitempty"`
	UnlockedBy        string            `gorm:"type:varchar(255)" json:"unlocked_by,omitempty"`
	CustomerID        *uuid.UUID        `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	IsDeleted         int               `gorm:"default:0;index" json:"-"`
	Audit
}

func (Unit) TableName() string { return "units" }
