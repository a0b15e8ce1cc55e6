package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is tenant-scoped business data; the project defaults to the
// creating employee's tenant when not supplied.
type Customer struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName       string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Email          string     `gorm:"type:varchar(255)" json:"email"`
	PhoneNumber    string     `gorm:"type:varchar(20)" json:"phone_number"`
	ProjectID      uint       `gorm:"not null;index" json:"project_id"`
	CustomerTypeID *uint      `json:"customer_type_id,omitempty"`
	IDTypeID       *uint      `json:"id_type_id,omitempty"`
	IDNumber       string     `gorm:"type:varchar(100)" json:"id_number"`
	CountryID      *uint      `json:"country_id,omitempty"`
	ReligionID     *uint      `json:"religion_id,omitempty"`
	MaritalID      *uint      `json:"marital_status_id,omitempty"`
	IsMale         int        `gorm:"default:1" json:"is_male"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Address        string     `gorm:"type:text" json:"address"`
	IsDeleted      int        `gorm:"default:0;index" json:"-"`
	Audit
}

func (Customer) TableName() string { return "customers" }
