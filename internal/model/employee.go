package model

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the identity record behind every login. Accounts are soft
// deleted and lockable; both flags are re-checked on every authenticated
// request, not just at token issuance.
type Employee struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	UserName      string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"user_name"`
	FullName      string     `gorm:"type:varchar(255);not null" json:"full_name"`
	PhoneNumber   string     `gorm:"type:varchar(20)" json:"phone_number"`
	IsMale        int        `gorm:"default:1" json:"is_male"`
	Password      string     `gorm:"type:varchar(512);not null" json:"-"`
	RoleID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"role_id"`
	Role          Role       `gorm:"foreignKey:RoleID" json:"-"`
	DepartmentID  *uint      `json:"department_id,omitempty"`
	PositionID    *uint      `json:"position_id,omitempty"`
	SafeID        *uint      `json:"safe_id,omitempty"`
	UserTypeID    *uint      `json:"user_type_id,omitempty"`
	IsLocked      int        `gorm:"default:0" json:"is_locked"`
	IsDeleted     int        `gorm:"default:0;index" json:"-"`
	LastLoginDate *time.Time `json:"last_login_date,omitempty"`
	Audit
}

func (Employee) TableName() string { return "employees" }
