package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/leadhubhq/leadhub-backend/pkg/enums"
)

// Lead is one contact/opportunity record, owned by exactly one user. Email is
// unique per owner, not globally.
type Lead struct {
	ID             uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID         uuid.UUID        `gorm:"column:user_id;type:uuid;not null;uniqueIndex:leads_user_id_email_key,priority:1"`
	FirstName      string           `gorm:"column:first_name;not null"`
	LastName       string           `gorm:"column:last_name;not null"`
	Email          string           `gorm:"column:email;not null;uniqueIndex:leads_user_id_email_key,priority:2"`
	Phone          string           `gorm:"column:phone;not null;default:''"`
	Company        string           `gorm:"column:company;not null;default:''"`
	City           string           `gorm:"column:city;not null;default:''"`
	State          string           `gorm:"column:state;not null;default:''"`
	Source         enums.LeadSource `gorm:"column:source;type:text;not null;default:'website'"`
	Status         enums.LeadStatus `gorm:"column:status;type:text;not null;default:'new'"`
	Score          int              `gorm:"column:score;not null;default:0"`
	LeadValue      float64          `gorm:"column:lead_value;not null;default:0"`
	LastActivityAt *time.Time       `gorm:"column:last_activity_at"`
	IsQualified    bool             `gorm:"column:is_qualified;not null;default:false"`
	CreatedAt      time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// FullName is derived, never stored.
func (l Lead) FullName() string {
	return l.FirstName + " " + l.LastName
}
