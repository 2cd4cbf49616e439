package leads

import (
	"time"

	"github.com/google/uuid"

	"github.com/leadhubhq/leadhub-backend/pkg/db/models"
	"github.com/leadhubhq/leadhub-backend/pkg/enums"
)

// CreateLeadRequest enumerates every accepted field for lead creation.
// Unknown fields are rejected at decode time.
type CreateLeadRequest struct {
	FirstName      string     `json:"first_name" validate:"required"`
	LastName       string     `json:"last_name" validate:"required"`
	Email          string     `json:"email" validate:"required,email"`
	Phone          string     `json:"phone" validate:"omitempty,max=40"`
	Company        string     `json:"company" validate:"omitempty,max=200"`
	City           string     `json:"city" validate:"omitempty,max=100"`
	State          string     `json:"state" validate:"omitempty,max=100"`
	Source         string     `json:"source" validate:"omitempty,oneof=website facebook_ads google_ads referral events other"`
	Status         string     `json:"status" validate:"omitempty,oneof=new contacted qualified lost won"`
	Score          *int       `json:"score" validate:"omitempty,gte=0,lte=100"`
	LeadValue      *float64   `json:"lead_value" validate:"omitempty,gte=0"`
	LastActivityAt *time.Time `json:"last_activity_at"`
	IsQualified    *bool      `json:"is_qualified"`
}

// UpdateLeadRequest carries a partial update; nil fields stay untouched.
// The owner is never part of the body, so reassignment is impossible.
type UpdateLeadRequest struct {
	FirstName      *string    `json:"first_name" validate:"omitempty,min=1"`
	LastName       *string    `json:"last_name" validate:"omitempty,min=1"`
	Email          *string    `json:"email" validate:"omitempty,email"`
	Phone          *string    `json:"phone" validate:"omitempty,max=40"`
	Company        *string    `json:"company" validate:"omitempty,max=200"`
	City           *string    `json:"city" validate:"omitempty,max=100"`
	State          *string    `json:"state" validate:"omitempty,max=100"`
	Source         *string    `json:"source" validate:"omitempty,oneof=website facebook_ads google_ads referral events other"`
	Status         *string    `json:"status" validate:"omitempty,oneof=new contacted qualified lost won"`
	Score          *int       `json:"score" validate:"omitempty,gte=0,lte=100"`
	LeadValue      *float64   `json:"lead_value" validate:"omitempty,gte=0"`
	LastActivityAt *time.Time `json:"last_activity_at"`
	IsQualified    *bool      `json:"is_qualified"`
}

// LeadDTO is the transport shape of a lead. full_name is derived, not stored.
type LeadDTO struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"user_id"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	FullName       string           `json:"full_name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone,omitempty"`
	Company        string           `json:"company,omitempty"`
	City           string           `json:"city,omitempty"`
	State          string           `json:"state,omitempty"`
	Source         enums.LeadSource `json:"source"`
	Status         enums.LeadStatus `json:"status"`
	Score          int              `json:"score"`
	LeadValue      float64          `json:"lead_value"`
	LastActivityAt *time.Time       `json:"last_activity_at,omitempty"`
	IsQualified    bool             `json:"is_qualified"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// LeadPage is one page of leads plus the offset-pagination metadata.
type LeadPage struct {
	Leads      []LeadDTO
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

func FromModel(l *models.Lead) *LeadDTO {
	if l == nil {
		return nil
	}
	return &LeadDTO{
		ID:             l.ID,
		UserID:         l.UserID,
		FirstName:      l.FirstName,
		LastName:       l.LastName,
		FullName:       l.FullName(),
		Email:          l.Email,
		Phone:          l.Phone,
		Company:        l.Company,
		City:           l.City,
		State:          l.State,
		Source:         l.Source,
		Status:         l.Status,
		Score:          l.Score,
		LeadValue:      l.LeadValue,
		LastActivityAt: l.LastActivityAt,
		IsQualified:    l.IsQualified,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func fromModels(leads []models.Lead) []LeadDTO {
	out := make([]LeadDTO, 0, len(leads))
	for i := range leads {
		out = append(out, *FromModel(&leads[i]))
	}
	return out
}
