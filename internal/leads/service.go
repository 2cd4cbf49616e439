package leads

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/leadhubhq/leadhub-backend/pkg/db"
	"github.com/leadhubhq/leadhub-backend/pkg/db/models"
	"github.com/leadhubhq/leadhub-backend/pkg/enums"
	pkgerrors "github.com/leadhubhq/leadhub-backend/pkg/errors"
	"github.com/leadhubhq/leadhub-backend/pkg/pagination"
)

const (
	leadNotFoundMessage   = "lead not found"
	duplicateEmailMessage = "a lead with this email already exists"

	ownerEmailConstraint = "leads_user_id_email_key"
)

// Service defines the behavior needed by the leads controller.
type Service interface {
	List(ctx context.Context, ownerID uuid.UUID, query url.Values) (*LeadPage, error)
	Create(ctx context.Context, ownerID uuid.UUID, req CreateLeadRequest) (*LeadDTO, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*LeadDTO, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateLeadRequest) (*LeadDTO, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (*LeadDTO, error)
}

type leadRepository interface {
	List(ctx context.Context, ownerID uuid.UUID, conditions []Condition, params pagination.Params) ([]models.Lead, int64, error)
	Create(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Lead, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, updates map[string]any) (*models.Lead, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (*models.Lead, error)
}

type service struct {
	repo leadRepository
}

// NewService constructs the leads service around the provided repository.
func NewService(repo leadRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("lead repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, query url.Values) (*LeadPage, error) {
	params := pagination.Params{
		Page:  atoiOrZero(query.Get("page")),
		Limit: atoiOrZero(query.Get("limit")),
	}.Normalize()

	conditions := BuildFilter(query)

	leads, total, err := s.repo.List(ctx, ownerID, conditions, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list leads")
	}

	return &LeadPage{
		Leads:      fromModels(leads),
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: pagination.PageCount(total, params.Limit),
	}, nil
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, req CreateLeadRequest) (*LeadDTO, error) {
	lead := &models.Lead{
		UserID:         ownerID,
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          strings.TrimSpace(req.Phone),
		Company:        strings.TrimSpace(req.Company),
		City:           strings.TrimSpace(req.City),
		State:          strings.TrimSpace(req.State),
		Source:         enums.LeadSourceWebsite,
		Status:         enums.LeadStatusNew,
		LastActivityAt: req.LastActivityAt,
	}

	if req.Source != "" {
		source, err := enums.ParseLeadSource(req.Source)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid source")
		}
		lead.Source = source
	}
	if req.Status != "" {
		status, err := enums.ParseLeadStatus(req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
		}
		lead.Status = status
	}
	if req.Score != nil {
		lead.Score = *req.Score
	}
	if req.LeadValue != nil {
		lead.LeadValue = *req.LeadValue
	}
	if req.IsQualified != nil {
		lead.IsQualified = *req.IsQualified
	}

	created, err := s.repo.Create(ctx, lead)
	if err != nil {
		if db.IsUniqueViolation(err, ownerEmailConstraint) {
			return nil, pkgerrors.New(pkgerrors.CodeDuplicate, duplicateEmailMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create lead")
	}
	return FromModel(created), nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (*LeadDTO, error) {
	lead, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, mapLookupError(err, "fetch lead")
	}
	return FromModel(lead), nil
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateLeadRequest) (*LeadDTO, error) {
	updates := map[string]any{}

	setTrimmed := func(column string, value *string) {
		if value != nil {
			updates[column] = strings.TrimSpace(*value)
		}
	}
	setTrimmed("first_name", req.FirstName)
	setTrimmed("last_name", req.LastName)
	setTrimmed("phone", req.Phone)
	setTrimmed("company", req.Company)
	setTrimmed("city", req.City)
	setTrimmed("state", req.State)

	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Source != nil {
		source, err := enums.ParseLeadSource(*req.Source)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid source")
		}
		updates["source"] = source
	}
	if req.Status != nil {
		status, err := enums.ParseLeadStatus(*req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
		}
		updates["status"] = status
	}
	if req.Score != nil {
		updates["score"] = *req.Score
	}
	if req.LeadValue != nil {
		updates["lead_value"] = *req.LeadValue
	}
	if req.LastActivityAt != nil {
		updates["last_activity_at"] = *req.LastActivityAt
	}
	if req.IsQualified != nil {
		updates["is_qualified"] = *req.IsQualified
	}

	lead, err := s.repo.Update(ctx, ownerID, id, updates)
	if err != nil {
		if db.IsUniqueViolation(err, ownerEmailConstraint) {
			return nil, pkgerrors.New(pkgerrors.CodeDuplicate, duplicateEmailMessage)
		}
		return nil, mapLookupError(err, "update lead")
	}
	return FromModel(lead), nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) (*LeadDTO, error) {
	lead, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return nil, mapLookupError(err, "delete lead")
	}
	return FromModel(lead), nil
}

func mapLookupError(err error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, leadNotFoundMessage)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, action)
}

func atoiOrZero(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
