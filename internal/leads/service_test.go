package leads

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/leadhubhq/leadhub-backend/pkg/db/models"
	"github.com/leadhubhq/leadhub-backend/pkg/enums"
	pkgerrors "github.com/leadhubhq/leadhub-backend/pkg/errors"
	"github.com/leadhubhq/leadhub-backend/pkg/pagination"
)

func TestServiceCreateAppliesDefaults(t *testing.T) {
	repo := &stubLeadRepo{}
	svc := mustService(t, repo)
	owner := uuid.New()

	dto, err := svc.Create(context.Background(), owner, CreateLeadRequest{
		FirstName: " Ann ",
		LastName:  "Lee",
		Email:     " Ann@X.com ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if dto.FirstName != "Ann" {
		t.Fatalf("expected trimmed first name, got %q", dto.FirstName)
	}
	if dto.Email != "ann@x.com" {
		t.Fatalf("expected normalized email, got %q", dto.Email)
	}
	if dto.FullName != "Ann Lee" {
		t.Fatalf("expected derived full name, got %q", dto.FullName)
	}
	if dto.Source != enums.LeadSourceWebsite || dto.Status != enums.LeadStatusNew {
		t.Fatalf("expected defaults website/new, got %s/%s", dto.Source, dto.Status)
	}
	if dto.Score != 0 || dto.LeadValue != 0 || dto.IsQualified {
		t.Fatalf("expected zero-value defaults, got %+v", dto)
	}
	if repo.created == nil || repo.created.UserID != owner {
		t.Fatalf("expected owner stamped on stored lead, got %+v", repo.created)
	}
	if dto.UserID != owner {
		t.Fatalf("expected owner on returned lead, got %s", dto.UserID)
	}
}

func TestServiceCreateRejectsInvalidEnums(t *testing.T) {
	svc := mustService(t, &stubLeadRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateLeadRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@x.com",
		Source:    "carrier_pigeon",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceCreateMapsDuplicate(t *testing.T) {
	repo := &stubLeadRepo{createErr: duplicateErr{}}
	svc := mustService(t, repo)

	_, err := svc.Create(context.Background(), uuid.New(), CreateLeadRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@x.com",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDuplicate {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if typed.Message() != duplicateEmailMessage {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestServiceListShapesPage(t *testing.T) {
	now := time.Now().UTC()
	repo := &stubLeadRepo{
		listLeads: []models.Lead{
			{ID: uuid.New(), FirstName: "A", LastName: "B", Email: "a@x.com", CreatedAt: now},
		},
		listTotal: 41,
	}
	svc := mustService(t, repo)

	page, err := svc.List(context.Background(), uuid.New(), url.Values{
		"page":           {"2"},
		"limit":          {"20"},
		"score":          {"10"},
		"score_operator": {"gt"},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Page != 2 || page.Limit != 20 {
		t.Fatalf("unexpected pagination %+v", page)
	}
	if page.Total != 41 || page.TotalPages != 3 {
		t.Fatalf("expected ceil(41/20)=3 pages, got %+v", page)
	}
	if len(repo.listConds) != 1 || repo.listConds[0].Query != "score > ?" {
		t.Fatalf("expected filter forwarded to repo, got %+v", repo.listConds)
	}
	if repo.listParams.Offset() != 20 {
		t.Fatalf("expected offset 20, got %d", repo.listParams.Offset())
	}
}

func TestServiceListClampsPagination(t *testing.T) {
	repo := &stubLeadRepo{}
	svc := mustService(t, repo)

	page, err := svc.List(context.Background(), uuid.New(), url.Values{
		"page":  {"0"},
		"limit": {"5000"},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Page != 1 {
		t.Fatalf("expected page floor of 1, got %d", page.Page)
	}
	if page.Limit != pagination.MaxLimit {
		t.Fatalf("expected limit clamp to %d, got %d", pagination.MaxLimit, page.Limit)
	}
}

func TestServiceLookupErrorsMapToNotFound(t *testing.T) {
	repo := &stubLeadRepo{lookupErr: gorm.ErrRecordNotFound}
	svc := mustService(t, repo)
	owner := uuid.New()
	id := uuid.New()

	for name, call := range map[string]func() error{
		"get":    func() error { _, err := svc.Get(context.Background(), owner, id); return err },
		"update": func() error { _, err := svc.Update(context.Background(), owner, id, UpdateLeadRequest{}); return err },
		"delete": func() error { _, err := svc.Delete(context.Background(), owner, id); return err },
	} {
		typed := pkgerrors.As(call())
		if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
			t.Fatalf("%s: expected not found, got %v", name, typed)
		}
	}
}

func TestServiceUpdateBuildsColumnMap(t *testing.T) {
	repo := &stubLeadRepo{
		updated: &models.Lead{ID: uuid.New(), FirstName: "Ann", LastName: "Lee", Email: "new@x.com"},
	}
	svc := mustService(t, repo)

	email := " New@X.com "
	status := "won"
	score := 90
	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), UpdateLeadRequest{
		Email:  &email,
		Status: &status,
		Score:  &score,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if repo.updates["email"] != "new@x.com" {
		t.Fatalf("expected normalized email in updates, got %v", repo.updates["email"])
	}
	if repo.updates["status"] != enums.LeadStatusWon {
		t.Fatalf("expected parsed status, got %v", repo.updates["status"])
	}
	if repo.updates["score"] != 90 {
		t.Fatalf("expected score update, got %v", repo.updates["score"])
	}
	if _, ok := repo.updates["first_name"]; ok {
		t.Fatal("nil fields must not be updated")
	}
	if _, ok := repo.updates["user_id"]; ok {
		t.Fatal("owner must never be updatable")
	}
}

func mustService(t *testing.T, repo leadRepository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

type duplicateErr struct{}

func (duplicateErr) Error() string { return "duplicate key value violates unique constraint" }

type stubLeadRepo struct {
	created    *models.Lead
	createErr  error
	listLeads  []models.Lead
	listTotal  int64
	listConds  []Condition
	listParams pagination.Params
	lookupErr  error
	updated    *models.Lead
	updates    map[string]any
}

func (s *stubLeadRepo) List(ctx context.Context, ownerID uuid.UUID, conditions []Condition, params pagination.Params) ([]models.Lead, int64, error) {
	s.listConds = conditions
	s.listParams = params.Normalize()
	return s.listLeads, s.listTotal, nil
}

func (s *stubLeadRepo) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	lead.ID = uuid.New()
	now := time.Now().UTC()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	s.created = lead
	return lead, nil
}

func (s *stubLeadRepo) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Lead, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return &models.Lead{ID: id, UserID: ownerID}, nil
}

func (s *stubLeadRepo) Update(ctx context.Context, ownerID, id uuid.UUID, updates map[string]any) (*models.Lead, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	s.updates = updates
	return s.updated, nil
}

func (s *stubLeadRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) (*models.Lead, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return &models.Lead{ID: id, UserID: ownerID}, nil
}
