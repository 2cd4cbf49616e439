package leads

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/leadhubhq/leadhub-backend/pkg/db/models"
	"github.com/leadhubhq/leadhub-backend/pkg/enums"
)

func TestLeadDTOCarriesOwner(t *testing.T) {
	owner := uuid.New()
	now := time.Now().UTC()
	lead := &models.Lead{
		ID:        uuid.New(),
		UserID:    owner,
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@x.com",
		Source:    enums.LeadSourceWebsite,
		Status:    enums.LeadStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	raw, err := json.Marshal(FromModel(lead))
	if err != nil {
		t.Fatalf("marshal lead: %v", err)
	}
	if !strings.Contains(string(raw), `"user_id":"`+owner.String()+`"`) {
		t.Fatalf("lead JSON must carry user_id, got %s", raw)
	}

	var decoded LeadDTO
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal lead: %v", err)
	}
	if decoded.UserID != owner {
		t.Fatalf("expected owner %s, got %s", owner, decoded.UserID)
	}
	if decoded.FullName != "Ann Lee" {
		t.Fatalf("expected derived full name, got %q", decoded.FullName)
	}
}
