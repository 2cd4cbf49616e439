package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/leadhubhq/leadhub-backend/api/responses"
	"github.com/leadhubhq/leadhub-backend/api/validators"
	"github.com/leadhubhq/leadhub-backend/internal/leads"
	pkgerrors "github.com/leadhubhq/leadhub-backend/pkg/errors"
	"github.com/leadhubhq/leadhub-backend/pkg/logger"
	"github.com/leadhubhq/leadhub-backend/pkg/types"
)

// LeadsList serves the paginated, filtered lead listing.
func LeadsList(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.List(r.Context(), ownerID, r.URL.Query())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WritePage(w, types.PageEnvelope{
			Data:       page.Leads,
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		})
	}
}

// LeadsCreate persists a new lead owned by the caller.
func LeadsCreate(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body leads.CreateLeadRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lead, err := svc.Create(r.Context(), ownerID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, lead)
	}
}

// LeadsGet fetches one owned lead.
func LeadsGet(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, leadID, err := leadRequestIDs(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lead, err := svc.Get(r.Context(), ownerID, leadID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, lead)
	}
}

// LeadsUpdate applies a partial update to one owned lead.
func LeadsUpdate(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, leadID, err := leadRequestIDs(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body leads.UpdateLeadRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lead, err := svc.Update(r.Context(), ownerID, leadID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, lead)
	}
}

// LeadsDelete removes one owned lead and returns the deleted record.
func LeadsDelete(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, leadID, err := leadRequestIDs(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lead, err := svc.Delete(r.Context(), ownerID, leadID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, lead)
	}
}

func leadRequestIDs(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	ownerID, err := authedUserID(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "leadId"))
	if err != nil {
		// A malformed id can never exist, so report it the same way.
		return uuid.Nil, uuid.Nil, pkgerrors.New(pkgerrors.CodeNotFound, "lead not found")
	}
	return ownerID, leadID, nil
}
