package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/canton-identity/pkg/app/errors"
	apphttp "github.com/chainsafe/canton-identity/pkg/app/http"
	"github.com/chainsafe/canton-identity/pkg/identity"
	"github.com/chainsafe/canton-identity/pkg/participant"
)

const maxBodySize = 1 << 20

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the identity mapping endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/identities", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.addIdentityMapping))
		r.Get("/{userID}", apphttp.HandleError(h.getParticipant))
		r.Delete("/{userID}", apphttp.HandleError(h.removeIdentityMapping))
	})
}

func (h *HTTP) addIdentityMapping(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req identity.AddIdentityMappingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if req.Participant == "" || req.UserID == "" {
		return apperrors.BadRequestError(nil, "participant and user_id required")
	}

	if err := h.service.AddIdentityMapping(r.Context(), participant.FQI(req.Participant), req.UserID); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, &identity.IdentityMappingResponse{
		UserID:      req.UserID,
		Participant: req.Participant,
	})
	return nil
}

func (h *HTTP) getParticipant(w http.ResponseWriter, r *http.Request) error {
	p, err := h.service.GetParticipant(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (h *HTTP) removeIdentityMapping(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.RemoveIdentityMapping(r.Context(), chi.URLParam(r, "userID")); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
