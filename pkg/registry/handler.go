package registry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/canton-identity/pkg/app/errors"
	apphttp "github.com/chainsafe/canton-identity/pkg/app/http"
	"github.com/chainsafe/canton-identity/pkg/participant"
)

const maxBodySize = 1 << 20

// Service is the registry surface served over HTTP. *Manager implements it.
type Service interface {
	GetParticipant(ctx context.Context, fqi string) (*participant.Participant, error)
	AddParticipant(ctx context.Context, p *participant.Participant) error
}

// Handler serves the participant registry endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// ParticipantResponse is the JSON body returned for a registered participant.
type ParticipantResponse struct {
	*participant.Participant
	FQI string `json:"fqi"`
}

// RegisterRoutes registers the participant registry endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &Handler{
		service: service,
		logger:  logger,
	}

	r.Route("/participants", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.addParticipant))
		r.Get("/{fqi}", apphttp.HandleError(h.getParticipant))
	})
}

func (h *Handler) getParticipant(w http.ResponseWriter, r *http.Request) error {
	fqi, err := pathParam(r, "fqi")
	if err != nil {
		return apperrors.BadRequestError(err, "invalid participant identifier")
	}

	p, err := h.service.GetParticipant(r.Context(), fqi)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &ParticipantResponse{Participant: p, FQI: p.FullyQualifiedIdentifier()})
	return nil
}

func (h *Handler) addParticipant(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var p participant.Participant
	if err := json.Unmarshal(body, &p); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if p.Type == "" || p.ID == "" {
		return apperrors.BadRequestError(nil, "type and id required")
	}

	if err := h.service.AddParticipant(r.Context(), &p); err != nil {
		return err
	}

	h.logger.Info("participant registered", zap.String("participant", p.FullyQualifiedIdentifier()))
	apphttp.WriteJSON(w, http.StatusCreated, &ParticipantResponse{Participant: &p, FQI: p.FullyQualifiedIdentifier()})
	return nil
}

// pathParam returns the decoded URL parameter. chi matches on RawPath when it
// is set, in which case the parameter is still percent-encoded.
func pathParam(r *http.Request, key string) (string, error) {
	param := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return param, nil
	}
	return url.PathUnescape(param)
}
