package notary

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/fabric-notary-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/fabric-notary-gateway/pkg/app/http"
	"github.com/chainsafe/fabric-notary-gateway/pkg/auth"
)

type handler struct {
	svc    Service
	logger *zap.Logger
}

// RegisterRoutes mounts the participant and notary log endpoints on r. Every route acts as
// the wallet identity resolved by auth.Middleware; a nil validator selects the X-User-ID header.
func RegisterRoutes(r chi.Router, svc Service, validator *auth.JWTValidator, logger *zap.Logger) {
	h := &handler{svc: svc, logger: logger}

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(validator, logger))

		r.Post("/participants", apphttp.HandleError(h.createParticipant))
		r.Get("/participants/{id}", apphttp.HandleError(h.getParticipant))
		r.Post("/notary-logs", apphttp.HandleError(h.addNotaryLog))
		r.Get("/notary-logs/{id}", apphttp.HandleError(h.getNotaryLog))
		r.Get("/notary-logs", apphttp.HandleError(h.getAllNotaryLogs))
	})
}

func userID(r *http.Request) (string, error) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		return "", apperrors.UnAuthorizedError(nil, "no identity for request")
	}
	return id, nil
}

func (h *handler) createParticipant(w http.ResponseWriter, r *http.Request) error {
	uid, err := userID(r)
	if err != nil {
		return err
	}
	var req CreateParticipantRequest
	if err := apphttp.DecodeJSON(w, r, &req); err != nil {
		return err
	}

	res, err := h.svc.CreateParticipant(r.Context(), uid, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, res)
	return nil
}

func (h *handler) getParticipant(w http.ResponseWriter, r *http.Request) error {
	uid, err := userID(r)
	if err != nil {
		return err
	}

	res, err := h.svc.GetParticipant(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *handler) addNotaryLog(w http.ResponseWriter, r *http.Request) error {
	uid, err := userID(r)
	if err != nil {
		return err
	}
	var req AddNotaryLogRequest
	if err := apphttp.DecodeJSON(w, r, &req); err != nil {
		return err
	}

	res, err := h.svc.AddNotaryLog(r.Context(), uid, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, res)
	return nil
}

func (h *handler) getNotaryLog(w http.ResponseWriter, r *http.Request) error {
	uid, err := userID(r)
	if err != nil {
		return err
	}

	res, err := h.svc.GetNotaryLog(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *handler) getAllNotaryLogs(w http.ResponseWriter, r *http.Request) error {
	uid, err := userID(r)
	if err != nil {
		return err
	}

	res, err := h.svc.GetAllNotaryLogs(r.Context(), uid)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}
