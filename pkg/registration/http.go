package registration

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/fabric-notary-gateway/pkg/app/http"
	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
)

type handler struct {
	svc    Service
	logger *zap.Logger
}

// RegisterRoutes mounts the registration endpoints on r.
func RegisterRoutes(r chi.Router, svc Service, logger *zap.Logger) {
	h := &handler{svc: svc, logger: logger}
	r.Post("/register", apphttp.HandleError(h.register))
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) error {
	var req identity.RegisterRequest
	if err := apphttp.DecodeJSON(w, r, &req); err != nil {
		return err
	}

	resp, err := h.svc.Register(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
