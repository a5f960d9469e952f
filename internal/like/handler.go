package like

import (
	"net/http"

	"circle-service/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	postID, err := httpx.PathUint64(r, "post_id")
	if err != nil {
		return err
	}
	out, err := h.svc.Toggle(r.Context(), uid, postID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, out, http.StatusOK)
	return nil
}
