package feed

import (
	"net/http"

	"circle-service/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) GetCircleFeed(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	circleID, err := httpx.PathUint64(r, "circle_id")
	if err != nil {
		return err
	}
	posts, err := h.svc.GetFeed(r.Context(), uid, circleID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"posts": posts}, http.StatusOK)
	return nil
}
