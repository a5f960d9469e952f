package comment

import (
	"net/http"

	"circle-service/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	postID, err := httpx.PathUint64(r, "post_id")
	if err != nil {
		return err
	}
	in, err := httpx.Decode[CreateReq](r)
	if err != nil {
		return err
	}
	comments, err := h.svc.Add(r.Context(), uid, postID, in.Content)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"comments": comments}, http.StatusOK)
	return nil
}

func (h *Handler) ListByPost(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	postID, err := httpx.PathUint64(r, "post_id")
	if err != nil {
		return err
	}
	comments, err := h.svc.ListByPost(uid, postID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"comments": comments}, http.StatusOK)
	return nil
}
