package post

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
	in, err := httpx.Decode[CreateReq](r)
	if err != nil {
		return err
	}
	p, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusCreated)
	return nil
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	postID, err := httpx.PathUint64(r, "post_id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(r.Context(), uid, postID); err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
	return nil
}
