package circle

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
	c, err := h.svc.Create(uid, in.Name, in.Description)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, c, http.StatusCreated)
	return nil
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	circles, err := h.svc.ListMine(uid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"circles": circles}, http.StatusOK)
	return nil
}

func (h *Handler) Join(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	c, err := h.svc.Join(uid, r.PathValue("invite_code"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, c, http.StatusOK)
	return nil
}

func (h *Handler) Leave(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	circleID, err := httpx.PathUint64(r, "circle_id")
	if err != nil {
		return err
	}
	if err := h.svc.Leave(uid, circleID); err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]string{"status": "left"}, http.StatusOK)
	return nil
}
