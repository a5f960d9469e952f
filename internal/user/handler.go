package user

import (
	"net/http"

	"circle-service/internal/shared/httpx"
	"circle-service/internal/shared/jwt"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) error {
	in, err := httpx.Decode[RegisterReq](r)
	if err != nil {
		return err
	}
	u, err := h.svc.Register(in.Email, in.Password, in.Name)
	if err != nil {
		return err
	}
	tok, err := jwt.Make(u.UserID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, AuthResponse{Token: tok, User: u}, http.StatusCreated)
	return nil
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) error {
	in, err := httpx.Decode[LoginReq](r)
	if err != nil {
		return err
	}
	u, err := h.svc.Login(in.Email, in.Password)
	if err != nil {
		return err
	}
	tok, err := jwt.Make(u.UserID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, AuthResponse{Token: tok, User: u}, http.StatusOK)
	return nil
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	u, err := h.svc.GetByUserID(uid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}
