package api

import (
	"net/http"

	"shopswift-be/internal/user"
	"shopswift-be/internal/utils"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in user.LoginInput
	if err := decode(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.UserSvc.Login(r.Context(), namespace(r), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var in user.SignupInput
	if err := decode(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.UserSvc.Signup(r.Context(), namespace(r), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, u)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.UserSvc.Logout(r.Context(), namespace(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserSvc.Current(r.Context(), namespace(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) onboarding(w http.ResponseWriter, r *http.Request) {
	done, err := h.UserSvc.Onboarded(r.Context(), namespace(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"onboarded": done})
}

func (h *Handler) completeOnboarding(w http.ResponseWriter, r *http.Request) {
	if err := h.UserSvc.CompleteOnboarding(r.Context(), namespace(r)); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"onboarded": true})
}
