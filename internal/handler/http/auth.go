package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/utils"
	"github.com/MKhiriev/go-influo/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("sign-up validation failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.respondError(w, r, err, "user registration failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.respondError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteSuccess(w, []models.User{registeredUser}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("login validation failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.respondError(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.respondError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteSuccess(w, []models.User{foundUser}, http.StatusOK)
}

// googleLogin signs in a provider-verified identity forwarded by the client.
// The server-side variant of the same flow lives in oauth_google.go.
func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("google login validation failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.finishFederatedLogin(w, r, req)
}

// finishFederatedLogin runs the shared tail of both Google sign-in variants:
// look up or create the account, issue a token, answer with the profile.
func (h *Handler) finishFederatedLogin(w http.ResponseWriter, r *http.Request, identity models.GoogleLoginRequest) {
	ctx := r.Context()

	user, err := h.services.AuthService.GoogleLogin(ctx, identity)
	if err != nil {
		h.respondError(w, r, err, "google login failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.respondError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteSuccess(w, user, http.StatusOK)
}

func (h *Handler) checkUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CheckUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("check user validation failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	exists, err := h.services.AuthService.CheckUser(ctx, req)
	if err != nil {
		h.respondError(w, r, err, "user existence check failed")
		return
	}

	utils.WriteSuccess(w, models.CheckUserResponse{Exists: exists}, http.StatusOK)
}
