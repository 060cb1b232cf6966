package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/utils"
	"github.com/MKhiriev/go-influo/models"
)

// Password reset runs in three steps, each a separate endpoint:
// /forgetpassword mails a one-time code, /otpvalidation burns an attempt
// checking it, /changepassword writes the new digest. The state between
// steps lives in the reset ticket, not in the handler.

func (h *Handler) forgetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("forget password validation failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.RequestOTP(ctx, req.Email); err != nil {
		h.respondError(w, r, err, "otp request failed")
		return
	}

	utils.WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handler) otpValidation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.OtpValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("otp validation request failed validation")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.ValidateOTP(ctx, req.Email, req.OTP); err != nil {
		h.respondError(w, r, err, "otp validation failed")
		return
	}

	utils.WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("change password validation failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.ChangePassword(ctx, req.Email, req.NewPassword); err != nil {
		h.respondError(w, r, err, "password change failed")
		return
	}

	utils.WriteSuccess(w, nil, http.StatusOK)
}
