package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-influo/internal/adapter"
	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/service"
	"github.com/MKhiriev/go-influo/internal/store"
	"github.com/MKhiriev/go-influo/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrOTPMismatch:             http.StatusUnauthorized,
	service.ErrOTPExpired:              http.StatusUnauthorized,
	service.ErrTooManyOTPAttempts:      http.StatusUnauthorized,
	service.ErrResetNotValidated:       http.StatusUnauthorized,
	service.ErrSelfFollow:              http.StatusBadRequest,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrAccountAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrNoResetWasFound:      http.StatusUnauthorized,
	store.ErrNoPostWasFound:       http.StatusNotFound,
	store.ErrNotPostOwner:         http.StatusForbidden,
	store.ErrAlreadyFollowing:     http.StatusConflict,
	store.ErrStoreUnavailable:     http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	adapter.ErrMailRejected:      http.StatusBadGateway,
	adapter.ErrMailerUnavailable: http.StatusBadGateway,

	ErrProviderAuthCancelled: http.StatusUnauthorized,
	ErrProviderAuthFailed:    http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage picks the short sentinel text for errors the API is willing
// to explain. Anything unmapped stays a generic 500 so that driver and SQL
// details never leak into responses.
func publicMessage(err error) string {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status == http.StatusInternalServerError {
				return http.StatusText(status)
			}
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// respondError logs the failure and writes the error envelope with the
// status mapped from the error chain.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	log.Err(err).Msg(msg)

	utils.WriteError(w, publicMessage(err), statusFromError(err))
}
