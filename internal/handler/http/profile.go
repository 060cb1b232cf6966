package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/utils"
	"github.com/MKhiriev/go-influo/models"
	"github.com/go-chi/chi/v5"
)

// pathID parses the "{id}" URL parameter as a positive int64.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := pathID(r)
	if !ok {
		utils.WriteError(w, "invalid profile id", http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		h.respondError(w, r, err, "profile lookup failed")
		return
	}

	log.Debug().Int64("id", userID).Msg("profile found")
	utils.WriteSuccess(w, profile, http.StatusOK)
}

func (h *Handler) getAllProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.ProfileService.GetAllProfiles(r.Context())
	if err != nil {
		h.respondError(w, r, err, "profiles listing failed")
		return
	}

	utils.WriteSuccess(w, profiles, http.StatusOK)
}

// updateProfile writes a partial update to the authenticated account's own
// profile. The target account comes from the token, never from the body.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.UserID = userID

	if err := h.services.ProfileService.UpdateProfile(ctx, update); err != nil {
		h.respondError(w, r, err, "profile update failed")
		return
	}

	utils.WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	h.writeFollowEdge(w, r, true)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	h.writeFollowEdge(w, r, false)
}

func (h *Handler) writeFollowEdge(w http.ResponseWriter, r *http.Request, follow bool) {
	ctx := r.Context()

	followerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	followingID, ok := pathID(r)
	if !ok {
		utils.WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var err error
	if follow {
		err = h.services.ProfileService.Follow(ctx, followerID, followingID)
	} else {
		err = h.services.ProfileService.Unfollow(ctx, followerID, followingID)
	}
	if err != nil {
		h.respondError(w, r, err, "follow edge write failed")
		return
	}

	utils.WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handler) followers(w http.ResponseWriter, r *http.Request) {
	h.listFollowEdges(w, r, h.services.ProfileService.Followers)
}

func (h *Handler) following(w http.ResponseWriter, r *http.Request) {
	h.listFollowEdges(w, r, h.services.ProfileService.Following)
}

func (h *Handler) listFollowEdges(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, userID int64) ([]models.FollowerInfo, error)) {
	userID, ok := pathID(r)
	if !ok {
		utils.WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	edges, err := list(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err, "follow edge listing failed")
		return
	}

	utils.WriteSuccess(w, edges, http.StatusOK)
}
