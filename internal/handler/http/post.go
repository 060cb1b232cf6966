package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/utils"
	"github.com/MKhiriev/go-influo/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	post.UserID = userID

	created, err := h.services.PostService.CreatePost(ctx, post)
	if err != nil {
		h.respondError(w, r, err, "post creation failed")
		return
	}

	utils.WriteSuccess(w, created, http.StatusCreated)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r)
	if !ok {
		utils.WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), postID)
	if err != nil {
		h.respondError(w, r, err, "post lookup failed")
		return
	}

	utils.WriteSuccess(w, post, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	postID, ok := pathID(r)
	if !ok {
		utils.WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var update models.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.PostID = postID
	update.UserID = userID

	if err := h.services.PostService.UpdatePost(ctx, update); err != nil {
		h.respondError(w, r, err, "post update failed")
		return
	}

	utils.WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	postID, ok := pathID(r)
	if !ok {
		utils.WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.services.PostService.DeletePost(ctx, postID, userID); err != nil {
		h.respondError(w, r, err, "post deletion failed")
		return
	}

	utils.WriteSuccess(w, nil, http.StatusOK)
}

// toggleLike flips the caller's like on a post and reports the state after
// the flip.
func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	postID, ok := pathID(r)
	if !ok {
		utils.WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	liked, err := h.services.PostService.ToggleLike(ctx, postID, userID)
	if err != nil {
		h.respondError(w, r, err, "like toggle failed")
		return
	}

	utils.WriteSuccess(w, map[string]bool{"liked": liked}, http.StatusOK)
}

func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r)
	if !ok {
		utils.WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	posts, err := h.services.PostService.Timeline(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err, "timeline build failed")
		return
	}

	utils.WriteSuccess(w, posts, http.StatusOK)
}
