package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/store"
	"github.com/MKhiriev/go-influo/models"
)

// postService is the concrete implementation of PostService.
type postService struct {
	postRepository store.PostRepository

	logger *logger.Logger
}

// NewPostService constructs a PostService over the post repository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// CreatePost persists a new post for the authenticated account.
func (s *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.UserID == 0 || strings.TrimSpace(post.Body) == "" {
		return models.Post{}, ErrInvalidDataProvided
	}

	created, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Int64("user", post.UserID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return created, nil
}

// GetPost returns the post with its derived like count.
func (s *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := s.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		log.Err(err).Int64("post", postID).Msg("post lookup failed")
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	return post, nil
}

// UpdatePost applies a partial edit to the caller's own post.
// Ownership is enforced by the repository; editing someone else's post
// fails with store.ErrNotPostOwner.
func (s *postService) UpdatePost(ctx context.Context, update models.PostUpdate) error {
	log := logger.FromContext(ctx)

	if update.PostID == 0 || update.UserID == 0 || update.IsEmpty() {
		return ErrInvalidDataProvided
	}

	if err := s.postRepository.UpdatePost(ctx, update); err != nil {
		log.Err(err).Int64("post", update.PostID).Int64("user", update.UserID).Msg("post update failed")
		return fmt.Errorf("post update failed: %w", err)
	}

	return nil
}

// DeletePost removes the caller's own post and its likes.
func (s *postService) DeletePost(ctx context.Context, postID, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.postRepository.DeletePost(ctx, postID, userID); err != nil {
		log.Err(err).Int64("post", postID).Int64("user", userID).Msg("post deletion failed")
		return fmt.Errorf("post deletion failed: %w", err)
	}

	return nil
}

// ToggleLike flips the user's like on the post and reports the state after
// the call.
func (s *postService) ToggleLike(ctx context.Context, postID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	liked, err := s.postRepository.ToggleLike(ctx, postID, userID)
	if err != nil {
		log.Err(err).Int64("post", postID).Int64("user", userID).Msg("like toggle failed")
		return false, fmt.Errorf("like toggle failed: %w", err)
	}

	return liked, nil
}

// Timeline returns the posts of the account and of every account it
// follows, newest first.
func (s *postService) Timeline(ctx context.Context, userID int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	posts, err := s.postRepository.Timeline(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user", userID).Msg("timeline listing failed")
		return nil, fmt.Errorf("timeline listing failed: %w", err)
	}

	return posts, nil
}
