package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/store"
	"github.com/MKhiriev/go-influo/models"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	userRepository   store.UserRepository
	followRepository store.FollowRepository

	logger *logger.Logger
}

// NewProfileService constructs a ProfileService over the user and follow
// repositories.
func NewProfileService(userRepository store.UserRepository, followRepository store.FollowRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository:   userRepository,
		followRepository: followRepository,
		logger:           logger,
	}
}

// GetProfile returns the public projection of the account, including the
// derived follower count.
func (s *profileService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := s.userRepository.FindProfileByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return profile, nil
}

// GetAllProfiles returns the public projections of every account.
func (s *profileService) GetAllProfiles(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	profiles, err := s.userRepository.GetAllProfiles(ctx)
	if err != nil {
		log.Err(err).Msg("profiles listing failed")
		return nil, fmt.Errorf("profiles listing failed: %w", err)
	}

	return profiles, nil
}

// UpdateProfile applies a partial update to the caller's own profile.
// The UserID of the update comes from the authenticated identity, never
// from the request body.
func (s *profileService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	if update.UserID == 0 || update.IsEmpty() {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.UpdateProfile(ctx, update); err != nil {
		log.Err(err).Int64("id", update.UserID).Msg("profile update failed")
		return fmt.Errorf("profile update failed: %w", err)
	}

	return nil
}

// Follow inserts a follow edge. An account can not follow itself.
func (s *profileService) Follow(ctx context.Context, followerID, followingID int64) error {
	log := logger.FromContext(ctx)

	if followerID == followingID {
		return ErrSelfFollow
	}

	if err := s.followRepository.Follow(ctx, followerID, followingID); err != nil {
		log.Err(err).Int64("follower", followerID).Int64("following", followingID).Msg("follow failed")
		return fmt.Errorf("follow failed: %w", err)
	}

	return nil
}

// Unfollow removes a follow edge. Removing an absent edge succeeds.
func (s *profileService) Unfollow(ctx context.Context, followerID, followingID int64) error {
	log := logger.FromContext(ctx)

	if followerID == followingID {
		return ErrSelfFollow
	}

	if err := s.followRepository.Unfollow(ctx, followerID, followingID); err != nil {
		log.Err(err).Int64("follower", followerID).Int64("following", followingID).Msg("unfollow failed")
		return fmt.Errorf("unfollow failed: %w", err)
	}

	return nil
}

// Followers returns the accounts following userID.
func (s *profileService) Followers(ctx context.Context, userID int64) ([]models.FollowerInfo, error) {
	log := logger.FromContext(ctx)

	followers, err := s.followRepository.Followers(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("followers listing failed")
		return nil, fmt.Errorf("followers listing failed: %w", err)
	}

	return followers, nil
}

// Following returns the accounts userID follows.
func (s *profileService) Following(ctx context.Context, userID int64) ([]models.FollowerInfo, error) {
	log := logger.FromContext(ctx)

	following, err := s.followRepository.Following(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("following listing failed")
		return nil, fmt.Errorf("following listing failed: %w", err)
	}

	return following, nil
}
