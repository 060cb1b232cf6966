package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/models"
	"github.com/jackc/pgerrcode"
)

// followRepository is the PostgreSQL-backed implementation of
// [FollowRepository]. The follows table's composite primary key
// (follower_id, following_id) is the authoritative guard against duplicate
// edges.
type followRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFollowRepository constructs a [FollowRepository] backed by the provided
// database connection and logger.
func NewFollowRepository(db *DB, logger *logger.Logger) FollowRepository {
	logger.Debug().Msg("creating follow repository")
	return &followRepository{
		db:     db,
		logger: logger,
	}
}

// Follow inserts the follow edge.
//
// Error handling:
//   - Duplicate edge (unique_violation) → [ErrAlreadyFollowing].
//   - Either account missing (foreign_key_violation) → [ErrNoUserWasFound].
func (r *followRepository) Follow(ctx context.Context, followerID, followingID int64) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, follow, followerID, followingID)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyFollowing
		case pgerrcode.ForeignKeyViolation:
			return ErrNoUserWasFound
		default:
			log.Err(err).Str("func", "*followRepository.Follow").Msg("unexpected DB error")
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	return nil
}

// Unfollow removes the follow edge. Removing an absent edge is not an
// error; unfollow is idempotent.
func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID int64) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, unfollow, followerID, followingID)
	if err != nil {
		log.Err(err).Str("func", "*followRepository.Unfollow").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// Followers returns the accounts following userID, ordered by username.
func (r *followRepository) Followers(ctx context.Context, userID int64) ([]models.FollowerInfo, error) {
	return r.queryEdges(ctx, getFollowers, userID, "*followRepository.Followers")
}

// Following returns the accounts userID follows, ordered by username.
func (r *followRepository) Following(ctx context.Context, userID int64) ([]models.FollowerInfo, error) {
	return r.queryEdges(ctx, getFollowing, userID, "*followRepository.Following")
}

func (r *followRepository) queryEdges(ctx context.Context, query string, userID int64, funcName string) ([]models.FollowerInfo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("unexpected DB error")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	accounts := make([]models.FollowerInfo, 0)
	for rows.Next() {
		var info models.FollowerInfo
		if err := rows.Scan(&info.UserID, &info.Username, &info.FullName); err != nil {
			log.Err(err).Str("func", funcName).Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}
