package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/models"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// postRepository is the PostgreSQL-backed implementation of
// [PostRepository]. Like counts are derived from the post_likes table, never
// stored on the post row, so a toggle can not drift out of sync with the
// counter.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new post and returns it with server-assigned fields.
//
// Error handling:
//   - Author account missing (foreign_key_violation) → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped [ErrStoreUnavailable].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPost,
		post.UserID, post.Body, nullableString(post.ImageURL))

	var created models.Post
	var imageURL sql.NullString
	err := row.Scan(&created.PostID, &created.UserID, &created.Body,
		&imageURL, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Post{}, ErrNoUserWasFound
		case "":
			log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: scanning error")
			return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			log.Err(err).Str("func", "*postRepository.CreatePost").Msg("unexpected DB error")
			return models.Post{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	created.ImageURL = imageURL.String

	return created, nil
}

// FindPostByID retrieves the post with its derived like count.
func (r *postRepository) FindPostByID(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	var found models.Post
	var imageURL sql.NullString

	row := r.db.QueryRowContext(ctx, findPostByID, postID)
	err := row.Scan(&found.PostID, &found.UserID, &found.Body,
		&imageURL, &found.Likes, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrNoPostWasFound
		}
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("unexpected DB error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	found.ImageURL = imageURL.String

	return found, nil
}

// UpdatePost applies a partial edit to the caller's own post. The UPDATE is
// assembled dynamically so absent fields keep their stored values; the
// ownership check is part of the WHERE clause.
//
// Error handling:
//   - Post absent → [ErrNoPostWasFound].
//   - Post exists but belongs to another account → [ErrNotPostOwner].
func (r *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) error {
	log := logger.FromContext(ctx)

	builder := squirrel.Update("posts").
		PlaceholderFormat(squirrel.Dollar).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"post_id": update.PostID, "user_id": update.UserID})

	if update.Body != nil {
		builder = builder.Set("body", *update.Body)
	}
	if update.ImageURL != nil {
		builder = builder.Set("image_url", nullableString(*update.ImageURL))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building UPDATE query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return r.ownershipError(ctx, update.PostID)
	}

	return nil
}

// DeletePost removes the caller's own post. The ownership check is part of
// the WHERE clause; dependent likes are removed by ON DELETE CASCADE.
//
// Error handling mirrors [UpdatePost].
func (r *postRepository) DeletePost(ctx context.Context, postID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePost, postID, userID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return r.ownershipError(ctx, postID)
	}

	return nil
}

// ownershipError disambiguates a zero-row write on a post: the post either
// never existed or belongs to another account.
func (r *postRepository) ownershipError(ctx context.Context, postID int64) error {
	if _, err := r.FindPostByID(ctx, postID); err != nil {
		return err
	}
	return ErrNotPostOwner
}

// ToggleLike inserts or removes the (post, user) like edge and reports
// whether the post is liked after the call.
//
// Error handling:
//   - Post missing (no row, or foreign_key_violation on insert) →
//     [ErrNoPostWasFound].
func (r *postRepository) ToggleLike(ctx context.Context, postID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var liked bool
	if err := r.db.QueryRowContext(ctx, postLiked, postID, userID).Scan(&liked); err != nil {
		log.Err(err).Str("func", "*postRepository.ToggleLike").Msg("unexpected DB error")
		return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if liked {
		if _, err := r.db.ExecContext(ctx, unlikePost, postID, userID); err != nil {
			log.Err(err).Str("func", "*postRepository.ToggleLike").Msg("unexpected DB error")
			return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return false, nil
	}

	if _, err := r.db.ExecContext(ctx, likePost, postID, userID); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return false, ErrNoPostWasFound
		}
		log.Err(err).Str("func", "*postRepository.ToggleLike").Msg("unexpected DB error")
		return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return true, nil
}

// Timeline returns the posts of the account and of every account it follows,
// newest first.
func (r *postRepository) Timeline(ctx context.Context, userID int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, timelinePosts, userID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Timeline").Msg("unexpected DB error")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		var imageURL sql.NullString
		if err := rows.Scan(&p.PostID, &p.UserID, &p.Body, &imageURL,
			&p.Likes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*postRepository.Timeline").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		p.ImageURL = imageURL.String
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}
