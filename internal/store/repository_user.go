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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, credential lookup, and profile projections
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAccountAlreadyExists].
//     The unique constraints on email and username are the authoritative
//     duplicate guard; any pre-check by the caller is advisory only.
//   - Any other driver-level error → wrapped [ErrStoreUnavailable].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.Email, user.FullName,
		nullableString(user.PasswordHash), nullableString(user.GoogleID))

	var created models.User
	var passwordHash, googleID sql.NullString
	err := row.Scan(&created.UserID, &created.Username, &created.Email,
		&created.FullName, &passwordHash, &googleID, &created.CreatedAt)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("duplicate account insert rejected")
			return models.User{}, ErrAccountAlreadyExists
		case "":
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("unexpected DB error")
			return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	created.PasswordHash = passwordHash.String
	created.GoogleID = googleID.String

	return created, nil
}

// FindUserByEmail retrieves the account record whose email matches.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped [ErrStoreUnavailable].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the account record with the given identifier.
//
// Error handling mirrors [FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	var passwordHash, googleID sql.NullString

	row := r.db.QueryRowContext(ctx, query, arg)
	err := row.Scan(&found.UserID, &found.Username, &found.Email,
		&found.FullName, &passwordHash, &googleID, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	found.PasswordHash = passwordHash.String
	found.GoogleID = googleID.String

	return found, nil
}

// Exists reports whether any account matches the email or the username.
func (r *userRepository) Exists(ctx context.Context, email, username string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, userExists, email, username).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.Exists").Msg("unexpected DB error")
		return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return exists, nil
}

// FindProfileByID returns the public projection of the account, with the
// follower count derived from the follows table.
func (r *userRepository) FindProfileByID(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var p models.Profile
	var platform, niche, bio sql.NullString
	var engagementRate sql.NullFloat64

	row := r.db.QueryRowContext(ctx, findProfileByID, userID)
	err := row.Scan(&p.InfluencerID, &p.Username, &p.Email, &p.FullName,
		&platform, &engagementRate, &niche, &bio, &p.FollowerCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindProfileByID").Msg("unexpected DB error")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	p.SocialMediaPlatform = platform.String
	p.EngagementRate = engagementRate.Float64
	p.Niche = niche.String
	p.Bio = bio.String

	return p, nil
}

// GetAllProfiles returns the public projections of every account.
func (r *userRepository) GetAllProfiles(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllProfiles)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllProfiles").Msg("unexpected DB error")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0)
	for rows.Next() {
		var p models.Profile
		var platform, niche, bio sql.NullString
		var engagementRate sql.NullFloat64

		if err := rows.Scan(&p.InfluencerID, &p.Username, &p.Email, &p.FullName,
			&platform, &engagementRate, &niche, &bio, &p.FollowerCount); err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllProfiles").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		p.SocialMediaPlatform = platform.String
		p.EngagementRate = engagementRate.Float64
		p.Niche = niche.String
		p.Bio = bio.String

		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return profiles, nil
}

// UpdatePassword overwrites the password digest of the account identified
// by email.
//
// Error handling:
//   - No matching account → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped [ErrStoreUnavailable].
func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPassword, email, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// LinkGoogleID records the Google subject identifier on an existing account.
func (r *userRepository) LinkGoogleID(ctx context.Context, userID int64, googleID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, linkGoogleID, userID, googleID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.LinkGoogleID").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpdateProfile applies a partial profile update. The UPDATE statement is
// assembled dynamically so only the fields present in the request are
// written; absent fields keep their stored values.
//
// Error handling:
//   - unique_violation on the username column → [ErrAccountAlreadyExists].
//   - No matching account → [ErrNoUserWasFound].
func (r *userRepository) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	builder := squirrel.Update("users").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"user_id": update.UserID})

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.FullName != nil {
		builder = builder.Set("full_name", *update.FullName)
	}
	if update.SocialMediaPlatform != nil {
		builder = builder.Set("social_media_platform", *update.SocialMediaPlatform)
	}
	if update.EngagementRate != nil {
		builder = builder.Set("engagement_rate", *update.EngagementRate)
	}
	if update.Niche != nil {
		builder = builder.Set("niche", *update.Niche)
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building UPDATE query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrAccountAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// nullableString converts an empty string to a NULL column value so that
// federated-only accounts carry no password digest at all.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
