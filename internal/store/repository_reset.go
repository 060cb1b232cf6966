// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/models"
)

// resetRepository is the PostgreSQL-backed implementation of
// [ResetRepository]. The password_resets table keys tickets by email; the
// upsert query guarantees at most one live ticket per address.
type resetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResetRepository constructs a [ResetRepository] backed by the provided
// database connection and logger.
func NewResetRepository(db *DB, logger *logger.Logger) ResetRepository {
	logger.Debug().Msg("creating reset repository")
	return &resetRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert creates a fresh ticket or replaces the previous one for the same
// email. Replacing resets the attempt counter and the validated flag, so a
// re-requested code always starts the flow over.
func (r *resetRepository) Upsert(ctx context.Context, reset models.PasswordReset) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertReset, reset.Email, reset.Code, reset.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "*resetRepository.Upsert").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// Find retrieves the ticket for the email.
//
// Error handling:
//   - No ticket → [ErrNoResetWasFound].
//   - Any other driver-level error → wrapped [ErrStoreUnavailable].
func (r *resetRepository) Find(ctx context.Context, email string) (models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	var found models.PasswordReset
	row := r.db.QueryRowContext(ctx, findReset, email)
	err := row.Scan(&found.Email, &found.Code, &found.ExpiresAt,
		&found.Attempts, &found.Validated, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PasswordReset{}, ErrNoResetWasFound
		}
		log.Err(err).Str("func", "*resetRepository.Find").Msg("unexpected DB error")
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return found, nil
}

// RegisterFailedAttempt increments the ticket's attempt counter and returns
// the value after the increment. The UPDATE and the read happen in one
// statement so concurrent wrong submissions each observe a distinct count.
func (r *resetRepository) RegisterFailedAttempt(ctx context.Context, email string) (int, error) {
	log := logger.FromContext(ctx)

	var attempts int
	err := r.db.QueryRowContext(ctx, registerFailedResetAttempt, email).Scan(&attempts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNoResetWasFound
		}
		log.Err(err).Str("func", "*resetRepository.RegisterFailedAttempt").Msg("unexpected DB error")
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return attempts, nil
}

// MarkValidated flips the ticket's validated flag after a correct code
// submission.
func (r *resetRepository) MarkValidated(ctx context.Context, email string) error {
	return r.execByEmail(ctx, markResetValidated, email, "*resetRepository.MarkValidated")
}

// Delete consumes the ticket. Deleting an absent ticket reports
// [ErrNoResetWasFound] so callers can distinguish replayed completions.
func (r *resetRepository) Delete(ctx context.Context, email string) error {
	return r.execByEmail(ctx, deleteReset, email, "*resetRepository.Delete")
}

func (r *resetRepository) execByEmail(ctx context.Context, query, email, funcName string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoResetWasFound
	}

	return nil
}

// PurgeExpired deletes every ticket whose code expired before the cutoff and
// returns the number of removed rows. Invoked periodically by the reset
// purge worker.
func (r *resetRepository) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, purgeExpiredResets, cutoff)
	if err != nil {
		log.Err(err).Str("func", "*resetRepository.PurgeExpired").Msg("unexpected DB error")
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return purged, nil
}
