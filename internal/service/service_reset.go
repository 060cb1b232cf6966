package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-influo/internal/adapter"
	"github.com/MKhiriev/go-influo/internal/config"
	"github.com/MKhiriev/go-influo/internal/crypto"
	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/store"
	"github.com/MKhiriev/go-influo/models"
)

// resetService is the concrete implementation of ResetService.
//
// The flow is a three-step state machine keyed by email:
//
//	RequestOTP      — issue a code, store the ticket, mail the code
//	ValidateOTP     — check the code, mark the ticket validated
//	ChangePassword  — overwrite the digest, consume the ticket
//
// Every step loads the ticket fresh from the store, so a replayed or
// out-of-order request fails on the ticket state rather than on any
// in-memory condition.
type resetService struct {
	userRepository  store.UserRepository
	resetRepository store.ResetRepository
	mailer          adapter.Mailer
	hasher          crypto.PasswordHasher
	otpGenerator    crypto.OTPGenerator

	// otpTTL is how long an issued code stays valid.
	otpTTL time.Duration

	// maxAttempts is the number of wrong submissions that invalidates the
	// ticket.
	maxAttempts int

	logger *logger.Logger
}

// NewResetService constructs a ResetService wired to the given repositories
// and the transactional mailer.
func NewResetService(userRepository store.UserRepository, resetRepository store.ResetRepository,
	mailer adapter.Mailer, hasher crypto.PasswordHasher, otpGenerator crypto.OTPGenerator,
	cfg config.OTP, logger *logger.Logger) ResetService {
	return &resetService{
		userRepository:  userRepository,
		resetRepository: resetRepository,
		mailer:          mailer,
		hasher:          hasher,
		otpGenerator:    otpGenerator,
		otpTTL:          cfg.TTL,
		maxAttempts:     cfg.MaxAttempts,
		logger:          logger,
	}
}

// RequestOTP starts (or restarts) the reset flow for the account.
//
// A fresh code replaces any previous ticket, resetting the attempt counter
// and the validated flag. The code travels only in the email; it is never
// returned to the caller or logged.
//
// Returns store.ErrNoUserWasFound if no account exists for the email.
func (s *resetService) RequestOTP(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	code, err := s.otpGenerator.Generate()
	if err != nil {
		log.Err(err).Msg("otp generation failed")
		return fmt.Errorf("otp generation failed: %w", err)
	}

	reset := models.PasswordReset{
		Email:     user.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpTTL),
	}
	if err := s.resetRepository.Upsert(ctx, reset); err != nil {
		log.Err(err).Str("email", email).Msg("storing reset ticket failed")
		return fmt.Errorf("storing reset ticket failed: %w", err)
	}

	if err := s.mailer.SendOTP(ctx, user.Email, code); err != nil {
		// the undeliverable ticket would only block a retried request
		if deleteErr := s.resetRepository.Delete(ctx, user.Email); deleteErr != nil {
			log.Err(deleteErr).Str("email", email).Msg("cleanup of undelivered ticket failed")
		}
		log.Err(err).Str("email", email).Msg("otp delivery failed")
		return fmt.Errorf("otp delivery failed: %w", err)
	}

	return nil
}

// ValidateOTP checks a submitted code against the stored ticket.
//
// Returns:
//   - store.ErrNoResetWasFound if no ticket exists for the email.
//   - ErrOTPExpired if the code's TTL has passed; the ticket is consumed.
//   - ErrTooManyOTPAttempts once the wrong-submission budget is spent; the
//     ticket is consumed.
//   - ErrOTPMismatch on a wrong code with attempts remaining.
func (s *resetService) ValidateOTP(ctx context.Context, email, code string) error {
	log := logger.FromContext(ctx)

	if email == "" || code == "" {
		return ErrInvalidDataProvided
	}

	reset, err := s.resetRepository.Find(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("reset ticket lookup failed")
		return fmt.Errorf("reset ticket lookup failed: %w", err)
	}

	if reset.Expired(time.Now()) {
		s.consumeTicket(ctx, email)
		return ErrOTPExpired
	}
	if reset.Attempts >= s.maxAttempts {
		s.consumeTicket(ctx, email)
		return ErrTooManyOTPAttempts
	}

	if reset.Code != code {
		attempts, err := s.resetRepository.RegisterFailedAttempt(ctx, email)
		if err != nil {
			log.Err(err).Str("email", email).Msg("registering failed attempt failed")
			return fmt.Errorf("registering failed attempt failed: %w", err)
		}
		if attempts >= s.maxAttempts {
			s.consumeTicket(ctx, email)
			return ErrTooManyOTPAttempts
		}
		return ErrOTPMismatch
	}

	if err := s.resetRepository.MarkValidated(ctx, email); err != nil {
		log.Err(err).Str("email", email).Msg("marking ticket validated failed")
		return fmt.Errorf("marking ticket validated failed: %w", err)
	}

	return nil
}

// ChangePassword finishes the flow: it requires a validated, unexpired
// ticket, overwrites the account's digest with the bcrypt hash of the new
// password, and consumes the ticket so the flow can not be replayed.
//
// Returns:
//   - store.ErrNoResetWasFound if no ticket exists (flow never started or
//     already finished).
//   - ErrResetNotValidated if the code was never validated.
//   - ErrOTPExpired if the ticket expired between validation and this call.
func (s *resetService) ChangePassword(ctx context.Context, email, newPassword string) error {
	log := logger.FromContext(ctx)

	if email == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	reset, err := s.resetRepository.Find(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("reset ticket lookup failed")
		return fmt.Errorf("reset ticket lookup failed: %w", err)
	}

	if !reset.Validated {
		return ErrResetNotValidated
	}
	if reset.Expired(time.Now()) {
		s.consumeTicket(ctx, email)
		return ErrOTPExpired
	}

	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, email, digest); err != nil {
		log.Err(err).Str("email", email).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	if err := s.resetRepository.Delete(ctx, email); err != nil {
		log.Err(err).Str("email", email).Msg("consuming reset ticket failed")
		return fmt.Errorf("consuming reset ticket failed: %w", err)
	}

	return nil
}

// consumeTicket removes a dead ticket. Failures are logged, not returned:
// the caller's error already describes the flow outcome, and an orphaned
// ticket is cleaned up by the purge worker.
func (s *resetService) consumeTicket(ctx context.Context, email string) {
	if err := s.resetRepository.Delete(ctx, email); err != nil && !errors.Is(err, store.ErrNoResetWasFound) {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("consuming reset ticket failed")
	}
}
