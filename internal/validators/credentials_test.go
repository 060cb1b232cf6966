package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-influo/models"
)

func TestValidateSignUp(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	valid := models.SignUpRequest{
		Username: "john",
		Email:    "john@example.com",
		FullName: "John Doe",
		Password: "Secret1!",
	}

	tests := []struct {
		name    string
		mutate  func(r *models.SignUpRequest)
		wantErr error
	}{
		{name: "valid request", mutate: func(r *models.SignUpRequest) {}, wantErr: nil},
		{name: "empty username", mutate: func(r *models.SignUpRequest) { r.Username = "  " }, wantErr: ErrEmptyUsername},
		{name: "empty email", mutate: func(r *models.SignUpRequest) { r.Email = "" }, wantErr: ErrEmptyEmail},
		{name: "malformed email", mutate: func(r *models.SignUpRequest) { r.Email = "not-an-email" }, wantErr: ErrInvalidEmail},
		{name: "empty full name", mutate: func(r *models.SignUpRequest) { r.FullName = "" }, wantErr: ErrEmptyFullName},
		{name: "empty password", mutate: func(r *models.SignUpRequest) { r.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "short password", mutate: func(r *models.SignUpRequest) { r.Password = "Ab1!" }, wantErr: ErrWeakPassword},
		{name: "no uppercase", mutate: func(r *models.SignUpRequest) { r.Password = "secret1!" }, wantErr: ErrWeakPassword},
		{name: "no lowercase", mutate: func(r *models.SignUpRequest) { r.Password = "SECRET1!" }, wantErr: ErrWeakPassword},
		{name: "no digit", mutate: func(r *models.SignUpRequest) { r.Password = "Secrets!" }, wantErr: ErrWeakPassword},
		{name: "no special", mutate: func(r *models.SignUpRequest) { r.Password = "Secret12" }, wantErr: ErrWeakPassword},
		{name: "forbidden character", mutate: func(r *models.SignUpRequest) { r.Password = "Secret1! " }, wantErr: ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateSignUp_FieldScoping(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	// invalid password, but only the email field is validated
	req := models.SignUpRequest{Email: "john@example.com", Password: "weak"}
	if err := v.Validate(ctx, req, FieldEmail); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateLogin(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	if err := v.Validate(ctx, models.LoginRequest{Email: "john@example.com", Password: "anything"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// login must not enforce the signup password policy: accounts created
	// before a policy change still log in
	if err := v.Validate(ctx, models.LoginRequest{Email: "john@example.com", Password: "legacy"}); err != nil {
		t.Fatalf("unexpected error for legacy password: %v", err)
	}

	err := v.Validate(ctx, models.LoginRequest{Email: "john@example.com"})
	if !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestValidateGoogleLogin(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	if err := v.Validate(ctx, models.GoogleLoginRequest{Email: "john@example.com", GoogleID: "sub-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := v.Validate(ctx, models.GoogleLoginRequest{Email: "john@example.com"})
	if !errors.Is(err, ErrEmptyGoogleToken) {
		t.Fatalf("expected ErrEmptyGoogleToken, got %v", err)
	}
}

func TestValidateOtpValidation(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	if err := v.Validate(ctx, models.OtpValidationRequest{Email: "john@example.com", OTP: "482913"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := v.Validate(ctx, models.OtpValidationRequest{Email: "john@example.com", OTP: "48291"})
	if !errors.Is(err, ErrInvalidOTPCode) {
		t.Fatalf("expected ErrInvalidOTPCode, got %v", err)
	}

	err = v.Validate(ctx, models.OtpValidationRequest{Email: "john@example.com"})
	if !errors.Is(err, ErrEmptyOTPCode) {
		t.Fatalf("expected ErrEmptyOTPCode, got %v", err)
	}
}

func TestValidateChangePassword(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	if err := v.Validate(ctx, models.ChangePasswordRequest{Email: "john@example.com", NewPassword: "Secret1!"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := v.Validate(ctx, models.ChangePasswordRequest{Email: "john@example.com", NewPassword: "weak"})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestValidateCheckUser(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	if err := v.Validate(ctx, models.CheckUserRequest{Email: "john@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Validate(ctx, models.CheckUserRequest{Username: "john"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := v.Validate(ctx, models.CheckUserRequest{})
	if !errors.Is(err, ErrEmptyEmail) {
		t.Fatalf("expected ErrEmptyEmail, got %v", err)
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewCredentialsValidator()

	err := v.Validate(context.Background(), 42)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}
