package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-influo/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the public handle of an account.
	FieldUsername = "username"

	// FieldEmail targets the email address used as the authentication key.
	FieldEmail = "email"

	// FieldFullName targets the display name of an account.
	FieldFullName = "full_name"

	// FieldPassword targets the plaintext password of a request.
	FieldPassword = "password"

	// FieldOTPCode targets the one-time code of a reset-flow request.
	FieldOTPCode = "otp_code"
)

// passwordSpecials is the exhaustive set of special characters a password
// may (and must) contain.
const passwordSpecials = "!@#$%^&*"

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// otpPattern matches exactly six decimal digits, the shape every issued
// reset code has.
var otpPattern = regexp.MustCompile(`^\d{6}$`)

// CredentialsValidator implements the Validator interface for every
// authentication-related request body: SignUpRequest, LoginRequest,
// GoogleLoginRequest, ForgetPasswordRequest, OtpValidationRequest,
// ChangePasswordRequest, and CheckUserRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the request is validated.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	case models.GoogleLoginRequest:
		return v.validateGoogleLogin(value)
	case *models.GoogleLoginRequest:
		return v.validateGoogleLogin(*value)
	case models.ForgetPasswordRequest:
		return v.validateEmail(value.Email)
	case *models.ForgetPasswordRequest:
		return v.validateEmail(value.Email)
	case models.OtpValidationRequest:
		return v.validateOtpValidation(value)
	case *models.OtpValidationRequest:
		return v.validateOtpValidation(*value)
	case models.ChangePasswordRequest:
		return v.validateChangePassword(value)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value)
	case models.CheckUserRequest:
		return v.validateCheckUser(value)
	case *models.CheckUserRequest:
		return v.validateCheckUser(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateSignUp(req models.SignUpRequest, fields ...string) error {
	for _, field := range v.fieldsOrDefault(fields, FieldUsername, FieldEmail, FieldFullName, FieldPassword) {
		var err error
		switch field {
		case FieldUsername:
			err = v.validateUsername(req.Username)
		case FieldEmail:
			err = v.validateEmail(req.Email)
		case FieldFullName:
			err = v.validateFullName(req.FullName)
		case FieldPassword:
			err = v.validatePassword(req.Password)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *CredentialsValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	for _, field := range v.fieldsOrDefault(fields, FieldEmail, FieldPassword) {
		var err error
		switch field {
		case FieldEmail:
			err = v.validateEmail(req.Email)
		case FieldPassword:
			// login only requires presence; the stored digest decides
			if req.Password == "" {
				err = ErrEmptyPassword
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *CredentialsValidator) validateGoogleLogin(req models.GoogleLoginRequest) error {
	if err := v.validateEmail(req.Email); err != nil {
		return err
	}
	if req.GoogleID == "" {
		return ErrEmptyGoogleToken
	}
	return nil
}

func (v *CredentialsValidator) validateOtpValidation(req models.OtpValidationRequest) error {
	if err := v.validateEmail(req.Email); err != nil {
		return err
	}
	if req.OTP == "" {
		return ErrEmptyOTPCode
	}
	if !otpPattern.MatchString(req.OTP) {
		return ErrInvalidOTPCode
	}
	return nil
}

func (v *CredentialsValidator) validateChangePassword(req models.ChangePasswordRequest) error {
	if err := v.validateEmail(req.Email); err != nil {
		return err
	}
	return v.validatePassword(req.NewPassword)
}

func (v *CredentialsValidator) validateCheckUser(req models.CheckUserRequest) error {
	// either identifier may be checked alone
	if req.Email == "" && req.Username == "" {
		return ErrEmptyEmail
	}
	if req.Email != "" {
		return v.validateEmail(req.Email)
	}
	return nil
}

func (v *CredentialsValidator) validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	return nil
}

func (v *CredentialsValidator) validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func (v *CredentialsValidator) validateFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return ErrEmptyFullName
	}
	return nil
}

// validatePassword enforces the account password policy: at least
// minPasswordLength characters, at least one lowercase letter, one uppercase
// letter, one digit and one character from passwordSpecials, and no
// characters outside those classes.
func (v *CredentialsValidator) validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, c):
			hasSpecial = true
		default:
			return ErrWeakPassword
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return ErrWeakPassword
	}
	return nil
}

func (v *CredentialsValidator) fieldsOrDefault(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
