package models

// SignUpRequest is the body of POST /signUp.
// All four fields are required; validation happens before any store access.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest is the body of POST /googlelogin. The fields are the
// provider-verified identity attributes forwarded by the client after a
// successful Google sign-in.
type GoogleLoginRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	GoogleID string `json:"googleId"`
}

// ForgetPasswordRequest is the body of POST /forgetpassword and starts the
// reset flow.
type ForgetPasswordRequest struct {
	Email string `json:"email"`
}

// OtpValidationRequest is the body of POST /otpvalidation. Email must match
// the one the code was issued for.
type OtpValidationRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ChangePasswordRequest is the body of POST /changepassword, the final reset
// step. Accepted only after the ticket for Email has been validated.
type ChangePasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// CheckUserRequest is the body of POST /checkUser.
type CheckUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Response is the uniform JSON envelope returned by every API endpoint.
type Response struct {
	// Success reports whether the operation completed.
	Success bool `json:"success"`

	// Data carries the operation result on success. Omitted otherwise.
	Data any `json:"data,omitempty"`

	// Error carries a short human-readable message on failure.
	// It never contains credential material.
	Error string `json:"error,omitempty"`
}

// CheckUserResponse is the body returned by POST /checkUser.
type CheckUserResponse struct {
	Exists bool `json:"exists"`
}
