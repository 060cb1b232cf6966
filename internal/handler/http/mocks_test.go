package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/service"
	"github.com/MKhiriev/go-influo/internal/validators"
	"github.com/MKhiriev/go-influo/models"
	"github.com/stretchr/testify/require"
)

// Hand-rolled function-field mocks for the service interfaces. Each method
// field can be overridden per test case; unexpected calls panic on the nil
// field, which is the point.

type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.SignUpRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	googleLoginFn func(ctx context.Context, identity models.GoogleLoginRequest) (models.User, error)
	checkUserFn   func(ctx context.Context, req models.CheckUserRequest) (bool, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) GoogleLogin(ctx context.Context, identity models.GoogleLoginRequest) (models.User, error) {
	return m.googleLoginFn(ctx, identity)
}

func (m *mockAuthService) CheckUser(ctx context.Context, req models.CheckUserRequest) (bool, error) {
	return m.checkUserFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockResetService struct {
	requestOTPFn     func(ctx context.Context, email string) error
	validateOTPFn    func(ctx context.Context, email, code string) error
	changePasswordFn func(ctx context.Context, email, newPassword string) error
}

func (m *mockResetService) RequestOTP(ctx context.Context, email string) error {
	return m.requestOTPFn(ctx, email)
}

func (m *mockResetService) ValidateOTP(ctx context.Context, email, code string) error {
	return m.validateOTPFn(ctx, email, code)
}

func (m *mockResetService) ChangePassword(ctx context.Context, email, newPassword string) error {
	return m.changePasswordFn(ctx, email, newPassword)
}

type mockProfileService struct {
	getProfileFn     func(ctx context.Context, userID int64) (models.Profile, error)
	getAllProfilesFn func(ctx context.Context) ([]models.Profile, error)
	updateProfileFn  func(ctx context.Context, update models.ProfileUpdate) error
	followFn         func(ctx context.Context, followerID, followingID int64) error
	unfollowFn       func(ctx context.Context, followerID, followingID int64) error
	followersFn      func(ctx context.Context, userID int64) ([]models.FollowerInfo, error)
	followingFn      func(ctx context.Context, userID int64) ([]models.FollowerInfo, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockProfileService) GetAllProfiles(ctx context.Context) ([]models.Profile, error) {
	return m.getAllProfilesFn(ctx)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	return m.updateProfileFn(ctx, update)
}

func (m *mockProfileService) Follow(ctx context.Context, followerID, followingID int64) error {
	return m.followFn(ctx, followerID, followingID)
}

func (m *mockProfileService) Unfollow(ctx context.Context, followerID, followingID int64) error {
	return m.unfollowFn(ctx, followerID, followingID)
}

func (m *mockProfileService) Followers(ctx context.Context, userID int64) ([]models.FollowerInfo, error) {
	return m.followersFn(ctx, userID)
}

func (m *mockProfileService) Following(ctx context.Context, userID int64) ([]models.FollowerInfo, error) {
	return m.followingFn(ctx, userID)
}

type mockPostService struct {
	createPostFn func(ctx context.Context, post models.Post) (models.Post, error)
	getPostFn    func(ctx context.Context, postID int64) (models.Post, error)
	updatePostFn func(ctx context.Context, update models.PostUpdate) error
	deletePostFn func(ctx context.Context, postID, userID int64) error
	toggleLikeFn func(ctx context.Context, postID, userID int64) (bool, error)
	timelineFn   func(ctx context.Context, userID int64) ([]models.Post, error)
}

func (m *mockPostService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	return m.createPostFn(ctx, post)
}

func (m *mockPostService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	return m.getPostFn(ctx, postID)
}

func (m *mockPostService) UpdatePost(ctx context.Context, update models.PostUpdate) error {
	return m.updatePostFn(ctx, update)
}

func (m *mockPostService) DeletePost(ctx context.Context, postID, userID int64) error {
	return m.deletePostFn(ctx, postID, userID)
}

func (m *mockPostService) ToggleLike(ctx context.Context, postID, userID int64) (bool, error) {
	return m.toggleLikeFn(ctx, postID, userID)
}

func (m *mockPostService) Timeline(ctx context.Context, userID int64) ([]models.Post, error) {
	return m.timelineFn(ctx, userID)
}

type mockOAuthProvider struct {
	authCodeURLFn   func(state string) string
	fetchIdentityFn func(ctx context.Context, code string) (models.GoogleLoginRequest, error)
}

func (m *mockOAuthProvider) AuthCodeURL(state string) string {
	return m.authCodeURLFn(state)
}

func (m *mockOAuthProvider) FetchIdentity(ctx context.Context, code string) (models.GoogleLoginRequest, error) {
	return m.fetchIdentityFn(ctx, code)
}

// newTestHandler builds a Handler over the given mocks with the real
// credentials validator and a silent logger. Nil mocks are fine as long as
// the test never routes into them.
func newTestHandler(t *testing.T, svcs *service.Services, google *mockOAuthProvider) *Handler {
	t.Helper()
	if google == nil {
		google = &mockOAuthProvider{}
	}
	return NewHandler(svcs, validators.NewCredentialsValidator(), google, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeEnvelope parses the recorded response body into the API envelope.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var envelope models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validSignUp is a convenience fixture used across multiple tests.
var validSignUp = models.SignUpRequest{
	Username: "alice",
	Email:    "alice@example.com",
	Password: "Str0ng!pass",
	FullName: "Alice Smith",
}
