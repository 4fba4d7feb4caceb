package service

import (
	"testing"
	"time"

	"booster/internal/api/models"
	"booster/internal/config"
	"booster/internal/middleware/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByDocument(document string) (*models.User, error) {
	args := m.Called(document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired() error {
	args := m.Called()
	return args.Error(0)
}

func newTestAuthService(userRepo *MockUserRepository, tokenRepo *MockRefreshTokenRepository) AuthService {
	cfg := &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 168 * time.Hour,
	}
	return NewAuthService(userRepo, tokenRepo, cfg)
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	userRepo.On("FindByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByDocument", "12345678901").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.MatchedBy(func(user *models.User) bool {
		return user.Email == "alice@example.com" &&
			user.Role == models.RoleClient &&
			user.ClientType == models.ClientTypePF &&
			user.Password != "password123" // must be hashed
	})).Return(nil)

	user, err := svc.Register("Alice", "alice@example.com", "12345678901", "", "", "password123")

	assert.NoError(t, err)
	assert.Equal(t, models.RoleClient, user.Role)
	assert.NoError(t, auth.VerifyPassword(user.Password, "password123"))
	userRepo.AssertExpectations(t)
}

func TestRegister_EmailInUse(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	userRepo.On("FindByEmail", "alice@example.com").
		Return(&models.User{Email: "alice@example.com"}, nil)

	_, err := svc.Register("Alice", "alice@example.com", "12345678901", "", "", "password123")

	assert.ErrorIs(t, err, ErrEmailInUse)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_DocumentInUse(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	userRepo.On("FindByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByDocument", "12345678901").
		Return(&models.User{Document: "12345678901"}, nil)

	_, err := svc.Register("Alice", "alice@example.com", "12345678901", "", "", "password123")

	assert.ErrorIs(t, err, ErrDocumentInUse)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	hashed, _ := auth.HashPassword("password123")
	user := &models.User{
		ID:       "user-1",
		Email:    "alice@example.com",
		Password: hashed,
		Role:     models.RoleClient,
	}

	userRepo.On("FindByEmail", "alice@example.com").Return(user, nil)
	tokenRepo.On("Create", mock.Anything).Return(nil)

	accessToken, refreshToken, loggedIn, err := svc.Login("alice@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, "user-1", loggedIn.ID)

	// The access token must round-trip through validation
	claims, err := svc.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleClient, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	hashed, _ := auth.HashPassword("password123")
	userRepo.On("FindByEmail", "alice@example.com").
		Return(&models.User{ID: "user-1", Password: hashed}, nil)

	_, _, _, err := svc.Login("alice@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokenRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	userRepo.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, err := svc.Login("ghost@example.com", "password123")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshAccessToken_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	tokenRepo.On("FindByToken", "refresh-1").Return(&models.RefreshToken{
		ID:        "rt-1",
		UserID:    "user-1",
		Token:     "refresh-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	userRepo.On("FindByID", "user-1").
		Return(&models.User{ID: "user-1", Email: "alice@example.com", Role: models.RoleClient}, nil)

	accessToken, err := svc.RefreshAccessToken("refresh-1")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
}

func TestRefreshAccessToken_Expired(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	tokenRepo.On("FindByToken", "refresh-1").Return(&models.RefreshToken{
		ID:        "rt-1",
		UserID:    "user-1",
		Token:     "refresh-1",
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)
	tokenRepo.On("Delete", "rt-1").Return(nil)

	_, err := svc.RefreshAccessToken("refresh-1")

	assert.ErrorIs(t, err, ErrInvalidToken)
	tokenRepo.AssertCalled(t, "Delete", "rt-1")
}

func TestValidateToken_Garbage(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := newTestAuthService(userRepo, tokenRepo)

	_, err := svc.ValidateToken("not-a-jwt")

	assert.Error(t, err)
}
