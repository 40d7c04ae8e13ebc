package service

import (
	"context"
	"testing"
	"time"

	"oguso-digital-be/internal/config"
	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(uow *fakeUow, mailer *fakeMailer) IAuthService {
	cfg := &config.Config{
		App: config.AppConfig{ClientURL: "http://localhost:5173"},
		Auth: config.AuthConfig{
			JwtSecret:       "test-secret",
			AccessTokenTTL:  60,
			RefreshTokenTTL: 720,
		},
	}
	return NewAuthService(&fakeFactory{uow: uow}, mailer, nil, cfg, noopLogger{})
}

func seedActiveUser(uow *fakeUow, email, password string) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	hashStr := string(hash)
	now := time.Now()
	user := &entity.User{
		Id:              uuid.New(),
		Email:           email,
		PasswordHash:    &hashStr,
		FullName:        "Test User",
		Role:            entity.UserRoleUser,
		Status:          entity.UserStatusActive,
		EmailVerified:   true,
		EmailVerifiedAt: &now,
		CreatedAt:       now,
	}
	uow.users.users = append(uow.users.users, user)
	return user
}

func TestRegisterCreatesPendingUserWithOTP(t *testing.T) {
	uow := newFakeUow()
	svc := newAuthFixture(uow, &fakeMailer{})

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "password123",
		FullName: "New User",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", res.Email)

	require.Len(t, uow.users.users, 1)
	user := uow.users.users[0]
	assert.Equal(t, entity.UserStatusPending, user.Status)
	assert.False(t, user.EmailVerified)
	assert.NotNil(t, user.PasswordHash)

	require.Len(t, uow.users.otps, 1)
	assert.Len(t, uow.users.otps[0].Token, 6)
	assert.True(t, uow.committed)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	uow := newFakeUow()
	seedActiveUser(uow, "taken@example.com", "pw")
	svc := newAuthFixture(uow, &fakeMailer{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
		FullName: "Someone",
	})
	require.Error(t, err)
}

func TestVerifyEmailActivatesUser(t *testing.T) {
	uow := newFakeUow()
	svc := newAuthFixture(uow, &fakeMailer{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "pending@example.com",
		Password: "password123",
		FullName: "Pending",
	})
	require.NoError(t, err)
	otp := uow.users.otps[0].Token

	err = svc.VerifyEmail(context.Background(), &dto.VerifyEmailRequest{
		Email: "pending@example.com",
		Otp:   otp,
	})
	require.NoError(t, err)

	user := uow.users.users[0]
	assert.Equal(t, entity.UserStatusActive, user.Status)
	assert.True(t, user.EmailVerified)
	assert.Empty(t, uow.users.otps)
}

func TestVerifyEmailRejectsWrongOTP(t *testing.T) {
	uow := newFakeUow()
	svc := newAuthFixture(uow, &fakeMailer{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "pending@example.com",
		Password: "password123",
		FullName: "Pending",
	})
	require.NoError(t, err)

	err = svc.VerifyEmail(context.Background(), &dto.VerifyEmailRequest{
		Email: "pending@example.com",
		Otp:   "000000",
	})
	// The generated OTP colliding with 000000 is the one in a million
	// case this assertion tolerates.
	if uow.users.otps[0].Token != "000000" {
		require.Error(t, err)
	}
}

func TestLoginIssuesTokens(t *testing.T) {
	uow := newFakeUow()
	seedActiveUser(uow, "user@example.com", "password123")
	svc := newAuthFixture(uow, &fakeMailer{})

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	}, "127.0.0.1", "go-test")
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, "user@example.com", res.User.Email)
	require.Len(t, uow.users.refresh, 1)
	assert.Equal(t, "127.0.0.1", uow.users.refresh[0].IpAddress)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	uow := newFakeUow()
	seedActiveUser(uow, "user@example.com", "password123")
	svc := newAuthFixture(uow, &fakeMailer{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	}, "", "")
	require.Error(t, err)
}

func TestLoginRejectsUnverifiedUser(t *testing.T) {
	uow := newFakeUow()
	user := seedActiveUser(uow, "user@example.com", "password123")
	user.Status = entity.UserStatusPending
	user.EmailVerified = false
	svc := newAuthFixture(uow, &fakeMailer{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	}, "", "")
	require.Error(t, err)
}

func TestRefreshRotatesToken(t *testing.T) {
	uow := newFakeUow()
	seedActiveUser(uow, "user@example.com", "password123")
	svc := newAuthFixture(uow, &fakeMailer{})

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	}, "", "")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	}, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The original token was revoked and no longer refreshes.
	_, err = svc.Refresh(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	}, "", "")
	require.Error(t, err)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	uow := newFakeUow()
	seedActiveUser(uow, "user@example.com", "password123")
	svc := newAuthFixture(uow, &fakeMailer{})

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	}, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))
	assert.True(t, uow.users.refresh[0].Revoked)
}

func TestForgotPasswordDoesNotLeakUnknownEmails(t *testing.T) {
	uow := newFakeUow()
	svc := newAuthFixture(uow, &fakeMailer{})

	err := svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.Empty(t, uow.users.resets)
}

func TestResetPasswordConsumesToken(t *testing.T) {
	uow := newFakeUow()
	user := seedActiveUser(uow, "user@example.com", "oldpassword")
	svc := newAuthFixture(uow, &fakeMailer{})

	require.NoError(t, svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{Email: "user@example.com"}))
	require.Len(t, uow.users.resets, 1)
	token := uow.users.resets[0].Token

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:       token,
		NewPassword: "newpassword1",
	})
	require.NoError(t, err)
	assert.True(t, uow.users.resets[0].Used)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("newpassword1")))

	// Used tokens are rejected.
	err = svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:       token,
		NewPassword: "another",
	})
	require.Error(t, err)
}
