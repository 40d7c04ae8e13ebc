package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"oguso-digital-be/internal/config"
	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/pkg/logger"
	"oguso-digital-be/internal/pkg/mailer"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/repository/specification"
	"oguso-digital-be/internal/repository/unitofwork"

	"oguso-digital-be/pkg/events"
	pkgNats "oguso-digital-be/pkg/nats"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshTokenRequest, ipAddress, userAgent string) (*dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pkgNats.Publisher
	cfg            *config.Config
	log            logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pkgNats.Publisher,
	cfg *config.Config,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		cfg:            cfg,
		log:            log,
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, serverutils.NewValidation("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, serverutils.NewDependency("failed to hash password", err)
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:            uuid.New(),
		Email:         req.Email,
		FullName:      req.FullName,
		PasswordHash:  &hashStr,
		Role:          entity.UserRoleUser,
		Status:        entity.UserStatusPending,
		EmailVerified: false,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	// User and OTP row are created in one transaction.
	if err := uow.Begin(ctx); err != nil {
		return nil, serverutils.NewDependency("failed to start transaction", err)
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, serverutils.NewDependency("failed to create user", err)
	}

	otpCode, err := generateOTP()
	if err != nil {
		return nil, serverutils.NewDependency("failed to generate otp", err)
	}

	verificationToken := &entity.EmailVerificationToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     otpCode,
		ExpiresAt: time.Now().Add(15 * time.Minute),
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().CreateEmailVerificationToken(ctx, verificationToken); err != nil {
		return nil, serverutils.NewDependency("failed to store verification token", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewDependency("failed to commit registration", err)
	}

	go func() {
		if emailErr := s.emailService.SendVerificationOTP(user.Email, otpCode); emailErr != nil {
			s.log.Error("AuthService", "Error sending registration email", map[string]interface{}{"error": emailErr.Error()})
		}
	}()

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewUserRegisteredEvent(user.Id.String(), user.Email)); err != nil {
			s.log.Warn("AuthService", "Failed to publish USER_REGISTERED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.RegisterResponse{UserId: user.Id.String(), Email: user.Email}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return serverutils.NewValidation("invalid otp code")
	}

	if user.Status == entity.UserStatusActive {
		return nil
	}

	tokenEntity, err := uow.UserRepository().FindEmailVerificationToken(ctx, user.Id, req.Otp)
	if err != nil || tokenEntity == nil {
		return serverutils.NewValidation("invalid otp code")
	}
	if time.Now().After(tokenEntity.ExpiresAt) {
		return serverutils.NewValidation("otp code expired")
	}

	if err := uow.Begin(ctx); err != nil {
		return serverutils.NewDependency("failed to start transaction", err)
	}
	defer uow.Rollback()

	now := time.Now()
	user.Status = entity.UserStatusActive
	user.EmailVerified = true
	user.EmailVerifiedAt = &now
	user.UpdatedAt = now
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return serverutils.NewDependency("failed to activate user", err)
	}

	_ = uow.UserRepository().DeleteEmailVerificationTokens(ctx, user.Id)

	if err := uow.Commit(); err != nil {
		return serverutils.NewDependency("failed to commit verification", err)
	}
	return nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return nil, serverutils.NewUnauthorized("invalid credentials")
	}

	if user.PasswordHash == nil {
		return nil, serverutils.NewUnauthorized("invalid credentials")
	}

	if user.Status == entity.UserStatusPending || !user.EmailVerified {
		return nil, serverutils.NewUnauthorized("email not verified. please check your inbox for the otp code")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorized("invalid credentials")
	}

	if user.Status == entity.UserStatusSuspended {
		return nil, serverutils.NewUnauthorized("user account is suspended")
	}

	accessToken, err := serverutils.GenerateAccessToken(
		user.Id, user.Role, s.cfg.Auth.JwtSecret,
		time.Duration(s.cfg.Auth.AccessTokenTTL)*time.Minute,
	)
	if err != nil {
		return nil, serverutils.NewDependency("failed to sign access token", err)
	}

	rawRefreshToken := uuid.New().String()
	refreshTokenEntity := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashToken(rawRefreshToken),
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.Auth.RefreshTokenTTL) * time.Hour),
		Revoked:   false,
		IpAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
		return nil, serverutils.NewDependency("failed to create session", err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: rawRefreshToken,
		User: dto.UserResponse{
			Id:        user.Id.String(),
			Email:     user.Email,
			FullName:  user.FullName,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshTokenRequest, ipAddress, userAgent string) (*dto.RefreshTokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stored, err := uow.UserRepository().FindRefreshTokenByHash(ctx, hashToken(req.RefreshToken))
	if err != nil || stored == nil {
		return nil, serverutils.NewUnauthorized("invalid refresh token")
	}
	if stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, serverutils.NewUnauthorized("refresh token expired or revoked")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: stored.UserId})
	if err != nil || user == nil {
		return nil, serverutils.NewUnauthorized("invalid refresh token")
	}
	if user.Status == entity.UserStatusSuspended {
		return nil, serverutils.NewUnauthorized("user account is suspended")
	}

	// Rotate: the used token is revoked and a fresh one issued.
	if err := uow.UserRepository().RevokeRefreshToken(ctx, stored.Id); err != nil {
		return nil, serverutils.NewDependency("failed to rotate refresh token", err)
	}

	rawRefreshToken := uuid.New().String()
	newToken := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashToken(rawRefreshToken),
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.Auth.RefreshTokenTTL) * time.Hour),
		Revoked:   false,
		IpAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreateRefreshToken(ctx, newToken); err != nil {
		return nil, serverutils.NewDependency("failed to create session", err)
	}

	accessToken, err := serverutils.GenerateAccessToken(
		user.Id, user.Role, s.cfg.Auth.JwtSecret,
		time.Duration(s.cfg.Auth.AccessTokenTTL)*time.Minute,
	)
	if err != nil {
		return nil, serverutils.NewDependency("failed to sign access token", err)
	}

	return &dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: rawRefreshToken,
	}, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stored, err := uow.UserRepository().FindRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil || stored == nil {
		return nil
	}
	return uow.UserRepository().RevokeRefreshToken(ctx, stored.Id)
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		// Don't leak which emails exist
		return nil
	}

	token := uuid.New().String()
	resetToken := &entity.PasswordResetToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     token,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		Used:      false,
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().CreatePasswordResetToken(ctx, resetToken); err != nil {
		return serverutils.NewDependency("failed to store reset token", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.App.ClientURL, token)
	go func() {
		if emailErr := s.emailService.SendPasswordReset(user.Email, resetURL); emailErr != nil {
			s.log.Error("AuthService", "Error sending reset password email", map[string]interface{}{"error": emailErr.Error()})
		}
	}()

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stored, err := uow.UserRepository().FindPasswordResetToken(ctx, req.Token)
	if err != nil || stored == nil {
		return serverutils.NewValidation("invalid or expired reset token")
	}
	if stored.Used || time.Now().After(stored.ExpiresAt) {
		return serverutils.NewValidation("invalid or expired reset token")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: stored.UserId})
	if err != nil || user == nil {
		return serverutils.NewValidation("invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return serverutils.NewDependency("failed to hash password", err)
	}
	hashStr := string(hash)

	if err := uow.Begin(ctx); err != nil {
		return serverutils.NewDependency("failed to start transaction", err)
	}
	defer uow.Rollback()

	user.PasswordHash = &hashStr
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return serverutils.NewDependency("failed to update password", err)
	}

	if err := uow.UserRepository().MarkPasswordResetTokenUsed(ctx, stored.Id); err != nil {
		return serverutils.NewDependency("failed to consume reset token", err)
	}

	if err := uow.Commit(); err != nil {
		return serverutils.NewDependency("failed to commit password reset", err)
	}
	return nil
}
