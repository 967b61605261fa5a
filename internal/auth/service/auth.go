package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	autherrors "beautybar/internal/auth/errors"
	"beautybar/internal/auth/repository"
	"beautybar/internal/auth/token"
	"beautybar/internal/notify"
	"beautybar/pkg/config"
	apperrors "beautybar/pkg/errors"
	"beautybar/pkg/model"
	"beautybar/pkg/validate"
)

const (
	bcryptCost    = 12
	resetTokenTTL = 1 * time.Hour

	// Identical for known and unknown emails so the endpoint cannot be
	// used to enumerate accounts.
	forgotPasswordMessage = "If email exists, reset instructions have been sent"
)

type ForgotPasswordResult struct {
	Message    string `json:"message"`
	EmailSent  bool   `json:"email_sent"`
	ResetToken string `json:"reset_token,omitempty"`
}

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	Authenticate(ctx context.Context, rawToken string) (*model.User, error)
	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*ForgotPasswordResult, error)
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error
}

type authService struct {
	users    repository.UserRepository
	resets   repository.PasswordResetRepository
	tokens   *token.Manager
	mailer   notify.EmailSender
	validate *validator.Validate
	cfg      *config.Config
}

func NewAuthService(
	users repository.UserRepository,
	resets repository.PasswordResetRepository,
	tokens *token.Manager,
	mailer notify.EmailSender,
	cfg *config.Config,
) AuthService {
	return &authService{
		users:    users,
		resets:   resets,
		tokens:   tokens,
		mailer:   mailer,
		validate: validate.New(),
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if err := validate.Struct(s.validate, req); err != nil {
		return nil, err
	}

	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperrors.Conflict("Email already registered")
	}
	if !errors.Is(err, autherrors.ErrUserNotFound) {
		return nil, apperrors.Internal("Failed to check existing user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Name:      req.Name,
		Password:  string(hash),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.Internal("Failed to create user", err)
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Internal("Failed to issue token", err)
	}

	s.cfg.Log.Info("User registered", "user_id", user.ID, "email", user.Email)
	return &model.AuthResponse{Token: signed, User: user.Public()}, nil
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if err := validate.Struct(s.validate, req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, autherrors.ErrUserNotFound) {
			return nil, apperrors.Unauthorized("Invalid email or password")
		}
		return nil, apperrors.Internal("Failed to look up user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Internal("Failed to issue token", err)
	}

	return &model.AuthResponse{Token: signed, User: user.Public()}, nil
}

// Authenticate resolves a bearer token to its user. Expired tokens, invalid
// tokens, and tokens for deleted users each fail with their own message.
func (s *authService) Authenticate(ctx context.Context, rawToken string) (*model.User, error) {
	claims, err := s.tokens.Verify(rawToken)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return nil, apperrors.Unauthorized("Token expired")
		}
		return nil, apperrors.Unauthorized("Invalid token")
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, autherrors.ErrUserNotFound) {
			return nil, apperrors.Unauthorized("User not found")
		}
		return nil, apperrors.Internal("Failed to load user", err)
	}

	return user, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*ForgotPasswordResult, error) {
	if err := validate.Struct(s.validate, req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, autherrors.ErrUserNotFound) {
			return &ForgotPasswordResult{Message: forgotPasswordMessage}, nil
		}
		return nil, apperrors.Internal("Failed to look up user", err)
	}

	resetToken := uuid.NewString()
	reset := &model.PasswordReset{
		UserID:  user.ID,
		Token:   resetToken,
		Expires: time.Now().UTC().Add(resetTokenTTL).Format(time.RFC3339),
		Used:    false,
	}

	if err := s.resets.Create(ctx, reset); err != nil {
		return nil, apperrors.Internal("Failed to create reset token", err)
	}

	subject, html := notify.PasswordResetEmail(s.cfg.FrontendURL, resetToken, user.Name)
	if s.mailer.Send(ctx, user.Email, subject, html) {
		s.cfg.Log.Info("Password reset email sent", "email", user.Email)
		return &ForgotPasswordResult{Message: forgotPasswordMessage, EmailSent: true}, nil
	}

	// Without a mail provider the token is handed back for out-of-band
	// delivery by the operator.
	s.cfg.Log.Warn("Email provider unavailable, returning reset token in response", "email", user.Email)
	return &ForgotPasswordResult{Message: forgotPasswordMessage, ResetToken: resetToken}, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	if err := validate.Struct(s.validate, req); err != nil {
		return err
	}

	reset, err := s.resets.FindUnused(ctx, req.Token)
	if err != nil {
		if errors.Is(err, autherrors.ErrResetTokenNotFound) {
			return apperrors.InvalidInput("Invalid or expired reset token")
		}
		return apperrors.Internal("Failed to look up reset token", err)
	}

	expires, err := time.Parse(time.RFC3339, reset.Expires)
	if err != nil || time.Now().UTC().After(expires) {
		return apperrors.InvalidInput("Reset token expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return apperrors.Internal("Failed to hash password", err)
	}

	// Two sequential writes; a crash in between leaves the token unused
	// with the password already rotated, which only permits a redundant
	// second rotation.
	if err := s.users.UpdatePassword(ctx, reset.UserID, string(hash)); err != nil {
		return apperrors.Internal("Failed to update password", err)
	}

	if err := s.resets.MarkUsed(ctx, req.Token); err != nil {
		return apperrors.Internal("Failed to mark reset token used", err)
	}

	s.cfg.Log.Info("Password reset completed", "user_id", reset.UserID)
	return nil
}
