package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	autherrors "beautybar/internal/auth/errors"
	"beautybar/internal/auth/token"
	"beautybar/pkg/config"
	apperrors "beautybar/pkg/errors"
	"beautybar/pkg/logger"
	"beautybar/pkg/model"
)

type mockUserRepo struct {
	create         func(user *model.User) error
	findByEmail    func(email string) (*model.User, error)
	findByID       func(id string) (*model.User, error)
	updatePassword func(userID, hash string) error
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.create == nil {
		return nil
	}
	return m.create(user)
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if m.findByEmail == nil {
		return nil, autherrors.ErrUserNotFound
	}
	return m.findByEmail(email)
}

func (m *mockUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	if m.findByID == nil {
		return nil, autherrors.ErrUserNotFound
	}
	return m.findByID(id)
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, userID, hash string) error {
	if m.updatePassword == nil {
		return nil
	}
	return m.updatePassword(userID, hash)
}

type mockResetRepo struct {
	create     func(reset *model.PasswordReset) error
	findUnused func(token string) (*model.PasswordReset, error)
	markUsed   func(token string) error
}

func (m *mockResetRepo) Create(_ context.Context, reset *model.PasswordReset) error {
	if m.create == nil {
		return nil
	}
	return m.create(reset)
}

func (m *mockResetRepo) FindUnused(_ context.Context, t string) (*model.PasswordReset, error) {
	if m.findUnused == nil {
		return nil, autherrors.ErrResetTokenNotFound
	}
	return m.findUnused(t)
}

func (m *mockResetRepo) MarkUsed(_ context.Context, t string) error {
	if m.markUsed == nil {
		return nil
	}
	return m.markUsed(t)
}

type mockMailer struct {
	configured bool
	sent       []string
	succeed    bool
}

func (m *mockMailer) Configured() bool {
	return m.configured
}

func (m *mockMailer) Send(_ context.Context, to, subject, html string) bool {
	m.sent = append(m.sent, to)
	return m.succeed
}

func testConfig() *config.Config {
	return &config.Config{
		FrontendURL: "https://beautybar609.com",
		SenderEmail: "noreply@beautybar609.com",
		Log: logger.New(logger.Config{
			Level:  logger.ERROR,
			Format: logger.TEXT,
			Output: io.Discard,
		}),
	}
}

func newTestService(users *mockUserRepo, resets *mockResetRepo, mailer *mockMailer) AuthService {
	return NewAuthService(users, resets, token.NewManager("test-secret", time.Hour), mailer, testConfig())
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	t.Run("duplicate email is a conflict", func(t *testing.T) {
		users := &mockUserRepo{
			findByEmail: func(email string) (*model.User, error) {
				return &model.User{ID: "u1", Email: email}, nil
			},
		}
		svc := newTestService(users, &mockResetRepo{}, &mockMailer{})

		_, err := svc.Register(context.Background(), &model.RegisterRequest{
			Email:    "admin@beautybar609.com",
			Password: "secret123",
			Name:     "Admin",
		})

		require.Error(t, err)
		appErr := apperrors.AsAppError(err)
		assert.Equal(t, apperrors.CodeConflict, appErr.Code)
		assert.Equal(t, "Email already registered", appErr.Message)
	})

	t.Run("new user gets a token and public profile", func(t *testing.T) {
		var stored *model.User
		users := &mockUserRepo{
			create: func(user *model.User) error {
				stored = user
				return nil
			},
		}
		svc := newTestService(users, &mockResetRepo{}, &mockMailer{})

		resp, err := svc.Register(context.Background(), &model.RegisterRequest{
			Email:    "admin@beautybar609.com",
			Password: "secret123",
			Name:     "Admin",
		})

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, stored.ID, resp.User.ID)
		assert.NotEqual(t, "secret123", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
	})

	t.Run("invalid email fails validation", func(t *testing.T) {
		svc := newTestService(&mockUserRepo{}, &mockResetRepo{}, &mockMailer{})

		_, err := svc.Register(context.Background(), &model.RegisterRequest{
			Email:    "not-an-email",
			Password: "secret123",
			Name:     "Admin",
		})

		require.Error(t, err)
		assert.Equal(t, apperrors.CodeValidation, apperrors.AsAppError(err).Code)
	})
}

func TestLogin(t *testing.T) {
	hash := hashPassword(t, "secret123")

	existing := func(email string) (*model.User, error) {
		return &model.User{ID: "u1", Email: email, Name: "Admin", Password: hash}, nil
	}

	t.Run("unknown email and wrong password share one message", func(t *testing.T) {
		cases := []struct {
			name  string
			users *mockUserRepo
			pass  string
		}{
			{name: "unknown email", users: &mockUserRepo{}, pass: "secret123"},
			{name: "wrong password", users: &mockUserRepo{findByEmail: existing}, pass: "wrong"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				svc := newTestService(tc.users, &mockResetRepo{}, &mockMailer{})

				_, err := svc.Login(context.Background(), &model.LoginRequest{
					Email:    "admin@beautybar609.com",
					Password: tc.pass,
				})

				require.Error(t, err)
				appErr := apperrors.AsAppError(err)
				assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
				assert.Equal(t, "Invalid email or password", appErr.Message)
			})
		}
	})

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		users := &mockUserRepo{
			findByEmail: existing,
			findByID: func(id string) (*model.User, error) {
				return &model.User{ID: id, Email: "admin@beautybar609.com", Password: hash}, nil
			},
		}
		svc := newTestService(users, &mockResetRepo{}, &mockMailer{})

		resp, err := svc.Login(context.Background(), &model.LoginRequest{
			Email:    "admin@beautybar609.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		user, err := svc.Authenticate(context.Background(), resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})
}

func TestAuthenticate(t *testing.T) {
	hash := hashPassword(t, "secret123")

	t.Run("expired token", func(t *testing.T) {
		expired := token.NewManager("test-secret", -time.Minute)
		signed, err := expired.Issue("u1", "admin@beautybar609.com")
		require.NoError(t, err)

		svc := newTestService(&mockUserRepo{}, &mockResetRepo{}, &mockMailer{})
		_, err = svc.Authenticate(context.Background(), signed)

		require.Error(t, err)
		assert.Equal(t, "Token expired", apperrors.AsAppError(err).Message)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := newTestService(&mockUserRepo{}, &mockResetRepo{}, &mockMailer{})
		_, err := svc.Authenticate(context.Background(), "not.a.jwt")

		require.Error(t, err)
		assert.Equal(t, "Invalid token", apperrors.AsAppError(err).Message)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := token.NewManager("other-secret", time.Hour)
		signed, err := other.Issue("u1", "admin@beautybar609.com")
		require.NoError(t, err)

		svc := newTestService(&mockUserRepo{}, &mockResetRepo{}, &mockMailer{})
		_, err = svc.Authenticate(context.Background(), signed)

		require.Error(t, err)
		assert.Equal(t, "Invalid token", apperrors.AsAppError(err).Message)
	})

	t.Run("deleted user", func(t *testing.T) {
		users := &mockUserRepo{
			findByEmail: func(email string) (*model.User, error) {
				return &model.User{ID: "u1", Email: email, Password: hash}, nil
			},
		}
		svc := newTestService(users, &mockResetRepo{}, &mockMailer{})

		resp, err := svc.Login(context.Background(), &model.LoginRequest{
			Email:    "admin@beautybar609.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		_, err = svc.Authenticate(context.Background(), resp.Token)
		require.Error(t, err)
		assert.Equal(t, "User not found", apperrors.AsAppError(err).Message)
	})
}

func TestForgotPassword(t *testing.T) {
	existing := func(email string) (*model.User, error) {
		return &model.User{ID: "u1", Email: email, Name: "Admin"}, nil
	}

	t.Run("unknown email returns the generic message without a token", func(t *testing.T) {
		mailer := &mockMailer{}
		svc := newTestService(&mockUserRepo{}, &mockResetRepo{}, mailer)

		result, err := svc.ForgotPassword(context.Background(), &model.ForgotPasswordRequest{
			Email: "nobody@beautybar609.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "If email exists, reset instructions have been sent", result.Message)
		assert.False(t, result.EmailSent)
		assert.Empty(t, result.ResetToken)
		assert.Empty(t, mailer.sent)
	})

	t.Run("email sent when the provider succeeds", func(t *testing.T) {
		var created *model.PasswordReset
		resets := &mockResetRepo{
			create: func(reset *model.PasswordReset) error {
				created = reset
				return nil
			},
		}
		mailer := &mockMailer{configured: true, succeed: true}
		svc := newTestService(&mockUserRepo{findByEmail: existing}, resets, mailer)

		result, err := svc.ForgotPassword(context.Background(), &model.ForgotPasswordRequest{
			Email: "admin@beautybar609.com",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.True(t, result.EmailSent)
		assert.Empty(t, result.ResetToken)
		assert.Equal(t, []string{"admin@beautybar609.com"}, mailer.sent)
		assert.False(t, created.Used)
	})

	t.Run("token returned in the response when email fails", func(t *testing.T) {
		var created *model.PasswordReset
		resets := &mockResetRepo{
			create: func(reset *model.PasswordReset) error {
				created = reset
				return nil
			},
		}
		svc := newTestService(&mockUserRepo{findByEmail: existing}, resets, &mockMailer{})

		result, err := svc.ForgotPassword(context.Background(), &model.ForgotPasswordRequest{
			Email: "admin@beautybar609.com",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.False(t, result.EmailSent)
		assert.Equal(t, created.Token, result.ResetToken)
	})
}

func TestResetPassword(t *testing.T) {
	validReset := func(expires time.Time) func(string) (*model.PasswordReset, error) {
		return func(tok string) (*model.PasswordReset, error) {
			return &model.PasswordReset{
				UserID:  "u1",
				Token:   tok,
				Expires: expires.UTC().Format(time.RFC3339),
			}, nil
		}
	}

	t.Run("unknown or used token", func(t *testing.T) {
		svc := newTestService(&mockUserRepo{}, &mockResetRepo{}, &mockMailer{})

		err := svc.ResetPassword(context.Background(), &model.ResetPasswordRequest{
			Token:       "missing",
			NewPassword: "newsecret",
		})

		require.Error(t, err)
		assert.Equal(t, "Invalid or expired reset token", apperrors.AsAppError(err).Message)
	})

	t.Run("expired token", func(t *testing.T) {
		resets := &mockResetRepo{findUnused: validReset(time.Now().Add(-time.Minute))}
		svc := newTestService(&mockUserRepo{}, resets, &mockMailer{})

		err := svc.ResetPassword(context.Background(), &model.ResetPasswordRequest{
			Token:       "t1",
			NewPassword: "newsecret",
		})

		require.Error(t, err)
		assert.Equal(t, "Reset token expired", apperrors.AsAppError(err).Message)
	})

	t.Run("valid token rotates the password once", func(t *testing.T) {
		var newHash string
		var usedToken string
		users := &mockUserRepo{
			updatePassword: func(userID, hash string) error {
				assert.Equal(t, "u1", userID)
				newHash = hash
				return nil
			},
		}
		resets := &mockResetRepo{
			findUnused: validReset(time.Now().Add(time.Hour)),
			markUsed: func(tok string) error {
				usedToken = tok
				return nil
			},
		}
		svc := newTestService(users, resets, &mockMailer{})

		err := svc.ResetPassword(context.Background(), &model.ResetPasswordRequest{
			Token:       "t1",
			NewPassword: "newsecret",
		})

		require.NoError(t, err)
		assert.Equal(t, "t1", usedToken)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("newsecret")))
	})
}
