package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"petshop/internal/logger"
	"petshop/internal/models"
	"petshop/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) error
}

// SessionStore tracks live sessions by token ID.
type SessionStore interface {
	Save(ctx context.Context, tokenID, username string) error
	Get(ctx context.Context, tokenID string) (string, error)
	Delete(ctx context.Context, tokenID string) error
}

// TokenManager issues and parses session tokens.
type TokenManager interface {
	Generate(ctx context.Context, username string) (token string, tokenID string, err error)
	Parse(ctx context.Context, token string) (username string, tokenID string, err error)
}

// AuthService handles signup, login, logout, password changes, and
// session resolution.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
	tokens   TokenManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStore, tokens TokenManager) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Register creates a new user with a bcrypt hash of the password.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a session token. The session is
// registered server-side so it can be revoked on logout.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, tokenID, err := svc.tokens.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	if err := svc.sessions.Save(ctx, tokenID, username); err != nil {
		logger.Log.Errorw("failed to register session", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the session bound to the token. Logging out with an
// already invalid token is a no-op.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	_, tokenID, err := svc.tokens.Parse(ctx, token)
	if err != nil {
		return nil
	}

	if err := svc.sessions.Delete(ctx, tokenID); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}

	return nil
}

// ChangePassword replaces the stored password hash for the session's user.
func (svc *AuthService) ChangePassword(ctx context.Context, token, newPassword string) error {
	username, err := svc.Resolve(ctx, token)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to save new password", "err", err)
		return err
	}

	return nil
}

// Resolve maps a session token to the username it was issued for. Both the
// token signature and the server-side session entry must be valid.
func (svc *AuthService) Resolve(ctx context.Context, token string) (string, error) {
	username, tokenID, err := svc.tokens.Parse(ctx, token)
	if err != nil {
		return "", ErrInvalidSession
	}

	stored, err := svc.sessions.Get(ctx, tokenID)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return "", ErrInvalidSession
		}
		logger.Log.Errorw("failed to look up session", "err", err)
		return "", err
	}
	if stored != username {
		return "", ErrInvalidSession
	}

	return username, nil
}
