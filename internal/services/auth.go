package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jylee2/record-api/internal/logger"
	"github.com/jylee2/record-api/internal/models"
	"github.com/jylee2/record-api/internal/repositories"
	"github.com/jylee2/record-api/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	ListAll(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for issuing bearer tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and returns the stored user with a fresh
// token. The username pre-check only produces the friendly duplicate
// message; the unique index is what closes the race.
func (svc *AuthService) Register(ctx context.Context, email, password, passwordConfirm, username string) (*models.UserDB, string, error) {
	if res := validation.ValidateRegistration(email, password, passwordConfirm, username); !res.Valid() {
		return nil, "", &ValidationError{Result: res}
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUsernameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return nil, "", ErrUsernameExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns the user with a fresh token.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	if res := validation.ValidateLogin(password, username); !res.Valid() {
		return nil, "", &ValidationError{Result: res}
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown username", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("password mismatch", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// ListUsers returns all users ordered by username. Public read path.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}
