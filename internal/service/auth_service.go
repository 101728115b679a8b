package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "timers/internal/errors"
	"timers/internal/logging"
	"timers/internal/model"
	"timers/internal/repository"
)

type AuthService struct {
	users    UserStore
	sessions SessionStore
	tokens   tokenSigner
	logger   logging.Logger
	now      func() time.Time
}

func NewAuthService(users UserStore, sessions SessionStore, sessionSecret string, logger logging.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokenSigner{secret: []byte(sessionSecret)},
		logger:   logger,
		now:      time.Now,
	}
}

type AuthResult struct {
	SessionID string `json:"sessionId"`
}

// Identity is what a resolved session token grants: the session it names and
// the user that owns it.
type Identity struct {
	SessionID string
	User      *model.User
}

func (s *AuthService) Signup(ctx context.Context, username, password string) (*AuthResult, *apperrors.APIError) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidCredentials, "username and password are required")
	}

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return nil, apperrors.Conflict(apperrors.CodeUsernameExists, "such user already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error(ctx, "query user", "username", username, "error", err)
		return nil, apperrors.Internal("failed to query user")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error(ctx, "hash password", "error", err)
		return nil, apperrors.Internal("failed to secure password")
	}

	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(passwordHash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict(apperrors.CodeUsernameExists, "such user already exists")
		}
		s.logger.Error(ctx, "create user", "username", username, "error", err)
		return nil, apperrors.Internal("failed to create user")
	}

	s.logger.Info(ctx, "user signed up", "user_id", user.ID)
	return s.openSession(ctx, user.ID)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, *apperrors.APIError) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidCredentials, "username and password are required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Unauthorized(apperrors.CodeInvalidCredentials, "wrong username or password")
	}
	if err != nil {
		s.logger.Error(ctx, "query user", "username", username, "error", err)
		return nil, apperrors.Internal("failed to query user")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.Unauthorized(apperrors.CodeInvalidCredentials, "wrong username or password")
	}

	return s.openSession(ctx, user.ID)
}

// Logout deletes the session. A session that is already gone is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) *apperrors.APIError {
	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		s.logger.Error(ctx, "delete session", "error", err)
		return apperrors.Internal("failed to delete session")
	}
	return nil
}

// Authenticate resolves a session token. Tokens that are forged, malformed,
// unknown or orphaned yield a nil identity and a nil error; only store
// failures are reported as errors.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	sessionID, ok := s.tokens.parse(token)
	if !ok {
		return nil, nil
	}

	user, err := s.sessions.FindSessionUser(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &Identity{SessionID: sessionID, User: user}, nil
}

func (s *AuthService) openSession(ctx context.Context, userID string) (*AuthResult, *apperrors.APIError) {
	sessionID, err := s.sessions.CreateSession(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "create session", "user_id", userID, "error", err)
		return nil, apperrors.Internal("failed to create session")
	}

	token, err := s.tokens.sign(sessionID, userID)
	if err != nil {
		s.logger.Error(ctx, "sign session token", "error", err)
		return nil, apperrors.Internal("failed to sign session token")
	}
	return &AuthResult{SessionID: token}, nil
}
