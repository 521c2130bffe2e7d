package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"github.com/UDARAS8/bugtracker/common/id"
	"github.com/UDARAS8/bugtracker/core/config"
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/store"
)

// SessionTTL is how long a login stays valid.
const SessionTTL = 7 * 24 * time.Hour

var (
	ErrInvalidCode    = errors.New("invalid authorization code")
	ErrUserNotFound   = errors.New("user not found")
	ErrSessionExpired = errors.New("session expired")
	ErrAuthDisabled   = errors.New("login is not configured")
)

// Identity is the profile an identity provider returns for a signed-in user.
type Identity struct {
	ProviderID string
	Email      string
	FirstName  string
	LastName   string
	AvatarURL  string
}

// IdentityProvider performs the hosted login code exchange.
type IdentityProvider interface {
	AuthorizationURL(state string) (string, error)
	Authenticate(ctx context.Context, code string) (*Identity, error)
}

type workOSProvider struct {
	cfg config.WorkOSConfig
}

// NewWorkOSProvider returns an IdentityProvider backed by WorkOS AuthKit.
func NewWorkOSProvider(cfg config.WorkOSConfig) IdentityProvider {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &workOSProvider{cfg: cfg}
}

func (p *workOSProvider) AuthorizationURL(state string) (string, error) {
	url, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    p.cfg.ClientID,
		RedirectURI: p.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url.String(), nil
}

func (p *workOSProvider) Authenticate(ctx context.Context, code string) (*Identity, error) {
	resp, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: p.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		return nil, err
	}
	return &Identity{
		ProviderID: resp.User.ID,
		Email:      resp.User.Email,
		FirstName:  resp.User.FirstName,
		LastName:   resp.User.LastName,
		AvatarURL:  resp.User.ProfilePictureURL,
	}, nil
}

type AuthService interface {
	Enabled() bool
	GetAuthorizationURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error)
	ValidateSession(ctx context.Context, sessionID int64) (*model.User, error)
	Logout(ctx context.Context, sessionID int64) error
}

type authService struct {
	userStore    store.UserStore
	sessionStore store.SessionStore
	txRunner     TxRunner
	provider     IdentityProvider // nil when login is not configured
	now          func() time.Time
}

func NewAuthService(
	userStore store.UserStore,
	sessionStore store.SessionStore,
	txRunner TxRunner,
	provider IdentityProvider,
) AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		txRunner:     txRunner,
		provider:     provider,
		now:          time.Now,
	}
}

func (s *authService) Enabled() bool {
	return s.provider != nil
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	if s.provider == nil {
		return "", ErrAuthDisabled
	}
	return s.provider.AuthorizationURL(state)
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	if s.provider == nil {
		return nil, nil, ErrAuthDisabled
	}

	identity, err := s.provider.Authenticate(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, nil, ErrInvalidCode
	}

	var avatarURL *string
	if identity.AvatarURL != "" {
		avatarURL = &identity.AvatarURL
	}

	user := &model.User{
		ID:        id.New(),
		Name:      displayName(identity),
		Email:     identity.Email,
		AvatarURL: avatarURL,
		WorkOSID:  &identity.ProviderID,
	}

	var session *model.Session
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Users().UpsertByWorkOSID(ctx, user); err != nil {
			slog.ErrorContext(ctx, "failed to upsert user",
				"error", err,
				"email", user.Email,
				"workos_id", identity.ProviderID,
			)
			return fmt.Errorf("upserting user: %w", err)
		}

		session = &model.Session{
			ID:        id.New(),
			UserID:    user.ID,
			ExpiresAt: s.now().Add(SessionTTL),
		}
		if err := stores.Sessions().Create(ctx, session); err != nil {
			slog.ErrorContext(ctx, "failed to create session",
				"error", err,
				"user_id", user.ID,
			)
			return fmt.Errorf("creating session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if n, err := s.sessionStore.DeleteExpired(ctx); err != nil {
		slog.WarnContext(ctx, "failed to purge expired sessions", "error", err)
	} else if n > 0 {
		slog.DebugContext(ctx, "purged expired sessions", "count", n)
	}

	slog.InfoContext(ctx, "user authenticated",
		"user_id", user.ID,
		"email", user.Email,
		"session_id", session.ID,
	)

	return user, session, nil
}

func (s *authService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	session, err := s.sessionStore.GetValid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

func (s *authService) Logout(ctx context.Context, sessionID int64) error {
	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func displayName(identity *Identity) string {
	if name := strings.TrimSpace(identity.FirstName + " " + identity.LastName); name != "" {
		return name
	}
	return identity.Email
}
