package middleware_test

import (
	"context"

	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/service"
)

type mockAuthService struct {
	validateFn func(ctx context.Context, sessionID int64) (*model.User, error)
}

func (m *mockAuthService) Enabled() bool { return true }

func (m *mockAuthService) GetAuthorizationURL(state string) (string, error) {
	return "", nil
}

func (m *mockAuthService) HandleCallback(context.Context, string) (*model.User, *model.Session, error) {
	return nil, nil, service.ErrInvalidCode
}

func (m *mockAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, sessionID)
	}
	return nil, service.ErrSessionExpired
}

func (m *mockAuthService) Logout(context.Context, int64) error {
	return nil
}
