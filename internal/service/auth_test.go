package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/UDARAS8/bugtracker/common/id"
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/service"
	"github.com/UDARAS8/bugtracker/internal/store"
)

var _ = Describe("AuthService", func() {
	var (
		ctx      context.Context
		users    *mockUserStore
		sessions *mockSessionStore
		provider *mockIdentityProvider
		txRunner *mockTxRunner
		svc      service.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{}
		sessions = &mockSessionStore{}
		provider = &mockIdentityProvider{}
		txRunner = &mockTxRunner{provider: &mockStoreProvider{users: users, sessions: sessions}}
		svc = service.NewAuthService(users, sessions, txRunner, provider)

		Expect(id.Init(1)).To(Succeed())
	})

	Describe("HandleCallback", func() {
		It("upserts the user and opens a week-long session", func() {
			provider.authenticateFn = func(context.Context, string) (*service.Identity, error) {
				return &service.Identity{ProviderID: "user_01", Email: "ana@example.com", FirstName: "Ana", LastName: "Ruiz"}, nil
			}
			var created *model.Session
			sessions.createFn = func(_ context.Context, s *model.Session) error {
				created = s
				return nil
			}
			purged := false
			sessions.deleteExpiredFn = func(context.Context) (int64, error) {
				purged = true
				return 3, nil
			}

			user, session, err := svc.HandleCallback(ctx, "code-123")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).To(Equal("Ana Ruiz"))
			Expect(*user.WorkOSID).To(Equal("user_01"))
			Expect(user.AvatarURL).To(BeNil())
			Expect(session).To(BeIdenticalTo(created))
			Expect(session.UserID).To(Equal(user.ID))
			Expect(session.ExpiresAt).To(BeTemporally("~", time.Now().Add(service.SessionTTL), time.Minute))
			Expect(purged).To(BeTrue())
			Expect(txRunner.calls).To(Equal(1))
		})

		It("keeps the stored id of a returning user", func() {
			users.upsertFn = func(_ context.Context, u *model.User) error {
				u.ID = 555
				return nil
			}

			user, session, err := svc.HandleCallback(ctx, "code-123")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(555)))
			Expect(session.UserID).To(Equal(int64(555)))
		})

		It("does not open a session when the user cannot be saved", func() {
			users.upsertFn = func(context.Context, *model.User) error {
				return errors.New("db down")
			}
			sessionCreated := false
			sessions.createFn = func(context.Context, *model.Session) error {
				sessionCreated = true
				return nil
			}

			_, _, err := svc.HandleCallback(ctx, "code-123")

			Expect(err).To(HaveOccurred())
			Expect(sessionCreated).To(BeFalse())
		})

		It("uses the email when the profile has no name", func() {
			user, _, err := svc.HandleCallback(ctx, "code-123")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).To(Equal("qa@example.com"))
		})

		It("maps provider failures to ErrInvalidCode", func() {
			provider.authenticateFn = func(context.Context, string) (*service.Identity, error) {
				return nil, errors.New("code expired")
			}

			_, _, err := svc.HandleCallback(ctx, "stale")
			Expect(err).To(MatchError(service.ErrInvalidCode))
		})

		It("is disabled without a provider", func() {
			svc = service.NewAuthService(users, sessions, txRunner, nil)

			Expect(svc.Enabled()).To(BeFalse())
			_, _, err := svc.HandleCallback(ctx, "code")
			Expect(err).To(MatchError(service.ErrAuthDisabled))
			_, err = svc.GetAuthorizationURL("state")
			Expect(err).To(MatchError(service.ErrAuthDisabled))
		})
	})

	Describe("ValidateSession", func() {
		It("returns the session owner", func() {
			sessions.getValidFn = func(_ context.Context, id int64) (*model.Session, error) {
				return &model.Session{ID: id, UserID: 5}, nil
			}
			users.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Email: "owner@example.com"}, nil
			}

			user, err := svc.ValidateSession(ctx, 99)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(5)))
		})

		It("reports an expired session", func() {
			_, err := svc.ValidateSession(ctx, 99)
			Expect(err).To(MatchError(service.ErrSessionExpired))
		})

		It("reports a missing user", func() {
			sessions.getValidFn = func(_ context.Context, id int64) (*model.Session, error) {
				return &model.Session{ID: id, UserID: 5}, nil
			}
			users.getByIDFn = func(context.Context, int64) (*model.User, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.ValidateSession(ctx, 99)
			Expect(err).To(MatchError(service.ErrUserNotFound))
		})
	})
})
