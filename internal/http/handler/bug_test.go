package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/UDARAS8/bugtracker/internal/http/handler"
	"github.com/UDARAS8/bugtracker/internal/http/middleware"
	"github.com/UDARAS8/bugtracker/internal/http/router"
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/service"
)

const validSession = "12345"

var _ = Describe("BugHandler", func() {
	var (
		engine *gin.Engine
		svc    *mockBugService
		auth   *mockAuthService
		user   *model.User
	)

	do := func(method, path string, body any, withSession bool) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		if withSession {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: validSession})
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		svc = &mockBugService{}
		user = &model.User{ID: 9, Email: "qa@example.com"}
		auth = &mockAuthService{
			validateFn: func(_ context.Context, sessionID int64) (*model.User, error) {
				if sessionID == 12345 {
					return user, nil
				}
				return nil, service.ErrSessionExpired
			},
		}

		engine = gin.New()
		v1 := engine.Group("/api/v1", middleware.OptionalSession(auth))
		router.BugRouter(v1.Group("/bugs"), handler.NewBugHandler(svc), middleware.RequireSession(auth))
	})

	Describe("reads", func() {
		It("passes every list filter through", func() {
			var got model.BugFilter
			svc.listFn = func(_ context.Context, f model.BugFilter) ([]model.Bug, error) {
				got = f
				return []model.Bug{{ID: 1, Title: "A"}}, nil
			}

			w := do(http.MethodGet, "/api/v1/bugs?status=open&severity=high&assignee=sam", nil, false)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(*got.Status).To(Equal(model.BugStatusOpen))
			Expect(*got.Severity).To(Equal(model.SeverityHigh))
			Expect(*got.Assignee).To(Equal("sam"))

			var resp []map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp[0]["id"]).To(Equal("1"))
		})

		It("treats an empty assignee as no filter", func() {
			var got model.BugFilter
			svc.listFn = func(_ context.Context, f model.BugFilter) ([]model.Bug, error) {
				got = f
				return []model.Bug{}, nil
			}

			w := do(http.MethodGet, "/api/v1/bugs?assignee=&status=open", nil, false)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got.Assignee).To(BeNil())
			Expect(*got.Status).To(Equal(model.BugStatusOpen))
		})

		It("rejects an unknown status filter", func() {
			w := do(http.MethodGet, "/api/v1/bugs?status=done", nil, false)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(svc.calls).To(BeZero())
		})

		It("returns 404 for a missing bug", func() {
			w := do(http.MethodGet, "/api/v1/bugs/77", nil, false)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a malformed id", func() {
			w := do(http.MethodGet, "/api/v1/bugs/abc", nil, false)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(svc.calls).To(BeZero())
		})

		It("routes search separately from get", func() {
			var term string
			svc.searchFn = func(_ context.Context, t string, _ *model.BugStatus) ([]model.Bug, error) {
				term = t
				return []model.Bug{}, nil
			}

			w := do(http.MethodGet, "/api/v1/bugs/search?q=login", nil, false)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(term).To(Equal("login"))
		})
	})

	Describe("mutations", func() {
		validBug := map[string]any{
			"title":    "Login broken",
			"severity": "high",
			"priority": "urgent",
		}

		It("rejects an unauthenticated create without calling the service", func() {
			w := do(http.MethodPost, "/api/v1/bugs", validBug, false)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(svc.calls).To(BeZero())
		})

		It("rejects an expired session", func() {
			auth.validateFn = func(context.Context, int64) (*model.User, error) {
				return nil, service.ErrSessionExpired
			}

			w := do(http.MethodDelete, "/api/v1/bugs/5", nil, true)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(svc.calls).To(BeZero())
		})

		It("creates a bug as the session user", func() {
			var actor *model.User
			svc.createFn = func(_ context.Context, a *model.User, in service.CreateBugInput) (*model.Bug, error) {
				actor = a
				return &model.Bug{ID: 3, Title: in.Title, Status: model.BugStatusOpen}, nil
			}

			w := do(http.MethodPost, "/api/v1/bugs", validBug, true)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(actor).To(Equal(user))
		})

		It("accepts the session id header", func() {
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/bugs/5", nil)
			req.Header.Set(middleware.SessionIDHeader, validSession)
			w := httptest.NewRecorder()

			engine.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
		})

		It("validates severity", func() {
			w := do(http.MethodPost, "/api/v1/bugs", map[string]any{
				"title":    "Login broken",
				"severity": "catastrophic",
				"priority": "low",
			}, true)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(svc.calls).To(BeZero())
		})

		It("maps an empty update to 400", func() {
			svc.updateFn = func(context.Context, *model.User, int64, model.BugUpdate) (*model.Bug, error) {
				return nil, service.ErrEmptyUpdate
			}

			w := do(http.MethodPatch, "/api/v1/bugs/5", map[string]any{}, true)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("hides internal errors", func() {
			svc.updateStatusFn = func(context.Context, *model.User, int64, model.BugStatus) (*model.Bug, error) {
				return nil, errors.New("connection reset")
			}

			w := do(http.MethodPut, "/api/v1/bugs/5/status", map[string]any{"status": "closed"}, true)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("connection reset"))
		})
	})
})
