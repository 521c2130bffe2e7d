package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/UDARAS8/bugtracker/common/logger"
	"github.com/UDARAS8/bugtracker/internal/http/middleware"
	"github.com/UDARAS8/bugtracker/internal/model"
)

var _ = Describe("Logger", func() {
	var (
		engine   *gin.Engine
		logs     *bytes.Buffer
		previous *slog.Logger
		fields   logger.LogFields
	)

	lastRecord := func() map[string]any {
		lines := bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n"))
		var rec map[string]any
		Expect(json.Unmarshal(lines[len(lines)-1], &rec)).To(Succeed())
		return rec
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		logs = &bytes.Buffer{}
		previous = slog.Default()
		slog.SetDefault(slog.New(logger.NewTraceHandler(
			slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)))
		fields = logger.LogFields{}

		auth := &mockAuthService{
			validateFn: func(_ context.Context, sessionID int64) (*model.User, error) {
				return &model.User{ID: 7, Email: "qa@example.com"}, nil
			},
		}

		capture := func(c *gin.Context) {
			fields = logger.GetLogFields(c.Request.Context())
			c.Status(http.StatusOK)
		}

		engine = gin.New()
		engine.Use(middleware.Recovery(), middleware.Logger())
		v1 := engine.Group("/api/v1", middleware.OptionalSession(auth))
		v1.GET("/bugs/:id", capture)
		v1.GET("/test-cases/:id", capture)
		v1.GET("/reports/:id/markdown", capture)
		v1.GET("/boom", func(*gin.Context) { panic("kaboom") })
	})

	AfterEach(func() {
		slog.SetDefault(previous)
	})

	It("tags the context with the addressed bug", func() {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/bugs/42", nil))

		Expect(fields.BugID).NotTo(BeNil())
		Expect(*fields.BugID).To(Equal(int64(42)))
		Expect(lastRecord()["bug_id"]).To(BeNumerically("==", 42))
	})

	It("tags test cases and reports", func() {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/test-cases/5", nil))
		Expect(*fields.TestCaseID).To(Equal(int64(5)))

		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/reports/9/markdown", nil))
		Expect(*fields.ReportID).To(Equal(int64(9)))
	})

	It("leaves a malformed id untagged", func() {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/bugs/abc", nil))

		Expect(fields.BugID).To(BeNil())
	})

	It("logs the authenticated user and session", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bugs/1", nil)
		req.Header.Set(middleware.SessionIDHeader, "555")

		engine.ServeHTTP(httptest.NewRecorder(), req)

		rec := lastRecord()
		Expect(rec["msg"]).To(Equal("request"))
		Expect(rec["user_id"]).To(BeNumerically("==", 7))
		Expect(rec["session_id"]).To(BeNumerically("==", 555))
		Expect(rec["route"]).To(Equal("/api/v1/bugs/:id"))
	})

	It("omits the session for anonymous requests", func() {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/bugs/1", nil))

		Expect(lastRecord()).NotTo(HaveKey("session_id"))
	})

	It("recovers a panic as a 500", func() {
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(ContainSubstring("Internal server error"))
		Expect(logs.String()).To(ContainSubstring("panic recovered"))
	})
})
