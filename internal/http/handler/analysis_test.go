package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/UDARAS8/bugtracker/common/llm"
	"github.com/UDARAS8/bugtracker/internal/http/handler"
	"github.com/UDARAS8/bugtracker/internal/http/middleware"
	"github.com/UDARAS8/bugtracker/internal/http/router"
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/service"
)

var _ = Describe("AnalysisHandler", func() {
	var (
		engine *gin.Engine
		svc    *mockAnalysisService
	)

	post := func(path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(http.MethodPost, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: validSession})
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		svc = &mockAnalysisService{}
		auth := &mockAuthService{
			validateFn: func(context.Context, int64) (*model.User, error) {
				return &model.User{ID: 1}, nil
			},
		}

		engine = gin.New()
		router.AnalysisRouter(engine.Group("/ai"), handler.NewAnalysisHandler(svc), middleware.RequireSession(auth))
	})

	It("returns the parsed assignee suggestion", func() {
		svc.suggestAssigneeFn = func(context.Context, *model.User, int64) (llm.Result[service.AssigneeSuggestion], error) {
			return llm.Result[service.AssigneeSuggestion]{Parsed: &service.AssigneeSuggestion{SuggestedAssignee: "alex"}}, nil
		}

		w := post("/ai/bugs/4/suggest-assignee", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["suggestedAssignee"]).To(Equal("alex"))
	})

	It("wraps an unparseable assignee reply", func() {
		svc.suggestAssigneeFn = func(context.Context, *model.User, int64) (llm.Result[service.AssigneeSuggestion], error) {
			return llm.Result[service.AssigneeSuggestion]{Raw: "give it to alex"}, nil
		}

		w := post("/ai/bugs/4/suggest-assignee", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"rawSuggestion":"give it to alex"}`))
	})

	It("wraps unparseable test case suggestions", func() {
		svc.suggestTestsFn = func(context.Context, *model.User, string, string) (llm.Result[[]service.TestCaseSuggestion], error) {
			return llm.Result[[]service.TestCaseSuggestion]{Raw: "test the login"}, nil
		}

		w := post("/ai/test-cases/suggest", map[string]any{"feature": "Login"})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"rawSuggestions":"test the login"}`))
	})

	It("requires a feature name", func() {
		w := post("/ai/test-cases/suggest", map[string]any{"description": "x"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("maps an unknown bug to 404", func() {
		svc.analyzeFn = func(context.Context, *model.User, int64) (string, error) {
			return "", service.ErrBugNotFound
		}

		w := post("/ai/bugs/4/analyze", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("reports 503 when the assistant is not configured", func() {
		svc.analyzeFn = func(context.Context, *model.User, int64) (string, error) {
			return "", service.ErrAIUnavailable
		}

		w := post("/ai/bugs/4/analyze", nil)
		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})
})
