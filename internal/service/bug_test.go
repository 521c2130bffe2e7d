package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/UDARAS8/bugtracker/common/id"
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/queue"
	"github.com/UDARAS8/bugtracker/internal/service"
	"github.com/UDARAS8/bugtracker/internal/store"
)

var _ = Describe("BugService", func() {
	var (
		ctx      context.Context
		bugs     *mockBugStore
		producer *mockProducer
		svc      service.BugService
		actor    *model.User
		assignee string
	)

	BeforeEach(func() {
		ctx = context.Background()
		bugs = &mockBugStore{}
		producer = &mockProducer{}
		svc = service.NewBugService(bugs, producer)
		actor = &model.User{ID: 42, Name: "Quinn", Email: "quinn@example.com"}
		assignee = "alex"

		Expect(id.Init(1)).To(Succeed())
	})

	Describe("Create", func() {
		It("starts the bug as open and records the actor as reporter", func() {
			var saved *model.Bug
			bugs.createFn = func(_ context.Context, b *model.Bug) error {
				saved = b
				return nil
			}

			bug, err := svc.Create(ctx, actor, service.CreateBugInput{
				Title:       "Login button unresponsive",
				Description: "Clicking login does nothing on Safari",
				Severity:    model.SeverityHigh,
				Priority:    model.BugPriorityUrgent,
				Assignee:    &assignee,
				Steps:       []string{"Open login page", "Click login"},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(bug.ID).NotTo(BeZero())
			Expect(bug.Status).To(Equal(model.BugStatusOpen))
			Expect(bug.Reporter).To(Equal("quinn@example.com"))
			Expect(saved).To(BeIdenticalTo(bug))

			Expect(producer.events).To(HaveLen(1))
			Expect(producer.events[0].Type).To(Equal(queue.EventBugCreated))
			Expect(*producer.events[0].ActorID).To(Equal(int64(42)))
		})

		It("falls back to the unknown reporter when the actor has no email", func() {
			actor.Email = ""
			bug, err := svc.Create(ctx, actor, service.CreateBugInput{Title: "Crash on save"})

			Expect(err).NotTo(HaveOccurred())
			Expect(bug.Reporter).To(Equal(model.UnknownReporter))
		})

		It("rejects an anonymous caller without touching the store", func() {
			_, err := svc.Create(ctx, nil, service.CreateBugInput{Title: "Crash on save"})

			Expect(err).To(MatchError(service.ErrUnauthenticated))
			Expect(bugs.calls).To(BeZero())
			Expect(producer.events).To(BeEmpty())
		})

		It("still succeeds when the event cannot be published", func() {
			producer.publishFn = func(context.Context, queue.Event) error {
				return errors.New("redis down")
			}

			_, err := svc.Create(ctx, actor, service.CreateBugInput{Title: "Crash on save"})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Update", func() {
		It("rejects an empty update", func() {
			_, err := svc.Update(ctx, actor, 1, model.BugUpdate{})
			Expect(err).To(MatchError(service.ErrEmptyUpdate))
			Expect(bugs.calls).To(BeZero())
		})

		It("maps a missing bug to ErrBugNotFound", func() {
			title := "New title"
			_, err := svc.Update(ctx, actor, 7, model.BugUpdate{Title: &title})
			Expect(err).To(MatchError(service.ErrBugNotFound))
		})

		It("passes only the provided fields through", func() {
			status := model.BugStatusResolved
			var got model.BugUpdate
			bugs.updateFn = func(_ context.Context, id int64, upd model.BugUpdate) (*model.Bug, error) {
				got = upd
				return &model.Bug{ID: id, Status: *upd.Status}, nil
			}

			bug, err := svc.Update(ctx, actor, 7, model.BugUpdate{Status: &status})

			Expect(err).NotTo(HaveOccurred())
			Expect(bug.Status).To(Equal(model.BugStatusResolved))
			Expect(got.Title).To(BeNil())
			Expect(got.Assignee).To(BeNil())
		})
	})

	Describe("UpdateStatus", func() {
		It("publishes the new status", func() {
			bugs.updateStatusFn = func(_ context.Context, id int64, status model.BugStatus) (*model.Bug, error) {
				return &model.Bug{ID: id, Status: status}, nil
			}

			_, err := svc.UpdateStatus(ctx, actor, 9, model.BugStatusClosed)

			Expect(err).NotTo(HaveOccurred())
			Expect(producer.events).To(HaveLen(1))
			Expect(producer.events[0].Type).To(Equal(queue.EventBugStatusChanged))
			Expect(producer.events[0].Status).To(Equal("closed"))
		})
	})

	Describe("Delete", func() {
		It("maps a missing bug to ErrBugNotFound", func() {
			bugs.deleteFn = func(context.Context, int64) error { return store.ErrNotFound }

			err := svc.Delete(ctx, actor, 3)
			Expect(err).To(MatchError(service.ErrBugNotFound))
			Expect(producer.events).To(BeEmpty())
		})

		It("requires an actor", func() {
			Expect(svc.Delete(ctx, nil, 3)).To(MatchError(service.ErrUnauthenticated))
			Expect(bugs.calls).To(BeZero())
		})
	})

	Describe("Search", func() {
		It("returns nothing for a blank term", func() {
			res, err := svc.Search(ctx, "   ", nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeEmpty())
			Expect(bugs.calls).To(BeZero())
		})

		It("caps results at the search limit", func() {
			var gotLimit int
			bugs.searchFn = func(_ context.Context, term string, _ *model.BugStatus, limit int) ([]model.Bug, error) {
				gotLimit = limit
				return []model.Bug{{ID: 1, Title: term}}, nil
			}

			res, err := svc.Search(ctx, "login", nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(HaveLen(1))
			Expect(gotLimit).To(Equal(service.SearchLimit))
		})
	})

	Describe("DetectDuplicates", func() {
		It("groups in the order bugs were filed", func() {
			bugs.listFn = func(context.Context, model.BugFilter) ([]model.Bug, error) {
				// newest first, as the store lists them
				return []model.Bug{
					{ID: 3, Title: "Unrelated"},
					{ID: 2, Title: "Login broken"},
					{ID: 1, Title: "login broken"},
				}, nil
			}

			groups, err := svc.DetectDuplicates(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(groups).To(HaveLen(1))
			Expect(groups[0].Type).To(Equal(model.DuplicateTypeTitle))
			Expect(groups[0].Value).To(Equal("login broken"))
			Expect(groups[0].Bugs[0].ID).To(Equal(int64(1)))
			Expect(groups[0].Bugs[1].ID).To(Equal(int64(2)))
		})
	})
})
