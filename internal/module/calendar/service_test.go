package calendar

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/simp-lee/pagination"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/pkg"
)

type fakeEventRepo struct {
	events map[uint]*domain.Event
	nextID uint
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uint]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) Create(_ context.Context, e *domain.Event) error {
	e.ID = f.nextID
	f.nextID++
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id uint) (*domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) List(_ context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Event], error) {
	var items []domain.Event
	for _, e := range f.events {
		items = append(items, *e)
	}
	return pkg.NewPage(items, int64(len(items)), req), nil
}

func (f *fakeEventRepo) ListRange(_ context.Context, from, to time.Time) ([]domain.Event, error) {
	var events []domain.Event
	for _, e := range f.events {
		if !e.StartsAt.After(to) && !e.EndsAt.Before(from) {
			events = append(events, *e)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartsAt.Before(events[j].StartsAt) })
	return events, nil
}

func (f *fakeEventRepo) Update(_ context.Context, e *domain.Event) error {
	if _, ok := f.events[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.events, id)
	return nil
}

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestCreateEvent_Validation(t *testing.T) {
	svc := NewService(newFakeEventRepo())

	tests := []struct {
		name  string
		event domain.Event
	}{
		{"blank title", domain.Event{Title: "  ", StartsAt: at(2026, 3, 1, 9), EndsAt: at(2026, 3, 1, 10)}},
		{"missing times", domain.Event{Title: "Standup"}},
		{"end before start", domain.Event{Title: "Standup", StartsAt: at(2026, 3, 1, 10), EndsAt: at(2026, 3, 1, 9)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateEvent(context.Background(), &tt.event); !domain.IsValidation(err) {
				t.Errorf("CreateEvent() error = %v; want validation error", err)
			}
		})
	}
}

func TestListRange(t *testing.T) {
	svc := NewService(newFakeEventRepo())

	mk := func(title string, start, end time.Time) {
		t.Helper()
		if _, err := svc.CreateEvent(context.Background(), &domain.Event{
			Title: title, StartsAt: start, EndsAt: end, CreatedBy: 1,
		}); err != nil {
			t.Fatalf("CreateEvent(%q) error = %v", title, err)
		}
	}

	mk("February review", at(2026, 2, 27, 9), at(2026, 2, 27, 10))
	mk("All hands", at(2026, 3, 5, 14), at(2026, 3, 5, 15))
	mk("Conference", at(2026, 3, 30, 0), at(2026, 4, 2, 0)) // spans the boundary
	mk("April kickoff", at(2026, 4, 10, 9), at(2026, 4, 10, 10))

	events, err := svc.ListRange(context.Background(), at(2026, 3, 1, 0), at(2026, 3, 31, 23))
	if err != nil {
		t.Fatalf("ListRange() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d; want 2", len(events))
	}
	if events[0].Title != "All hands" || events[1].Title != "Conference" {
		t.Errorf("events = %q, %q", events[0].Title, events[1].Title)
	}
}

func TestListRange_Validation(t *testing.T) {
	svc := NewService(newFakeEventRepo())

	if _, err := svc.ListRange(context.Background(), at(2026, 3, 31, 0), at(2026, 3, 1, 0)); !domain.IsValidation(err) {
		t.Errorf("inverted range error = %v; want validation error", err)
	}
	if _, err := svc.ListRange(context.Background(), at(2026, 1, 1, 0), at(2027, 6, 1, 0)); !domain.IsValidation(err) {
		t.Errorf("oversized range error = %v; want validation error", err)
	}
}

func TestUpdateEvent_PreservesCreator(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewService(repo)

	created, err := svc.CreateEvent(context.Background(), &domain.Event{
		Title: "All hands", StartsAt: at(2026, 3, 5, 14), EndsAt: at(2026, 3, 5, 15), CreatedBy: 7,
	})
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	update := domain.Event{
		Title: "All hands (moved)", StartsAt: at(2026, 3, 6, 14), EndsAt: at(2026, 3, 6, 15), CreatedBy: 99,
	}
	update.ID = created.ID

	got, err := svc.UpdateEvent(context.Background(), &update)
	if err != nil {
		t.Fatalf("UpdateEvent() error = %v", err)
	}
	if got.CreatedBy != 7 {
		t.Errorf("created_by = %d; want original creator 7", got.CreatedBy)
	}
	if got.Title != "All hands (moved)" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestDeleteEvent_NotFound(t *testing.T) {
	svc := NewService(newFakeEventRepo())

	if err := svc.DeleteEvent(context.Background(), 99); !domain.IsNotFound(err) {
		t.Errorf("DeleteEvent() error = %v; want not found", err)
	}
}
