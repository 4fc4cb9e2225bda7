package salesperson

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	domain "salestrack/internal/domain/salesperson"
	"salestrack/internal/feed"
	"salestrack/internal/logger"
	appErrors "salestrack/pkg/errors"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type fakeRepo struct {
	people map[uint]*domain.Salesperson
}

func newFakeRepo(people ...*domain.Salesperson) *fakeRepo {
	repo := &fakeRepo{people: make(map[uint]*domain.Salesperson)}
	for _, sp := range people {
		repo.people[sp.ID] = sp
	}
	return repo
}

func (r *fakeRepo) List(context.Context) ([]domain.Salesperson, error) {
	return nil, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*domain.Salesperson, error) {
	sp, ok := r.people[id]
	if !ok {
		return nil, appErrors.NewAppError("SALESPERSON_NOT_FOUND", "Salesperson not found", appErrors.ErrSalespersonNotFound)
	}
	copied := *sp
	return &copied, nil
}

func (r *fakeRepo) Create(_ context.Context, sp *domain.Salesperson) error {
	sp.ID = uint(len(r.people) + 1)
	r.people[sp.ID] = sp
	return nil
}

func (r *fakeRepo) Update(_ context.Context, sp *domain.Salesperson) error {
	r.people[sp.ID] = sp
	return nil
}

func (r *fakeRepo) UpdatePosition(_ context.Context, id uint, latitude, longitude float64, at time.Time) error {
	sp := r.people[id]
	sp.Latitude = &latitude
	sp.Longitude = &longitude
	sp.LastUpdated = &at
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uint) error {
	delete(r.people, id)
	return nil
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestCreateRejectsPartialPosition(t *testing.T) {
	svc := NewService(newFakeRepo(), feed.NopBroker{})

	_, err := svc.Create(context.Background(), &CreateSalespersonRequest{
		Name:     "Ana",
		Latitude: floatPtr(12.13),
	})
	if err == nil {
		t.Fatal("latitude without longitude was accepted")
	}

	appErr, ok := err.(*appErrors.AppError)
	if !ok || appErr.Code != "PARTIAL_POSITION" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateWithoutPositionLeavesItUnset(t *testing.T) {
	svc := NewService(newFakeRepo(), feed.NopBroker{})

	sp, err := svc.Create(context.Background(), &CreateSalespersonRequest{Name: "Ana"})
	if err != nil {
		t.Fatal(err)
	}

	if sp.HasPosition() {
		t.Fatal("position set without coordinates")
	}
	if sp.LastUpdated != nil {
		t.Fatal("LastUpdated set without a position")
	}
	if sp.Status != domain.StatusActive {
		t.Fatalf("expected default status active, got %s", sp.Status)
	}
}

func TestCreateWithPositionStampsLastUpdated(t *testing.T) {
	svc := NewService(newFakeRepo(), feed.NopBroker{})

	sp, err := svc.Create(context.Background(), &CreateSalespersonRequest{
		Name:      "Ana",
		Latitude:  floatPtr(12.13),
		Longitude: floatPtr(-86.25),
	})
	if err != nil {
		t.Fatal(err)
	}

	if !sp.HasPosition() || sp.LastUpdated == nil {
		t.Fatalf("position or LastUpdated missing: %+v", sp)
	}
}

func TestUpdateLocation(t *testing.T) {
	repo := newFakeRepo(&domain.Salesperson{ID: 1, Name: "Ana", Status: domain.StatusActive})
	svc := NewService(repo, feed.NopBroker{})

	err := svc.UpdateLocation(context.Background(), 1, &UpdateLocationRequest{
		Latitude:  floatPtr(12.10),
		Longitude: floatPtr(-86.20),
	})
	if err != nil {
		t.Fatal(err)
	}

	sp := repo.people[1]
	if sp.Latitude == nil || *sp.Latitude != 12.10 {
		t.Fatalf("latitude not applied: %+v", sp)
	}
	if sp.LastUpdated == nil {
		t.Fatal("LastUpdated not stamped")
	}
}

func TestUpdateLocationRejectsOutOfRange(t *testing.T) {
	repo := newFakeRepo(&domain.Salesperson{ID: 1, Name: "Ana"})
	svc := NewService(repo, feed.NopBroker{})

	err := svc.UpdateLocation(context.Background(), 1, &UpdateLocationRequest{
		Latitude:  floatPtr(95),
		Longitude: floatPtr(-86.20),
	})
	if err == nil {
		t.Fatal("out-of-range latitude accepted")
	}
}
