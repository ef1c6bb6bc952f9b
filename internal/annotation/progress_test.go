package annotation

import (
	"testing"

	"github.com/google/uuid"

	"annotation-review/internal/domain"
)

// TestAggregateOverlappingCounts checks the reference three-task collection.
func TestAggregateOverlappingCounts(t *testing.T) {
	tasks := []domain.Task{
		{ID: uuid.New(), StatusEvents: events(domain.StatusStateCompleted)},
		{ID: uuid.New()},
		{ID: uuid.New(), StatusEvents: events(domain.StatusStateRejected, domain.StatusStateCompleted)},
	}

	got := Aggregate(tasks)
	want := domain.ProgressSummary{
		Total:      3,
		Missing:    1,
		Completed:  1,
		Verified:   0,
		NeedReview: 1,
	}
	if got != want {
		t.Fatalf("Aggregate() = %+v, want %+v", got, want)
	}
}

// TestAggregateRejectedWithoutCompletion checks a task can be missing and need review.
func TestAggregateRejectedWithoutCompletion(t *testing.T) {
	tasks := []domain.Task{
		{ID: uuid.New(), StatusEvents: events(domain.StatusStateRejected)},
		{ID: uuid.New(), StatusEvents: events(domain.StatusStateVerified, domain.StatusStateCompleted)},
		{ID: uuid.New(), StatusEvents: events(domain.StatusStateVerified)},
		{ID: uuid.New(), StatusEvents: events(domain.StatusStateAssigned)},
	}

	got := Aggregate(tasks)
	want := domain.ProgressSummary{
		Total:      4,
		Missing:    3,
		Completed:  1,
		Verified:   2,
		NeedReview: 1,
	}
	if got != want {
		t.Fatalf("Aggregate() = %+v, want %+v", got, want)
	}
}

// TestAggregateTotal checks total always equals the collection size.
func TestAggregateTotal(t *testing.T) {
	for _, n := range []int{0, 1, 7, 50} {
		tasks := make([]domain.Task, n)
		for i := range tasks {
			if i%2 == 0 {
				tasks[i].StatusEvents = events(domain.StatusStateCompleted)
			}
		}
		if got := Aggregate(tasks).Total; got != n {
			t.Fatalf("total = %d, want %d", got, n)
		}
	}
}
