package annotation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"annotation-review/internal/domain"
)

// ErrTaskNotFound is returned when a task search has no match.
var ErrTaskNotFound = errors.New("task not found")

// Bullet is one entry of the task map with its display status.
type Bullet struct {
	ID        uuid.UUID              `json:"uuid"`
	Status    domain.CanonicalStatus `json:"status"`
	CreatedOn time.Time              `json:"created_on"`
	Current   bool                   `json:"current"`
}

// Find returns the task whose UUID matches query.
// Malformed and unknown identifiers both report ErrTaskNotFound.
func Find(tasks []domain.Task, query string) (domain.Task, error) {
	id, err := uuid.Parse(strings.TrimSpace(query))
	if err != nil {
		return domain.Task{}, ErrTaskNotFound
	}

	task, ok := lo.Find(tasks, func(t domain.Task) bool {
		return t.ID == id
	})
	if !ok {
		return domain.Task{}, ErrTaskNotFound
	}
	return task, nil
}

// Position returns the 1-based index of the task with the given id.
func Position(tasks []domain.Task, id uuid.UUID) (int, bool) {
	_, index, ok := lo.FindIndexOf(tasks, func(t domain.Task) bool {
		return t.ID == id
	})
	if !ok {
		return 0, false
	}
	return index + 1, true
}

// Filter keeps tasks whose canonical status is one of statuses, in order.
// With no statuses every task is kept.
func Filter(tasks []domain.Task, statuses ...domain.CanonicalStatus) []domain.Task {
	if len(statuses) == 0 {
		return append([]domain.Task{}, tasks...)
	}

	return lo.Filter(tasks, func(t domain.Task, _ int) bool {
		return lo.Contains(statuses, TaskStatus(t))
	})
}

// Bullets builds task map entries, marking the task matching current.
func Bullets(tasks []domain.Task, current uuid.UUID) []Bullet {
	return lo.Map(tasks, func(t domain.Task, _ int) Bullet {
		return Bullet{
			ID:        t.ID,
			Status:    TaskStatus(t),
			CreatedOn: t.CreatedOn,
			Current:   current != uuid.Nil && t.ID == current,
		}
	})
}
