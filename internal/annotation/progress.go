package annotation

import "annotation-review/internal/domain"

// Aggregate folds tasks into progress counts.
//
// Counts overlap: a rejected task counts toward NeedReview and is excluded
// from Completed and Verified, while Missing only tracks whether a completed
// event exists at all.
func Aggregate(tasks []domain.Task) domain.ProgressSummary {
	summary := domain.ProgressSummary{Total: len(tasks)}
	for _, task := range tasks {
		f := scan(task.StatusEvents)

		if f.verified && !f.rejected {
			summary.Verified++
		}
		if f.completed && !f.rejected {
			summary.Completed++
		}
		if !f.completed {
			summary.Missing++
		}
		if f.rejected {
			summary.NeedReview++
		}
	}
	return summary
}
