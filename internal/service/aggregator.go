package service

import (
	"math"

	"focusapp/internal/models"
)

// TaskProgress derives the completion counters for a task collection:
// completed count, total count, and the rounded percentage (0 when there
// are no tasks).
func TaskProgress(tasks []models.Task) (completed, total, progress int) {
	total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	progress = int(math.Round(float64(completed) / float64(total) * 100))
	return completed, total, progress
}

// AverageExamScore returns the rounded mean over all exams that carry an
// actual score, or 0 when none have been scored yet.
func AverageExamScore(exams []models.Exam) int {
	sum := 0
	count := 0
	for _, e := range exams {
		if e.Scored() {
			sum += *e.ActualScore
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}
