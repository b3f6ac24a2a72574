package models

import "time"

// TaskType classifies a schedule entry.
type TaskType string

const (
	TaskTypeClass TaskType = "class"
	TaskTypeStudy TaskType = "study"
	TaskTypeBreak TaskType = "break"
)

// DailyTaskPrefix marks tasks synthesized by the daily assignment check.
const DailyTaskPrefix = "daily-task-"

// Task is a schedule entry: a class, a self-study block or a break.
// Times are zero-padded HH:mm strings, so lexicographic comparison equals
// chronological comparison.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle,omitempty"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Type      TaskType `json:"type"`
	Completed bool     `json:"completed"`
	Color     string   `json:"color,omitempty"`
	DayIndex  int      `json:"dayIndex,omitempty"`
	Date      string   `json:"date,omitempty"`
	Reminder  bool     `json:"reminder,omitempty"`
}

// IsDaily reports whether this task was created by the daily assignment.
func (t Task) IsDaily() bool {
	return len(t.ID) >= len(DailyTaskPrefix) && t.ID[:len(DailyTaskPrefix)] == DailyTaskPrefix
}

// ValidTimeRange reports whether the start time precedes the end time.
func (t Task) ValidTimeRange() bool {
	return t.StartTime < t.EndTime
}

// DayStamp returns the calendar-day string used to key daily tasks.
func DayStamp(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}

// WeekdayIndex maps a time to the schedule's day index, 0=Monday..6=Sunday.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
