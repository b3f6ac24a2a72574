package models

// ExamType classifies a graded assessment.
type ExamType string

const (
	ExamTypeWritten     ExamType = "written"
	ExamTypePerformance ExamType = "performance"
	ExamTypeProject     ExamType = "project"
)

// Exam is a graded assessment record. ActualScore is nil until a score is
// entered; it is the only field that mutates after creation.
type Exam struct {
	ID          string   `json:"id"`
	Subject     string   `json:"subject"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Time        string   `json:"time"` // HH:mm
	Type        ExamType `json:"type"`
	TargetScore int      `json:"targetScore"`
	ActualScore *int     `json:"actualScore,omitempty"`
}

// Scored reports whether an actual score has been entered.
func (e Exam) Scored() bool {
	return e.ActualScore != nil
}
