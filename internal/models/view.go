package models

// ViewState identifies which screen the application is showing. Onboarding
// is the initial state unless a valid persisted session exists; logout is
// the only transition back to Auth from downstream states.
type ViewState string

const (
	ViewOnboarding ViewState = "ONBOARDING"
	ViewAuth       ViewState = "AUTH"
	ViewDashboard  ViewState = "DASHBOARD"
	ViewCalendar   ViewState = "CALENDAR"
	ViewCreate     ViewState = "CREATE"
	ViewAddExam    ViewState = "ADD_EXAM"
	ViewProfile    ViewState = "PROFILE"
	ViewAnalytics  ViewState = "ANALYTICS"
	ViewDailyBonus ViewState = "DAILY_BONUS"
	ViewStudents   ViewState = "STUDENTS"
	ViewAiTest     ViewState = "AI_TEST"
	ViewAiVideo    ViewState = "AI_VIDEO"
	ViewAiSolver   ViewState = "AI_SOLVER"
)
