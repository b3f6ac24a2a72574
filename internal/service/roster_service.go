package service

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"focusapp/internal/economy"
	"focusapp/internal/models"
	"focusapp/internal/repository"
	"focusapp/internal/validation"
)

var (
	ErrNameTaken          = errors.New("name already taken")
	ErrInvalidCredentials = errors.New("invalid name or password")
)

// RegistrationBonusCoins is the starting balance granted at registration,
// above the seeded default.
const RegistrationBonusCoins = 150

// RosterService is the single source of truth for the student roster: the
// list of users, which one is active, and the session's task and exam
// collections. Every mutation funnels through updateCurrentUser, which
// persists the whole roster before reporting success, so state is either
// fully committed or untouched.
type RosterService struct {
	repo *repository.RosterRepository

	// clock and pick are swapped out by tests for deterministic time and
	// daily-task selection.
	clock func() time.Time
	pick  Picker

	users   []models.User
	current int
	tasks   []models.Task
	exams   []models.Exam
}

// NewRosterService creates a roster service seeded with the default user.
func NewRosterService(repo *repository.RosterRepository) *RosterService {
	return &RosterService{
		repo:  repo,
		clock: time.Now,
		pick:  rand.Intn,
		users: []models.User{models.DefaultUser()},
	}
}

// RestoreSession loads the persisted roster and decides the initial view.
// Malformed saved data is logged and discarded, never fatal: the service
// falls back to the seeded default roster.
func (s *RosterService) RestoreSession() models.ViewState {
	users, err := s.repo.LoadUsers()
	if err != nil {
		log.Printf("Failed to restore saved roster, starting fresh: %v", err)
		return models.ViewOnboarding
	}
	if len(users) == 0 {
		return models.ViewOnboarding
	}
	s.users = users

	id, ok := s.repo.SessionID()
	if !ok {
		return models.ViewAuth
	}
	idx := s.indexByID(id)
	if idx < 0 {
		// A session id is stored but its user is gone from the roster.
		return models.ViewAuth
	}

	s.current = idx
	s.checkDailyTask()
	return models.ViewDashboard
}

// Register creates a new user and activates it. The name must be unique in
// the roster, compared case-insensitively.
func (s *RosterService) Register(name, password, email string, grade int, rememberMe bool) (models.User, error) {
	if err := validation.ValidateName(name); err != nil {
		return models.User{}, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return models.User{}, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return models.User{}, err
	}
	if err := validation.ValidateGrade(grade); err != nil {
		return models.User{}, err
	}

	for _, u := range s.users {
		if strings.EqualFold(u.Name, name) {
			return models.User{}, ErrNameTaken
		}
	}

	user := models.DefaultUser()
	user.ID = "student-" + uuid.New().String()
	user.Name = name
	user.Password = password
	user.Email = email
	user.Grade = grade
	user.Coins = RegistrationBonusCoins
	user.Goals = []models.Goal{}

	prevCurrent := s.current
	s.users = append(s.users, user)
	s.current = len(s.users) - 1

	if err := s.persist(); err != nil {
		s.users = s.users[:len(s.users)-1]
		s.current = prevCurrent
		return models.User{}, err
	}

	if err := s.repo.SaveSessionID(user.ID, rememberMe); err != nil {
		log.Printf("Failed to save session id: %v", err)
	}
	s.checkDailyTask()
	return user, nil
}

// Login activates the user matching the name (case-insensitive) and the
// exact password.
func (s *RosterService) Login(name, password string, rememberMe bool) (models.User, error) {
	for i, u := range s.users {
		if strings.EqualFold(u.Name, name) && u.Password == password {
			s.current = i
			if err := s.repo.SaveSessionID(u.ID, rememberMe); err != nil {
				log.Printf("Failed to save session id: %v", err)
			}
			s.checkDailyTask()
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Logout clears the persisted session from both stores. The roster and the
// in-memory collections survive; only the session ends.
func (s *RosterService) Logout() models.ViewState {
	if err := s.repo.ClearSessionID(); err != nil {
		log.Printf("Failed to clear session: %v", err)
	}
	return models.ViewAuth
}

// SwitchUser activates another roster member. Unknown ids are ignored. An
// already-persisted session id is overwritten with the new user; a session
// is never created here.
func (s *RosterService) SwitchUser(id string) bool {
	idx := s.indexByID(id)
	if idx < 0 {
		return false
	}
	s.current = idx
	if err := s.repo.UpdateSessionID(id); err != nil {
		log.Printf("Failed to update session id: %v", err)
	}
	s.checkDailyTask()
	return true
}

// CurrentUser returns a copy of the active user.
func (s *RosterService) CurrentUser() models.User {
	return s.users[s.current]
}

// Users returns a copy of the roster.
func (s *RosterService) Users() []models.User {
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Tasks returns a copy of the session's task collection.
func (s *RosterService) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Exams returns a copy of the session's exam collection.
func (s *RosterService) Exams() []models.Exam {
	out := make([]models.Exam, len(s.exams))
	copy(out, s.exams)
	return out
}

// UpdateCurrentUser applies a partial update to the active user and
// persists the roster. This is the sole mutation path: on a persistence
// failure the in-memory state is rolled back and the error returned.
func (s *RosterService) UpdateCurrentUser(apply func(*models.User)) error {
	prev := s.users[s.current]
	apply(&s.users[s.current])
	if err := s.persist(); err != nil {
		s.users[s.current] = prev
		return err
	}
	return nil
}

// replaceCurrentUser swaps in a fully computed user record.
func (s *RosterService) replaceCurrentUser(u models.User) error {
	return s.UpdateCurrentUser(func(cur *models.User) { *cur = u })
}

func (s *RosterService) persist() error {
	if err := s.repo.SaveUsers(s.users); err != nil {
		return fmt.Errorf("failed to persist roster: %w", err)
	}
	return nil
}

func (s *RosterService) indexByID(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// --- tasks ---

// AddTasks appends schedule entries and recomputes the active user's
// progress counters.
func (s *RosterService) AddTasks(tasks []models.Task) error {
	for _, t := range tasks {
		if err := validation.ValidateTimeRange(t.StartTime, t.EndTime); err != nil {
			return err
		}
	}
	s.tasks = append(s.tasks, tasks...)
	return s.recomputeProgress()
}

// ToggleTask flips a task's completed flag and recomputes progress.
// Unknown ids are ignored.
func (s *RosterService) ToggleTask(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return s.recomputeProgress()
		}
	}
	return nil
}

func (s *RosterService) recomputeProgress() error {
	completed, total, progress := TaskProgress(s.tasks)
	return s.UpdateCurrentUser(func(u *models.User) {
		u.CompletedTasks = completed
		u.TotalTasks = total
		u.Progress = progress
	})
}

// checkDailyTask assigns today's automatic study task if the active user
// does not have one yet. It runs on restore, login, registration and user
// switch. Assignment alone does not recompute progress; the original
// behavior defers that to the next task mutation.
func (s *RosterService) checkDailyTask() {
	now := s.clock()
	if HasDailyTaskFor(s.tasks, models.DayStamp(now)) {
		return
	}
	grade := s.users[s.current].Grade
	if grade == 0 {
		grade = 9
	}
	s.tasks = append(s.tasks, NewDailyTask(grade, now, s.pick))
}

// --- exams ---

// AddExam records a new assessment.
func (s *RosterService) AddExam(exam models.Exam) error {
	if err := validation.ValidateScore(exam.TargetScore); err != nil {
		return err
	}
	if exam.ID == "" {
		exam.ID = "exam-" + uuid.New().String()
	}
	s.exams = append(s.exams, exam)
	return nil
}

// SetExamScore enters the actual score for an exam and recomputes the
// active user's average over all scored exams.
func (s *RosterService) SetExamScore(examID string, score int) error {
	if err := validation.ValidateScore(score); err != nil {
		return err
	}
	for i := range s.exams {
		if s.exams[i].ID == examID {
			value := score
			s.exams[i].ActualScore = &value
			average := AverageExamScore(s.exams)
			return s.UpdateCurrentUser(func(u *models.User) {
				u.AverageScore = average
			})
		}
	}
	return nil
}

// --- goals ---

// AddGoal appends a personal objective to the active user.
func (s *RosterService) AddGoal(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	goal := models.Goal{ID: "goal-" + uuid.New().String(), Text: text}
	return s.UpdateCurrentUser(func(u *models.User) {
		u.Goals = append(u.Goals, goal)
	})
}

// ToggleGoal flips a goal's completed flag.
func (s *RosterService) ToggleGoal(id string) error {
	return s.UpdateCurrentUser(func(u *models.User) {
		for i := range u.Goals {
			if u.Goals[i].ID == id {
				u.Goals[i].Completed = !u.Goals[i].Completed
				return
			}
		}
	})
}

// DeleteGoal removes a goal from the active user.
func (s *RosterService) DeleteGoal(id string) error {
	return s.UpdateCurrentUser(func(u *models.User) {
		goals := u.Goals[:0:0]
		for _, g := range u.Goals {
			if g.ID != id {
				goals = append(goals, g)
			}
		}
		u.Goals = goals
	})
}

// --- economy ---

// ClaimDailyBonus claims the streak bonus for the active user.
func (s *RosterService) ClaimDailyBonus() (economy.BonusResult, bool) {
	updated, result, ok := economy.ClaimDailyBonus(s.users[s.current], s.clock())
	if !ok {
		return economy.BonusResult{}, false
	}
	if err := s.replaceCurrentUser(updated); err != nil {
		log.Printf("Failed to persist bonus claim: %v", err)
		return economy.BonusResult{}, false
	}
	return result, true
}

// SpendCoins debits the active user, refusing on insufficient balance.
func (s *RosterService) SpendCoins(amount int) bool {
	updated, ok := economy.SpendCoins(s.users[s.current], amount)
	if !ok {
		return false
	}
	return s.replaceCurrentUser(updated) == nil
}

// EarnCoins credits the active user unconditionally.
func (s *RosterService) EarnCoins(amount int) {
	if err := s.replaceCurrentUser(economy.EarnCoins(s.users[s.current], amount)); err != nil {
		log.Printf("Failed to persist coin reward: %v", err)
	}
}

// BuyDiamonds credits diamonds; the payment itself is simulated.
func (s *RosterService) BuyDiamonds(amount int) bool {
	return s.replaceCurrentUser(economy.BuyDiamonds(s.users[s.current], amount)) == nil
}

// ExchangeDiamonds trades diamonds for coins at the caller-supplied rate.
func (s *RosterService) ExchangeDiamonds(diamondCost, coinReward int) bool {
	updated, ok := economy.ExchangeDiamonds(s.users[s.current], diamondCost, coinReward)
	if !ok {
		return false
	}
	return s.replaceCurrentUser(updated) == nil
}

// BuyFrame purchases a catalog frame for the active user. Buying a frame
// that is already owned degrades to equipping it and reports no purchase.
func (s *RosterService) BuyFrame(frameID string) bool {
	frame, ok := models.FindFrame(frameID)
	if !ok {
		return false
	}
	if s.users[s.current].OwnsFrame(frameID) {
		s.EquipFrame(frameID)
		return false
	}
	updated, ok := economy.BuyFrame(s.users[s.current], frameID, frame.Cost)
	if !ok {
		return false
	}
	return s.replaceCurrentUser(updated) == nil
}

// EquipFrame equips an owned frame.
func (s *RosterService) EquipFrame(frameID string) bool {
	updated, ok := economy.EquipFrame(s.users[s.current], frameID)
	if !ok {
		return false
	}
	return s.replaceCurrentUser(updated) == nil
}
