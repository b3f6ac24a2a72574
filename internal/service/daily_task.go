package service

import (
	"time"

	"github.com/google/uuid"

	"focusapp/internal/models"
)

// Picker selects an index in [0, n). The default is math/rand; tests plug
// in a deterministic one.
type Picker func(n int) int

// Grade-banded pools for the automatically assigned daily task. The
// strings are presentation data, mirrored from the product copy.
var (
	primaryDailyTasks = []string{
		"20 Sayfa Kitap Oku",
		"Çarpım Tablosu Çalış",
		"10 Toplama İşlemi Yap",
	}
	middleDailyTasks = []string{
		"20 Paragraf Sorusu Çöz",
		"Fen Bilimleri Tekrarı",
		"İngilizce Kelime Çalış",
	}
	highDailyTasks = []string{
		"40 Paragraf Çöz",
		"Matematik Formül Tekrarı",
		"Bir Deneme Sınavı Çöz",
		"Edebiyat Notlarını Oku",
	}
)

// dailyPoolFor returns the candidate titles and the band subtitle for a
// grade level. Unknown grades fall into the high-school band.
func dailyPoolFor(grade int) (titles []string, subtitle string) {
	switch {
	case grade >= 1 && grade <= 4:
		return primaryDailyTasks, "İlkokul Günlük Görevi"
	case grade >= 5 && grade <= 8:
		return middleDailyTasks, "Ortaokul Günlük Görevi"
	default:
		return highDailyTasks, "Lise Günlük Görevi"
	}
}

// NewDailyTask synthesizes the once-per-day study task for a grade level:
// a fixed 18:00-19:00 slot with a reminder, titled from the grade band's
// pool via the given picker.
func NewDailyTask(grade int, now time.Time, pick Picker) models.Task {
	titles, subtitle := dailyPoolFor(grade)

	return models.Task{
		ID:        models.DailyTaskPrefix + uuid.New().String(),
		Title:     titles[pick(len(titles))],
		Subtitle:  subtitle,
		StartTime: "18:00",
		EndTime:   "19:00",
		Type:      models.TaskTypeStudy,
		Color:     "purple",
		DayIndex:  models.WeekdayIndex(now),
		Date:      models.DayStamp(now),
		Reminder:  true,
	}
}

// HasDailyTaskFor reports whether a daily task already exists for the
// given calendar-day stamp.
func HasDailyTaskFor(tasks []models.Task, day string) bool {
	for _, t := range tasks {
		if t.IsDaily() && t.Date == day {
			return true
		}
	}
	return false
}
