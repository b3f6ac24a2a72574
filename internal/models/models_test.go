package models

import (
	"testing"
	"time"
)

func TestTaskValidTimeRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{
			name:  "normal morning slot",
			start: "08:00",
			end:   "08:45",
			want:  true,
		},
		{
			name:  "end before start",
			start: "19:00",
			end:   "18:00",
			want:  false,
		},
		{
			name:  "zero-length slot",
			start: "12:30",
			end:   "12:30",
			want:  false,
		},
		{
			name:  "crosses midday",
			start: "09:59",
			end:   "10:00",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{StartTime: tt.start, EndTime: tt.end}
			if got := task.ValidTimeRange(); got != tt.want {
				t.Errorf("ValidTimeRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskIsDaily(t *testing.T) {
	daily := Task{ID: DailyTaskPrefix + "abc123"}
	if !daily.IsDaily() {
		t.Error("expected daily task to report IsDaily")
	}
	manual := Task{ID: "task-abc123"}
	if manual.IsDaily() {
		t.Error("manual task should not report IsDaily")
	}
}

func TestFrameCurrencyFor(t *testing.T) {
	tests := []struct {
		frameID string
		want    FrameCurrency
	}{
		{"frame_1", CurrencyCoin},
		{"frame_10", CurrencyCoin},
		{"frame_11", CurrencyDiamond},
		{"frame_0", CurrencyDiamond},
		{"frame_45", CurrencyDiamond},
		{"garbage", CurrencyDiamond},
	}

	for _, tt := range tests {
		t.Run(tt.frameID, func(t *testing.T) {
			if got := FrameCurrencyFor(tt.frameID); got != tt.want {
				t.Errorf("FrameCurrencyFor(%q) = %v, want %v", tt.frameID, got, tt.want)
			}
		})
	}
}

func TestFrameCatalog(t *testing.T) {
	frames := FrameCatalog()

	if frames[0].ID != DefaultFrameID {
		t.Fatalf("catalog must start with the default frame, got %s", frames[0].ID)
	}
	if frames[0].Cost != 0 {
		t.Errorf("default frame must be free, cost %d", frames[0].Cost)
	}

	seen := make(map[string]bool)
	for _, f := range frames {
		if seen[f.ID] {
			t.Errorf("duplicate frame id %s", f.ID)
		}
		seen[f.ID] = true

		if f.ID == DefaultFrameID {
			continue
		}
		// Catalog pricing must agree with the suffix tier convention.
		if got := FrameCurrencyFor(f.ID); got != f.Currency {
			t.Errorf("frame %s: catalog currency %v, suffix says %v", f.ID, f.Currency, got)
		}
	}
}

func TestUserOwnsFrame(t *testing.T) {
	u := DefaultUser()
	if !u.OwnsFrame(DefaultFrameID) {
		t.Error("default user must own the default frame")
	}
	if u.OwnsFrame("frame_5") {
		t.Error("default user should not own frame_5")
	}
}

func TestDefaultUserEconomy(t *testing.T) {
	u := DefaultUser()
	if u.Coins != 100 || u.Diamonds != 50 || u.Streak != 1 {
		t.Errorf("unexpected starting economy: coins=%d diamonds=%d streak=%d", u.Coins, u.Diamonds, u.Streak)
	}
	if u.LastBonusClaimTime != 0 {
		t.Errorf("fresh user must have no bonus claim, got %d", u.LastBonusClaimTime)
	}
	if u.FrameID != DefaultFrameID {
		t.Errorf("fresh user must equip the default frame, got %s", u.FrameID)
	}
}

func TestDayStamp(t *testing.T) {
	day := time.Date(2026, time.September, 1, 14, 30, 0, 0, time.UTC)
	if got := DayStamp(day); got != "Tue Sep 01 2026" {
		t.Errorf("DayStamp() = %q", got)
	}
	// Same calendar day, different clock time, same stamp.
	later := day.Add(8 * time.Hour)
	if DayStamp(day) != DayStamp(later) {
		t.Error("stamps within one day must match")
	}
}

func TestWeekdayIndex(t *testing.T) {
	monday := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	if got := WeekdayIndex(monday); got != 0 {
		t.Errorf("Monday index = %d, want 0", got)
	}
	sunday := monday.AddDate(0, 0, 6)
	if got := WeekdayIndex(sunday); got != 6 {
		t.Errorf("Sunday index = %d, want 6", got)
	}
}

func TestExamScored(t *testing.T) {
	e := Exam{ID: "exam-1", Subject: "Matematik", TargetScore: 80}
	if e.Scored() {
		t.Error("exam without a score must not report Scored")
	}
	score := 90
	e.ActualScore = &score
	if !e.Scored() {
		t.Error("exam with a score must report Scored")
	}
}
