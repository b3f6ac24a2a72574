package economy

import (
	"testing"
	"time"

	"focusapp/internal/models"
)

func testUser() models.User {
	return models.User{
		ID:          "student-1",
		Name:        "Test",
		Coins:       100,
		Diamonds:    50,
		Streak:      1,
		FrameID:     models.DefaultFrameID,
		OwnedFrames: []string{models.DefaultFrameID},
	}
}

func TestClaimDailyBonusFirstClaim(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	u := testUser()

	updated, result, ok := ClaimDailyBonus(u, now)
	if !ok {
		t.Fatal("first claim must succeed")
	}
	if updated.Coins != 110 {
		t.Errorf("coins = %d, want 110", updated.Coins)
	}
	if updated.Diamonds != 50 {
		t.Errorf("diamonds = %d, want 50", updated.Diamonds)
	}
	if updated.Streak != 1 {
		t.Errorf("streak = %d, want 1", updated.Streak)
	}
	if updated.LastBonusClaimTime != now.UnixMilli() {
		t.Errorf("lastBonusClaimTime = %d, want %d", updated.LastBonusClaimTime, now.UnixMilli())
	}
	if result.Coins != 10 || result.Diamonds != 0 {
		t.Errorf("result = %+v", result)
	}
}

func TestClaimDailyBonusCooldown(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	u := testUser()

	claimed, _, ok := ClaimDailyBonus(u, now)
	if !ok {
		t.Fatal("first claim must succeed")
	}

	tests := []struct {
		name  string
		delay time.Duration
	}{
		{"immediately after", time.Minute},
		{"23 hours later", 23 * time.Hour},
		{"23h59m later", 24*time.Hour - time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after, _, ok := ClaimDailyBonus(claimed, now.Add(tt.delay))
			if ok {
				t.Error("claim inside 24h cooldown must be rejected")
			}
			if after.Coins != claimed.Coins || after.Diamonds != claimed.Diamonds ||
				after.Streak != claimed.Streak || after.LastBonusClaimTime != claimed.LastBonusClaimTime {
				t.Errorf("rejected claim mutated the user: %+v", after)
			}
		})
	}
}

func TestClaimDailyBonusStreakProgression(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	u := testUser()

	// Claim daily for a week; day 7 carries the diamond bonus.
	var diamondsBefore int
	for day := 0; day < 7; day++ {
		diamondsBefore = u.Diamonds
		var ok bool
		var result BonusResult
		u, result, ok = ClaimDailyBonus(u, now.AddDate(0, 0, day))
		if !ok {
			t.Fatalf("day %d claim failed", day+1)
		}
		if result.Streak != day+1 {
			t.Fatalf("day %d streak = %d", day+1, result.Streak)
		}
	}

	if u.Streak != 7 {
		t.Errorf("streak after a week = %d, want 7", u.Streak)
	}
	if u.Diamonds != diamondsBefore+StreakDiamondBonus {
		t.Errorf("day 7 must grant %d diamonds: got %d, had %d", StreakDiamondBonus, u.Diamonds, diamondsBefore)
	}
}

func TestClaimDailyBonusStreakReset(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	u := testUser()
	u.Streak = 12
	u.LastBonusClaimTime = now.UnixMilli()

	updated, result, ok := ClaimDailyBonus(u, now.Add(49*time.Hour))
	if !ok {
		t.Fatal("claim after a 49h gap must succeed")
	}
	if updated.Streak != 1 {
		t.Errorf("streak = %d, want reset to 1", updated.Streak)
	}
	if result.Coins != 10 {
		t.Errorf("reward = %d coins, want 10", result.Coins)
	}
}

func TestClaimDailyBonusStreakWrap(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	u := testUser()
	u.Streak = MaxStreak
	u.LastBonusClaimTime = now.UnixMilli()

	updated, _, ok := ClaimDailyBonus(u, now.Add(25*time.Hour))
	if !ok {
		t.Fatal("claim must succeed")
	}
	if updated.Streak != 1 {
		t.Errorf("streak past %d must wrap to 1, got %d", MaxStreak, updated.Streak)
	}
}

func TestClaimDailyBonusDay31Diamonds(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	u := testUser()
	u.Streak = 30
	u.LastBonusClaimTime = now.UnixMilli()

	updated, result, ok := ClaimDailyBonus(u, now.Add(25*time.Hour))
	if !ok {
		t.Fatal("claim must succeed")
	}
	if updated.Streak != 31 {
		t.Fatalf("streak = %d, want 31", updated.Streak)
	}
	if result.Diamonds != StreakDiamondBonus {
		t.Errorf("day 31 diamond bonus = %d, want %d", result.Diamonds, StreakDiamondBonus)
	}
	if result.Coins != 310 {
		t.Errorf("day 31 coin reward = %d, want 310", result.Coins)
	}
}

func TestSpendCoins(t *testing.T) {
	tests := []struct {
		name      string
		balance   int
		amount    int
		wantOK    bool
		wantCoins int
	}{
		{"exact balance", 100, 100, true, 0},
		{"partial spend", 100, 30, true, 70},
		{"insufficient", 100, 101, false, 100},
		{"zero spend", 100, 0, true, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := testUser()
			u.Coins = tt.balance
			updated, ok := SpendCoins(u, tt.amount)
			if ok != tt.wantOK {
				t.Errorf("SpendCoins() ok = %v, want %v", ok, tt.wantOK)
			}
			if updated.Coins != tt.wantCoins {
				t.Errorf("coins = %d, want %d", updated.Coins, tt.wantCoins)
			}
		})
	}
}

func TestExchangeDiamonds(t *testing.T) {
	u := testUser() // 100 coins, 50 diamonds

	updated, ok := ExchangeDiamonds(u, 10, 500)
	if !ok {
		t.Fatal("exchange with sufficient diamonds must succeed")
	}
	if updated.Diamonds != 40 || updated.Coins != 600 {
		t.Errorf("after exchange: coins=%d diamonds=%d", updated.Coins, updated.Diamonds)
	}

	_, ok = ExchangeDiamonds(u, 51, 100)
	if ok {
		t.Error("exchange beyond the diamond balance must fail")
	}
}

func TestBuyDiamonds(t *testing.T) {
	u := testUser()
	updated := BuyDiamonds(u, 100)
	if updated.Diamonds != 150 {
		t.Errorf("diamonds = %d, want 150", updated.Diamonds)
	}
}

func TestBuyFrame(t *testing.T) {
	t.Run("coin frame", func(t *testing.T) {
		u := testUser()
		u.Coins = 500
		updated, ok := BuyFrame(u, "frame_3", 500)
		if !ok {
			t.Fatal("purchase must succeed")
		}
		if updated.Coins != 0 {
			t.Errorf("coins = %d, want 0", updated.Coins)
		}
		if updated.Diamonds != 50 {
			t.Errorf("diamonds touched on a coin purchase: %d", updated.Diamonds)
		}
		if !updated.OwnsFrame("frame_3") || updated.FrameID != "frame_3" {
			t.Error("frame must be owned and equipped after purchase")
		}
	})

	t.Run("diamond frame", func(t *testing.T) {
		u := testUser()
		updated, ok := BuyFrame(u, "frame_12", 50)
		if !ok {
			t.Fatal("purchase must succeed")
		}
		if updated.Diamonds != 0 {
			t.Errorf("diamonds = %d, want 0", updated.Diamonds)
		}
		if updated.Coins != 100 {
			t.Errorf("coins touched on a diamond purchase: %d", updated.Coins)
		}
	})

	t.Run("already owned never double-charges", func(t *testing.T) {
		u := testUser()
		u.OwnedFrames = append(u.OwnedFrames, "frame_3")
		updated, ok := BuyFrame(u, "frame_3", 500)
		if ok {
			t.Error("buying an owned frame must not report a purchase")
		}
		if updated.Coins != u.Coins || updated.Diamonds != u.Diamonds {
			t.Error("buying an owned frame must not charge")
		}
	})

	t.Run("insufficient balance", func(t *testing.T) {
		u := testUser()
		u.Coins = 100
		updated, ok := BuyFrame(u, "frame_1", 500)
		if ok {
			t.Error("purchase without funds must fail")
		}
		if updated.OwnsFrame("frame_1") {
			t.Error("failed purchase must not grant the frame")
		}
	})
}

func TestEquipFrame(t *testing.T) {
	u := testUser()
	u.OwnedFrames = append(u.OwnedFrames, "frame_5")

	updated, ok := EquipFrame(u, "frame_5")
	if !ok || updated.FrameID != "frame_5" {
		t.Error("equipping an owned frame must succeed")
	}

	updated, ok = EquipFrame(u, "frame_9")
	if ok || updated.FrameID != models.DefaultFrameID {
		t.Error("equipping an unowned frame must be a no-op")
	}
}
