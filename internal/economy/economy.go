// Package economy holds the pure currency and streak computations. Every
// function takes a User value and returns the updated copy; persisting the
// result is the roster service's job.
package economy

import (
	"time"

	"focusapp/internal/models"
)

const (
	// CoinsPerStreakDay is multiplied by the new streak for the daily reward.
	CoinsPerStreakDay = 10

	// StreakDiamondBonus is granted every 7th day and on day 31.
	StreakDiamondBonus = 10

	// MaxStreak is the last streak day before the counter wraps to 1.
	MaxStreak = 31

	claimCooldownHours = 24
	streakBreakHours   = 48
	millisPerHour      = 60 * 60 * 1000
)

// BonusResult describes a successful daily bonus claim.
type BonusResult struct {
	Streak   int
	Coins    int
	Diamonds int
}

// ClaimDailyBonus applies the daily streak bonus. The claim is rejected
// inside the 24h cooldown; a gap over 48h resets the streak to 1; the
// streak wraps to 1 past MaxStreak. Reward is streak×10 coins, plus 10
// diamonds on every 7th day and on day 31.
func ClaimDailyBonus(u models.User, now time.Time) (models.User, BonusResult, bool) {
	nowMillis := now.UnixMilli()
	lastClaim := u.LastBonusClaimTime
	hoursSince := float64(nowMillis-lastClaim) / millisPerHour

	if lastClaim != 0 && hoursSince < claimCooldownHours {
		return u, BonusResult{}, false
	}

	newStreak := u.Streak
	if hoursSince > streakBreakHours {
		newStreak = 1
	} else if lastClaim != 0 {
		newStreak = u.Streak + 1
	}
	if newStreak > MaxStreak {
		newStreak = 1
	}

	coinReward := newStreak * CoinsPerStreakDay
	diamondReward := 0
	if newStreak%7 == 0 || newStreak == MaxStreak {
		diamondReward = StreakDiamondBonus
	}

	u.Coins += coinReward
	u.Diamonds += diamondReward
	u.Streak = newStreak
	u.LastBonusClaimTime = nowMillis

	return u, BonusResult{Streak: newStreak, Coins: coinReward, Diamonds: diamondReward}, true
}

// SpendCoins debits exactly amount, or refuses when the balance is short.
func SpendCoins(u models.User, amount int) (models.User, bool) {
	if u.Coins < amount {
		return u, false
	}
	u.Coins -= amount
	return u, true
}

// EarnCoins credits coins unconditionally (quiz rewards and similar).
func EarnCoins(u models.User, amount int) models.User {
	u.Coins += amount
	return u
}

// BuyDiamonds credits diamonds unconditionally. Payment is simulated, so
// the purchase always succeeds.
func BuyDiamonds(u models.User, amount int) models.User {
	u.Diamonds += amount
	return u
}

// ExchangeDiamonds trades diamondCost diamonds for coinReward coins. Rates
// are caller-supplied, not fixed here.
func ExchangeDiamonds(u models.User, diamondCost, coinReward int) (models.User, bool) {
	if u.Diamonds < diamondCost {
		return u, false
	}
	u.Diamonds -= diamondCost
	u.Coins += coinReward
	return u, true
}

// BuyFrame purchases and equips a frame. An already-owned frame is never
// charged again. The frame id's numeric suffix decides which balance pays.
func BuyFrame(u models.User, frameID string, cost int) (models.User, bool) {
	if u.OwnsFrame(frameID) {
		return u, false
	}

	switch models.FrameCurrencyFor(frameID) {
	case models.CurrencyCoin:
		if u.Coins < cost {
			return u, false
		}
		u.Coins -= cost
	default:
		if u.Diamonds < cost {
			return u, false
		}
		u.Diamonds -= cost
	}

	owned := make([]string, 0, len(u.OwnedFrames)+1)
	owned = append(owned, u.OwnedFrames...)
	u.OwnedFrames = append(owned, frameID)
	u.FrameID = frameID
	return u, true
}

// EquipFrame equips an owned frame; unowned frames are ignored.
func EquipFrame(u models.User, frameID string) (models.User, bool) {
	if !u.OwnsFrame(frameID) {
		return u, false
	}
	u.FrameID = frameID
	return u, true
}
