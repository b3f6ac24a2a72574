package models

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultFrameID is the free "no frame" cosmetic every user owns.
const DefaultFrameID = "frame_0"

// FrameCurrency is the balance a frame purchase debits.
type FrameCurrency string

const (
	CurrencyCoin    FrameCurrency = "coin"
	CurrencyDiamond FrameCurrency = "diamond"
)

// Frame is a cosmetic avatar border. One is equipped at a time; ownership
// is permanent once purchased.
type Frame struct {
	ID       string
	Name     string
	Tier     string
	Cost     int
	Currency FrameCurrency
}

// FrameCurrencyFor derives the pricing tier from a frame id's numeric
// suffix: 1-10 are coin-priced, everything else (including the free
// frame_0, which is always owned) is diamond-priced.
func FrameCurrencyFor(frameID string) FrameCurrency {
	parts := strings.Split(frameID, "_")
	if len(parts) < 2 {
		return CurrencyDiamond
	}
	idx, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return CurrencyDiamond
	}
	if idx >= 1 && idx <= 10 {
		return CurrencyCoin
	}
	return CurrencyDiamond
}

var legendaryFrames = []string{"Ejderha", "Zümrüt Taht", "Altın Kanat", "Gece Alevi", "Yıldız Tozu"}

// FrameCatalog lists every purchasable frame: ten basic coin frames, then
// gradient, neon and epic diamond tiers, then the legendary set.
func FrameCatalog() []Frame {
	frames := []Frame{{ID: DefaultFrameID, Name: "Çerçevesiz", Tier: "basic", Cost: 0, Currency: CurrencyCoin}}
	for i := 1; i <= 10; i++ {
		frames = append(frames, Frame{
			ID: fmt.Sprintf("frame_%d", i), Name: fmt.Sprintf("Renk %d", i),
			Tier: "basic", Cost: 500, Currency: CurrencyCoin,
		})
	}
	for i := 1; i <= 10; i++ {
		frames = append(frames, Frame{
			ID: fmt.Sprintf("frame_%d", i+10), Name: fmt.Sprintf("Gradyan %d", i),
			Tier: "gradient", Cost: 50, Currency: CurrencyDiamond,
		})
	}
	for i := 1; i <= 10; i++ {
		frames = append(frames, Frame{
			ID: fmt.Sprintf("frame_%d", i+20), Name: fmt.Sprintf("Neon %d", i),
			Tier: "neon", Cost: 100, Currency: CurrencyDiamond,
		})
	}
	for i := 1; i <= 10; i++ {
		frames = append(frames, Frame{
			ID: fmt.Sprintf("frame_%d", i+30), Name: fmt.Sprintf("Özel %d", i),
			Tier: "epic", Cost: 250, Currency: CurrencyDiamond,
		})
	}
	for i, name := range legendaryFrames {
		frames = append(frames, Frame{
			ID: fmt.Sprintf("frame_%d", i+41), Name: name,
			Tier: "legendary", Cost: 500, Currency: CurrencyDiamond,
		})
	}
	return frames
}

// FindFrame looks up a frame definition by id.
func FindFrame(frameID string) (Frame, bool) {
	for _, f := range FrameCatalog() {
		if f.ID == frameID {
			return f, true
		}
	}
	return Frame{}, false
}
