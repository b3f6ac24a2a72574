package models

// DefaultAvatarURL is the avatar assigned to the seeded user and to new
// registrations until the profile is edited.
const DefaultAvatarURL = "https://lh3.googleusercontent.com/aida-public/AB6AXuCixog0ga1gyp8KvF1wLdMDYPneLaJm_RyolUjv5Lbkl_r_f3vC7F2TK3yEbEH7KtSM4-7snlGLANiUvGt7U17ZOLKPa333uRdzc23HY2Fkb7S-EJwjCLdK16QmfubNUcreL5lqocir4QgMFqCMjiJC8si_fDeqeBP-M6o1Xb6kHrIitiLWbllOFh4ma4DC-w5yckvGBR6Pg79YQI9n8d-cMIA3MzE9PkiudcLe2OXa_rjFgAgGNBqGR2oK-sd9jz2Qsm5-xrTyrcc"

// Goal is a free-text personal objective owned by a user.
type Goal struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// User represents a student profile in the roster.
// The password is stored and compared in plaintext; legacy records may
// carry none at all.
type User struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Password           string   `json:"password,omitempty"`
	SchoolNumber       string   `json:"schoolNumber,omitempty"`
	ClassName          string   `json:"className,omitempty"`
	Grade              int      `json:"grade,omitempty"`
	AvatarURL          string   `json:"avatarUrl"`
	Progress           int      `json:"progress"`
	TotalTasks         int      `json:"totalTasks"`
	CompletedTasks     int      `json:"completedTasks"`
	Email              string   `json:"email,omitempty"`
	AverageScore       int      `json:"averageScore"`
	Coins              int      `json:"coins"`
	Diamonds           int      `json:"diamonds"`
	LastBonusClaimTime int64    `json:"lastBonusClaimTime"`
	Streak             int      `json:"streak"`
	FrameID            string   `json:"frameId"`
	OwnedFrames        []string `json:"ownedFrames"`
	Goals              []Goal   `json:"goals"`
}

// OwnsFrame reports whether the user owns the given frame.
func (u User) OwnsFrame(frameID string) bool {
	for _, id := range u.OwnedFrames {
		if id == frameID {
			return true
		}
	}
	return false
}

// DefaultUser returns the seeded profile used when no roster has been
// persisted yet. New registrations also start from this record.
func DefaultUser() User {
	return User{
		ID:           "student-1",
		Name:         "Öğrenci",
		Password:     "1234",
		SchoolNumber: "1234",
		ClassName:    "12-A",
		Grade:        9,
		AvatarURL:    DefaultAvatarURL,
		AverageScore: 78,
		Coins:        100,
		Diamonds:     50,
		Streak:       1,
		FrameID:      DefaultFrameID,
		OwnedFrames:  []string{DefaultFrameID},
		Goals:        []Goal{},
	}
}
