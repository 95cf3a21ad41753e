package settings

// Settings is a per-user document; writes merge section-wise so a
// client can update one tab without resending the rest. Stored and
// served as JSON, so the shapes carry tags directly.

type Profile struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	DateOfBirth      string `json:"dateOfBirth"` // YYYY-MM-DD
	EmergencyContact string `json:"emergencyContact"`
}

type Notifications struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	SMS       bool `json:"sms"`
	Reminders bool `json:"reminders"`
}

type Accessibility struct {
	HighContrast  bool `json:"highContrast"`
	LargeText     bool `json:"largeText"`
	ScreenReader  bool `json:"screenReader"`
	ReducedMotion bool `json:"reducedMotion"`
}

type Preferences struct {
	Language      string        `json:"language"`
	Country       string        `json:"country"` // ISO code, drives emergency contacts
	Theme         string        `json:"theme"`   // light | dark | system
	Notifications Notifications `json:"notifications"`
	Accessibility Accessibility `json:"accessibility"`
}

type Privacy struct {
	DataSharing bool `json:"dataSharing"`
	Analytics   bool `json:"analytics"`
	Marketing   bool `json:"marketing"`
	ThirdParty  bool `json:"thirdParty"`
}

type Settings struct {
	Profile     Profile     `json:"profile"`
	Preferences Preferences `json:"preferences"`
	Privacy     Privacy     `json:"privacy"`
}

// Defaults is what a user without a stored document sees.
func Defaults() Settings {
	return Settings{
		Preferences: Preferences{
			Language: "en",
			Theme:    "system",
			Notifications: Notifications{
				Email:     true,
				Push:      true,
				Reminders: true,
			},
		},
		Privacy: Privacy{
			Analytics: true,
		},
	}
}
