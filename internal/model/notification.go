package model

// Channels toggles delivery per channel.
type Channels struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

// GlobalChannels are channel toggles applied to every notification kind.
type GlobalChannels struct {
	Channels
	MuteAll bool `json:"muteAll"`
}

// QuietHours suppresses notifications between Start and End (HH:mm).
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// NotificationSettings are per-kind notification preferences.
type NotificationSettings struct {
	Mentions   Channels       `json:"mentions"`
	Comments   Channels       `json:"comments"`
	Follows    Channels       `json:"follows"`
	Logins     Channels       `json:"logins"`
	Global     GlobalChannels `json:"global"`
	QuietHours QuietHours     `json:"quietHours"`
	Language   string         `json:"language"`
}

// DefaultNotificationSettings returns settings given to new identities.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Mentions: Channels{Email: true, Push: true},
		Comments: Channels{Email: true, Push: true},
		Follows:  Channels{Email: true, Push: true},
		Logins:   Channels{Email: true, SMS: true},
		Global:   GlobalChannels{Channels: Channels{Email: true, Push: true}},
		QuietHours: QuietHours{
			Start: "22:00",
			End:   "08:00",
		},
		Language: "fa",
	}
}
