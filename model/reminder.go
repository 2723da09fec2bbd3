package model

// ReminderConfig is the client-local reminder preference record. Actual
// notification delivery happens in the UI layer.
type ReminderConfig struct {
	Enabled    bool   `json:"enabled"`
	Time       string `json:"time"` // "morning", "afternoon" or "evening"
	Subscribed bool   `json:"subscribed"`
}
