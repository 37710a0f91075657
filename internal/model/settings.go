package model

// Settings holds user-facing options. Persisted as its own collection.
type Settings struct {
	UserName      string              `json:"userName"`
	Currency      string              `json:"currency"`
	AutoSync      AutoSyncSettings    `json:"autoSync"`
	Notifications NotificationOptions `json:"notifications"`
	Theme         string              `json:"theme"` // "dark" or "light"
}

// AutoSyncSettings toggles the capture channels.
type AutoSyncSettings struct {
	UPI bool `json:"upi"`
	SMS bool `json:"sms"`
}

// NotificationOptions toggles individual notification kinds.
type NotificationOptions struct {
	BudgetAlerts    bool `json:"budgetAlerts"`
	DailySummary    bool `json:"dailySummary"`
	UnusualSpending bool `json:"unusualSpending"`
}

// DefaultSettings returns the settings seeded into a new workspace.
func DefaultSettings() Settings {
	return Settings{
		UserName: "User",
		Currency: "INR",
		AutoSync: AutoSyncSettings{UPI: true, SMS: true},
		Notifications: NotificationOptions{
			BudgetAlerts:    true,
			DailySummary:    false,
			UnusualSpending: true,
		},
		Theme: "dark",
	}
}
