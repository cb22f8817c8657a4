package client

import "time"

// Self is the authenticated Avito account as reported by the server.
type Self struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
}

// Balance is the account balance in rubles.
type Balance struct {
	Real  float64 `json:"real"`
	Bonus float64 `json:"bonus"`
}

// Rating is the account rating summary.
type Rating struct {
	IsEnabled bool    `json:"is_enabled"`
	Score     float64 `json:"score,omitempty"`
	Reviews   int     `json:"reviews,omitempty"`
}

// TokenStatus is the server's token lifecycle state. The token itself is
// never exposed.
type TokenStatus struct {
	State     string     `json:"state"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Quota is the client-side daily call budget.
type Quota struct {
	Enabled    bool      `json:"enabled"`
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

// Job describes one scheduled job.
type Job struct {
	Name      string     `json:"name"`
	Scheduled bool       `json:"scheduled"`
	NextRun   *time.Time `json:"next_run,omitempty"`
	LastRun   *time.Time `json:"last_run,omitempty"`
}
