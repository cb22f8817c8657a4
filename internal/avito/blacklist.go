package avito

import "fmt"

// Reason is why a user is blacklisted.
type Reason int

// Blacklist reasons.
const (
	ReasonSpam Reason = iota + 1
	ReasonFraud
	ReasonAbuse
	ReasonOther
)

// BlacklistContext ties a blacklist entry to a listing.
type BlacklistContext struct {
	ItemID   int64  `json:"item_id"`
	ReasonID Reason `json:"reason_id"`
}

// BlacklistUser is one user to block.
type BlacklistUser struct {
	Context BlacklistContext `json:"context"`
	UserID  int64            `json:"user_id"`
}

// AddToBlacklist blocks users from messaging the account.
type AddToBlacklist struct {
	Returns[OKResponse]

	UserID int64 `json:"-" url:"-"`

	Users []BlacklistUser `json:"users"`
}

// Path implements Method.
func (m AddToBlacklist) Path() string {
	return fmt.Sprintf("messenger/v2/accounts/%d/blacklist", m.UserID)
}

// Encoding implements Method.
func (AddToBlacklist) Encoding() Encoding { return EncodingJSON }
