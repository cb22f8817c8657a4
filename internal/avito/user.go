package avito

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// UserInfoSelf is the authenticated account's profile.
type UserInfoSelf struct {
	Object

	Email      string `json:"email,omitempty"`
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
}

// Chats returns a descriptor listing this account's chats, bound to the
// same client.
func (u UserInfoSelf) Chats() GetChats {
	m := GetChats{UserID: u.ID}
	m.Bind(u.Client())
	return m
}

// Balance is an account's wallet balance.
type Balance struct {
	Object

	Bonus float64 `json:"bonus"`
	Real  float64 `json:"real"`
}

// OperationsHistoryItem is one paid operation.
type OperationsHistoryItem struct {
	Object

	AmountBonus   *float64   `json:"amountBonus,omitempty"`
	AmountRub     *float64   `json:"amountRub,omitempty"`
	AmountTotal   float64    `json:"amountTotal"`
	ItemID        *int64     `json:"itemId,omitempty"`
	OperationName string     `json:"operationName"`
	OperationType string     `json:"operationType"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	ServiceID     *int64     `json:"serviceId,omitempty"`
	ServiceName   string     `json:"serviceName,omitempty"`
	ServiceType   string     `json:"serviceType,omitempty"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// OperationsHistory lists paid operations.
type OperationsHistory struct {
	Object

	Operations []OperationsHistoryItem `json:"operations"`
}

// GetUserInfoSelf fetches the authenticated account's profile.
type GetUserInfoSelf struct {
	Returns[UserInfoSelf]
}

// Path implements Method.
func (GetUserInfoSelf) Path() string { return "core/v1/accounts/self" }

// HTTPMethod implements Method.
func (GetUserInfoSelf) HTTPMethod() string { return http.MethodGet }

// GetUserBalance fetches an account's balance.
type GetUserBalance struct {
	Returns[Balance]

	UserID int64 `json:"-" url:"-"`
}

// Path implements Method.
func (m GetUserBalance) Path() string {
	return fmt.Sprintf("core/v1/accounts/%d/balance", m.UserID)
}

// HTTPMethod implements Method.
func (GetUserBalance) HTTPMethod() string { return http.MethodGet }

// GetOperationsHistory lists paid operations in a time range.
type GetOperationsHistory struct {
	Returns[OperationsHistory]

	DateTimeFrom time.Time `json:"dateTimeFrom"`
	DateTimeTo   time.Time `json:"dateTimeTo"`
}

// Path implements Method.
func (GetOperationsHistory) Path() string { return "core/v1/accounts/operations_history/" }

// Encoding implements Method.
func (GetOperationsHistory) Encoding() Encoding { return EncodingJSON }

// SelfBalance returns the authenticated account's balance.
func (c *Client) SelfBalance(ctx context.Context) (*Balance, error) {
	me, err := c.SelfInfo(ctx)
	if err != nil {
		return nil, err
	}
	return c.Balance(ctx, me.ID)
}

// Balance returns the balance of userID.
func (c *Client) Balance(ctx context.Context, userID int64) (*Balance, error) {
	b, err := Call(ctx, c, GetUserBalance{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("getting balance for %d: %w", userID, err)
	}
	return &b, nil
}
