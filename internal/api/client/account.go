package client

import "context"

// Self returns the account the server is authenticated as.
func (c *Client) Self(ctx context.Context) (*Self, error) {
	var me Self
	if err := c.get(ctx, "/api/v1/self", &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// Balance returns the account balance.
func (c *Client) Balance(ctx context.Context) (*Balance, error) {
	var b Balance
	if err := c.get(ctx, "/api/v1/balance", &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Rating returns the account rating.
func (c *Client) Rating(ctx context.Context) (*Rating, error) {
	var r Rating
	if err := c.get(ctx, "/api/v1/rating", &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Token returns the server's token lifecycle state.
func (c *Client) Token(ctx context.Context) (*TokenStatus, error) {
	var ts TokenStatus
	if err := c.get(ctx, "/api/v1/token", &ts); err != nil {
		return nil, err
	}
	return &ts, nil
}

// Quota returns the server's daily call budget.
func (c *Client) Quota(ctx context.Context) (*Quota, error) {
	var q Quota
	if err := c.get(ctx, "/api/v1/quota", &q); err != nil {
		return nil, err
	}
	return &q, nil
}
