package avito

import (
	"context"
	"fmt"
	"net/http"
)

// Stage is the outcome of a deal a review refers to.
type Stage string

// Deal stages.
const (
	StageDone           Stage = "done"
	StageFellThrough    Stage = "fell_through"
	StageNotAgree       Stage = "not_agree"
	StageNotCommunicate Stage = "not_communicate"
)

// Status is the moderation status of a review answer.
type Status string

// Review answer statuses.
const (
	StatusModeration Status = "moderation"
	StatusPublished  Status = "published"
	StatusRejected   Status = "rejected"
)

// Rating is the account's review score.
type Rating struct {
	Object

	ReviewsCount          int     `json:"reviewsCount"`
	ReviewsWithScoreCount int     `json:"reviewsWithScoreCount"`
	Score                 float64 `json:"score"`
}

// RatingInfo reports whether rating is enabled and its current value.
type RatingInfo struct {
	Object

	IsEnabled bool    `json:"isEnabled"`
	Rating    *Rating `json:"rating,omitempty"`
}

// GetRatingsInfo fetches the authenticated account's rating.
type GetRatingsInfo struct {
	Returns[RatingInfo]
}

// Path implements Method.
func (GetRatingsInfo) Path() string { return "ratings/v1/info" }

// HTTPMethod implements Method.
func (GetRatingsInfo) HTTPMethod() string { return http.MethodGet }

// SelfRating returns the authenticated account's rating.
func (c *Client) SelfRating(ctx context.Context) (*RatingInfo, error) {
	r, err := Call(ctx, c, GetRatingsInfo{})
	if err != nil {
		return nil, fmt.Errorf("getting rating: %w", err)
	}
	return &r, nil
}
