package services

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
)

// Engagement weights: likes received count strongest, followers and
// comments received equally. Log damping keeps viral outliers from running
// away while still rewarding growth.
const (
	engagementWeightFollowers = 30.0
	engagementWeightLikes     = 40.0
	engagementWeightComments  = 30.0
)

// Signals is the raw-count snapshot a recalculation was computed from,
// persisted on the profile for explainability.
type Signals struct {
	Followers        int64 `json:"followers"`
	LikesReceived    int64 `json:"likes_received"`
	CommentsReceived int64 `json:"comments_received"`
	PostsSampled     int   `json:"posts_sampled"`
}

type EngagementCalculator interface {
	// Compute re-reads the user's counts and returns the log-damped
	// engagement score. Zero activity yields exactly 0.0. Nothing is cached.
	Compute(ctx context.Context, userID uuid.UUID) (float64, Signals, error)
}

type engagementCalculator struct {
	log      *logger.Logger
	follows  repos.FollowRepo
	likes    repos.LikeRepo
	comments repos.CommentRepo
}

func NewEngagementCalculator(baseLog *logger.Logger, follows repos.FollowRepo, likes repos.LikeRepo, comments repos.CommentRepo) EngagementCalculator {
	return &engagementCalculator{
		log:      baseLog.With("service", "EngagementCalculator"),
		follows:  follows,
		likes:    likes,
		comments: comments,
	}
}

func (c *engagementCalculator) Compute(ctx context.Context, userID uuid.UUID) (float64, Signals, error) {
	var signals Signals

	followers, err := c.follows.CountFollowers(ctx, nil, userID)
	if err != nil {
		return 0, signals, fmt.Errorf("count followers: %w", err)
	}
	likesReceived, err := c.likes.CountReceivedByAuthor(ctx, nil, userID)
	if err != nil {
		return 0, signals, fmt.Errorf("count likes received: %w", err)
	}
	commentsReceived, err := c.comments.CountReceivedByAuthor(ctx, nil, userID)
	if err != nil {
		return 0, signals, fmt.Errorf("count comments received: %w", err)
	}

	signals.Followers = followers
	signals.LikesReceived = likesReceived
	signals.CommentsReceived = commentsReceived

	engagement := engagementWeightFollowers*math.Log1p(float64(followers)) +
		engagementWeightLikes*math.Log1p(float64(likesReceived)) +
		engagementWeightComments*math.Log1p(float64(commentsReceived))
	return engagement, signals, nil
}
