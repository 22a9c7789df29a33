package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
)

// Reputation combines the two signals on a single points scale: engagement
// keeps its unbounded log-sum scale, content quality is a 0-100 score, and
// the 70/30 split caps the content contribution at 30 points. Level and
// badge are derived from the combined score only.
const (
	reputationWeightEngagement = 0.7
	reputationWeightQuality    = 0.3

	// qualityWindow is how many of the author's newest posts feed the
	// rolling content-quality average.
	qualityWindow = 5

	// levelStep is the reputation span per level; ten levels top out at 270+.
	levelStep = 30.0
	levelMin  = 1
	levelMax  = 10
)

type Badge struct {
	Name string
	Icon string
}

func levelFor(reputation float64) int {
	level := levelMin + int(reputation/levelStep)
	if level < levelMin {
		return levelMin
	}
	if level > levelMax {
		return levelMax
	}
	return level
}

func badgeFor(reputation float64) Badge {
	switch {
	case reputation >= 250:
		return Badge{Name: "Legend", Icon: "🏆"}
	case reputation >= 100:
		return Badge{Name: "Elite Creator", Icon: "💎"}
	case reputation >= 50:
		return Badge{Name: "Rising Star", Icon: "🌟"}
	case reputation >= 20:
		return Badge{Name: "Contributor", Icon: "✨"}
	default:
		return Badge{Name: "Novice", Icon: "🌱"}
	}
}

// Leaderboard receives the score after every successful recalculation.
// Updates are best-effort; a failing board never fails a recalc.
type Leaderboard interface {
	Update(ctx context.Context, userID uuid.UUID, score float64) error
}

type ReputationService interface {
	// Recalc recomputes the user's quality and engagement signals from
	// current data and persists score, level, badge and the raw-signal
	// snapshot in one atomic update. Calling it twice with no intervening
	// events produces identical output.
	Recalc(ctx context.Context, userID uuid.UUID) error
}

type reputationService struct {
	log         *logger.Logger
	profiles    repos.ProfileRepo
	posts       repos.PostRepo
	engagement  EngagementCalculator
	leaderboard Leaderboard
}

func NewReputationService(baseLog *logger.Logger, profiles repos.ProfileRepo, posts repos.PostRepo, engagement EngagementCalculator, leaderboard Leaderboard) ReputationService {
	return &reputationService{
		log:         baseLog.With("service", "ReputationService"),
		profiles:    profiles,
		posts:       posts,
		engagement:  engagement,
		leaderboard: leaderboard,
	}
}

func (s *reputationService) Recalc(ctx context.Context, userID uuid.UUID) error {
	// Missing profiles are created zero-valued rather than failing the
	// triggering event.
	if err := s.profiles.Ensure(ctx, nil, userID); err != nil {
		return fmt.Errorf("ensure profile: %w", err)
	}

	recentPosts, err := s.posts.RecentByUser(ctx, nil, userID, qualityWindow)
	if err != nil {
		return fmt.Errorf("load recent posts: %w", err)
	}
	aiScore := 0.0
	if len(recentPosts) > 0 {
		for _, post := range recentPosts {
			aiScore += AnalyzePostQuality(post.Content)
		}
		aiScore /= float64(len(recentPosts))
	}

	engagementScore, signals, err := s.engagement.Compute(ctx, userID)
	if err != nil {
		return fmt.Errorf("compute engagement: %w", err)
	}
	signals.PostsSampled = len(recentPosts)

	reputation := reputationWeightEngagement*engagementScore + reputationWeightQuality*aiScore
	level := levelFor(reputation)
	badge := badgeFor(reputation)

	rawSignals, err := json.Marshal(signals)
	if err != nil {
		return fmt.Errorf("marshal signals: %w", err)
	}

	update := repos.ScoreUpdate{
		AIScore:         aiScore,
		EngagementScore: engagementScore,
		ReputationScore: reputation,
		Level:           level,
		Badge:           badge.Name,
		BadgeIcon:       badge.Icon,
		LastSignals:     rawSignals,
		LastRecalc:      time.Now().UTC(),
	}
	if err := s.profiles.UpdateScores(ctx, nil, userID, update); err != nil {
		return fmt.Errorf("persist scores: %w", err)
	}

	if s.leaderboard != nil {
		if err := s.leaderboard.Update(ctx, userID, reputation); err != nil {
			s.log.Warn("leaderboard update failed", "user_id", userID, "error", err)
		}
	}
	return nil
}
