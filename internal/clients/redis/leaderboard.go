package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/utils"
)

// Entry is one leaderboard row, highest reputation first.
type Entry struct {
	UserID uuid.UUID `json:"user_id"`
	Score  float64   `json:"score"`
}

// Leaderboard mirrors reputation scores into a redis sorted set so ranking
// queries never touch postgres.
type Leaderboard struct {
	client *goredis.Client
	key    string
	log    *logger.Logger
}

func NewLeaderboard(baseLog *logger.Logger) (*Leaderboard, error) {
	log := baseLog.With("client", "RedisLeaderboard")
	addr := utils.GetEnv("REDIS_ADDR", "", log)
	if addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is not set")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: utils.GetEnv("REDIS_PASSWORD", "", log),
		DB:       utils.GetEnvAsInt("REDIS_DB", 0, log),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Leaderboard{
		client: client,
		key:    utils.GetEnv("REDIS_LEADERBOARD_KEY", "reputation:leaderboard", log),
		log:    log,
	}, nil
}

func (l *Leaderboard) Update(ctx context.Context, userID uuid.UUID, score float64) error {
	return l.client.ZAdd(ctx, l.key, goredis.Z{
		Score:  score,
		Member: userID.String(),
	}).Err()
}

// Top returns the n highest-reputation users.
func (l *Leaderboard) Top(ctx context.Context, n int64) ([]Entry, error) {
	rows, err := l.client.ZRevRangeWithScores(ctx, l.key, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		member, ok := row.Member.(string)
		if !ok {
			continue
		}
		userID, err := uuid.Parse(member)
		if err != nil {
			l.log.Warn("skipping malformed leaderboard member", "member", member)
			continue
		}
		entries = append(entries, Entry{UserID: userID, Score: row.Score})
	}
	return entries, nil
}

func (l *Leaderboard) Close() error {
	return l.client.Close()
}
