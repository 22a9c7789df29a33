package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

// ScoreUpdate is the full set of aggregator outputs written in one UPDATE,
// so a concurrent recalculation can never observe a half-written score.
type ScoreUpdate struct {
	AIScore         float64
	EngagementScore float64
	ReputationScore float64
	Level           int
	Badge           string
	BadgeIcon       string
	LastSignals     datatypes.JSON
	LastRecalc      time.Time
}

type ProfileRepo interface {
	Ensure(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Profile, error)
	UpdateScores(ctx context.Context, tx *gorm.DB, userID uuid.UUID, update ScoreUpdate) error
	IncrementActionPoints(ctx context.Context, tx *gorm.DB, userID uuid.UUID, points int) error
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return &profileRepo{db: db, log: baseLog.With("repo", "ProfileRepo")}
}

// Ensure creates a zero-valued profile for the user unless one exists.
func (r *profileRepo) Ensure(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	profile := &types.Profile{UserID: userID, Level: 1}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(profile).Error
}

func (r *profileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var profile types.Profile
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) UpdateScores(ctx context.Context, tx *gorm.DB, userID uuid.UUID, update ScoreUpdate) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"ai_score":         update.AIScore,
			"engagement_score": update.EngagementScore,
			"reputation_score": update.ReputationScore,
			"level":            update.Level,
			"badge":            update.Badge,
			"badge_icon":       update.BadgeIcon,
			"last_signals":     update.LastSignals,
			"last_recalc":      update.LastRecalc,
		}).Error
}

// IncrementActionPoints applies the increment in SQL so concurrent events
// never lose updates.
func (r *profileRepo) IncrementActionPoints(ctx context.Context, tx *gorm.DB, userID uuid.UUID, points int) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Profile{}).
		Where("user_id = ?", userID).
		Update("action_points", gorm.Expr("action_points + ?", points)).Error
}
