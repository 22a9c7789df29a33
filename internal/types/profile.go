package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Profile carries the reputation fields for exactly one user. Level and
// badge are derived from reputation_score on every recalculation; no other
// code path writes them.
type Profile struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User            *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Bio             string         `gorm:"column:bio" json:"bio"`
	PhotoURL        string         `gorm:"column:photo_url" json:"photo_url"`
	AIScore         float64        `gorm:"column:ai_score;not null;default:0" json:"ai_score"`
	EngagementScore float64        `gorm:"column:engagement_score;not null;default:0" json:"engagement_score"`
	ReputationScore float64        `gorm:"column:reputation_score;not null;default:0" json:"reputation_score"`
	Level           int            `gorm:"column:level;not null;default:1" json:"level"`
	Badge           string         `gorm:"column:badge;not null;default:''" json:"badge"`
	BadgeIcon       string         `gorm:"column:badge_icon;not null;default:''" json:"badge_icon"`
	ActionPoints    int            `gorm:"column:action_points;not null;default:0" json:"action_points"`
	LastSignals     datatypes.JSON `gorm:"type:jsonb;column:last_signals" json:"last_signals"`
	LastRecalc      *time.Time     `gorm:"column:last_recalc" json:"last_recalc,omitempty"`
	CreatedAt       time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
