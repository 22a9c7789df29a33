package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Community content is scoped to its group and never feeds the reputation
// engine.
type Community struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Description string     `gorm:"column:description" json:"description"`
	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
}

func (Community) TableName() string { return "communities" }

func (c *Community) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CommunityMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CommunityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_community_members_pair" json:"community_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_community_members_pair" json:"user_id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (CommunityMember) TableName() string { return "community_members" }

func (m *CommunityMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type CommunityPost struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CommunityID uuid.UUID  `gorm:"type:uuid;not null;index" json:"community_id"`
	Community   *Community `gorm:"constraint:OnDelete:CASCADE;foreignKey:CommunityID;references:ID" json:"community,omitempty"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Content     string     `gorm:"not null;column:content" json:"content"`
	CreatedAt   time.Time  `gorm:"not null;index" json:"created_at"`
}

func (CommunityPost) TableName() string { return "community_posts" }

func (p *CommunityPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type CommunityComment struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"post_id"`
	Post      *CommunityPost `gorm:"constraint:OnDelete:CASCADE;foreignKey:PostID;references:ID" json:"post,omitempty"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	Text      string         `gorm:"not null;column:text" json:"text"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (CommunityComment) TableName() string { return "community_comments" }

func (c *CommunityComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CommunityPostLike struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_community_post_likes_pair" json:"post_id"`
	Post      *CommunityPost `gorm:"constraint:OnDelete:CASCADE;foreignKey:PostID;references:ID" json:"post,omitempty"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_community_post_likes_pair" json:"user_id"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (CommunityPostLike) TableName() string { return "community_post_likes" }

func (l *CommunityPostLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
