package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

const communityPostPageSize = 50

// CommunityService covers group spaces. Community activity is deliberately
// kept out of the reputation engine: no events are dispatched here.
type CommunityService interface {
	Create(ctx context.Context, creatorID uuid.UUID, name, description string) (*types.Community, error)
	Join(ctx context.Context, userID, communityID uuid.UUID) error
	Leave(ctx context.Context, userID, communityID uuid.UUID) error
	CreatePost(ctx context.Context, userID, communityID uuid.UUID, content string) (*types.CommunityPost, error)
	AddComment(ctx context.Context, userID, postID uuid.UUID, text string) (*types.CommunityComment, error)
	LikePost(ctx context.Context, userID, postID uuid.UUID) error
	Posts(ctx context.Context, communityID uuid.UUID) ([]*types.CommunityPost, error)
}

type communityService struct {
	log         *logger.Logger
	communities repos.CommunityRepo
}

func NewCommunityService(baseLog *logger.Logger, communities repos.CommunityRepo) CommunityService {
	return &communityService{
		log:         baseLog.With("service", "CommunityService"),
		communities: communities,
	}
}

func (s *communityService) Create(ctx context.Context, creatorID uuid.UUID, name, description string) (*types.Community, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("community name is required")
	}
	if existing, err := s.communities.GetByName(ctx, nil, name); err == nil && existing != nil {
		return nil, fmt.Errorf("community %q already exists", name)
	} else if err != nil && !repos.IsNotFound(err) {
		return nil, fmt.Errorf("check community name: %w", err)
	}

	community := &types.Community{Name: name, Description: description, CreatedByID: &creatorID}
	if err := s.communities.Create(ctx, nil, community); err != nil {
		return nil, fmt.Errorf("create community: %w", err)
	}
	// The creator joins their own community automatically.
	if _, err := s.communities.AddMember(ctx, nil, &types.CommunityMember{UserID: creatorID, CommunityID: community.ID}); err != nil {
		return nil, fmt.Errorf("add creator membership: %w", err)
	}
	s.log.Info("community created", "community_id", community.ID)
	return community, nil
}

func (s *communityService) Join(ctx context.Context, userID, communityID uuid.UUID) error {
	if _, err := s.communities.GetByID(ctx, nil, communityID); err != nil {
		return fmt.Errorf("load community: %w", err)
	}
	if _, err := s.communities.AddMember(ctx, nil, &types.CommunityMember{UserID: userID, CommunityID: communityID}); err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

func (s *communityService) Leave(ctx context.Context, userID, communityID uuid.UUID) error {
	return s.communities.RemoveMember(ctx, nil, communityID, userID)
}

func (s *communityService) CreatePost(ctx context.Context, userID, communityID uuid.UUID, content string) (*types.CommunityPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	member, err := s.communities.IsMember(ctx, nil, communityID, userID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if !member {
		return nil, ErrNotMember
	}

	post := &types.CommunityPost{UserID: userID, CommunityID: communityID, Content: content}
	if err := s.communities.CreatePost(ctx, nil, post); err != nil {
		return nil, fmt.Errorf("create community post: %w", err)
	}
	return post, nil
}

func (s *communityService) AddComment(ctx context.Context, userID, postID uuid.UUID, text string) (*types.CommunityComment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyContent
	}
	comment := &types.CommunityComment{UserID: userID, PostID: postID, Text: text}
	if err := s.communities.CreateComment(ctx, nil, comment); err != nil {
		return nil, fmt.Errorf("create community comment: %w", err)
	}
	return comment, nil
}

func (s *communityService) LikePost(ctx context.Context, userID, postID uuid.UUID) error {
	if _, err := s.communities.LikePost(ctx, nil, &types.CommunityPostLike{UserID: userID, PostID: postID}); err != nil {
		return fmt.Errorf("like community post: %w", err)
	}
	return nil
}

func (s *communityService) Posts(ctx context.Context, communityID uuid.UUID) ([]*types.CommunityPost, error) {
	return s.communities.ListPosts(ctx, nil, communityID, communityPostPageSize)
}
