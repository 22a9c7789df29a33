package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
	"github.com/pulsefeed/pulsefeed-core/internal/utils"
)

// ProfileView is what the profile page renders: the reputation outputs plus
// the follow counts.
type ProfileView struct {
	User           *types.User    `json:"user"`
	Profile        *types.Profile `json:"profile"`
	FollowersCount int64          `json:"followers_count"`
	FollowingCount int64          `json:"following_count"`
}

type UserService interface {
	Register(ctx context.Context, username, password string) (*types.User, error)
	GetProfile(ctx context.Context, username string) (*ProfileView, error)
}

type userService struct {
	log      *logger.Logger
	users    repos.UserRepo
	profiles repos.ProfileRepo
	follows  repos.FollowRepo
}

func NewUserService(baseLog *logger.Logger, users repos.UserRepo, profiles repos.ProfileRepo, follows repos.FollowRepo) UserService {
	return &userService{
		log:      baseLog.With("service", "UserService"),
		users:    users,
		profiles: profiles,
		follows:  follows,
	}
}

// Register creates the account and its zero-valued profile eagerly. Session
// handling stays with the web layer; only the bcrypt hash is stored here.
func (s *userService) Register(ctx context.Context, username, password string) (*types.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	exists, err := s.users.UsernameExists(ctx, nil, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &types.User{Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if err := s.profiles.Ensure(ctx, nil, user.ID); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	s.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, username string) (*ProfileView, error) {
	user, err := s.users.GetByUsername(ctx, nil, username)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	// Profiles are created lazily on first access for accounts that predate
	// the reputation engine.
	if err := s.profiles.Ensure(ctx, nil, user.ID); err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}
	profile, err := s.profiles.GetByUserID(ctx, nil, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	followers, err := s.follows.CountFollowers(ctx, nil, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}
	following, err := s.follows.CountFollowing(ctx, nil, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}
	return &ProfileView{
		User:           user,
		Profile:        profile,
		FollowersCount: followers,
		FollowingCount: following,
	}, nil
}
