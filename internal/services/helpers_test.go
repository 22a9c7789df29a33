package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsefeed/pulsefeed-core/internal/db"
	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

type testEnv struct {
	db *gorm.DB

	users         repos.UserRepo
	profiles      repos.ProfileRepo
	posts         repos.PostRepo
	likes         repos.LikeRepo
	comments      repos.CommentRepo
	follows       repos.FollowRepo
	notifications repos.NotificationRepo
	messages      repos.MessageRepo
	bookmarks     repos.BookmarkRepo
	communities   repos.CommunityRepo

	reputation   ReputationService
	dispatcher   Dispatcher
	userSvc      UserService
	postSvc      PostService
	likeSvc      LikeService
	commentSvc   CommentService
	followSvc    FollowService
	notifySvc    NotificationService
	messageSvc   MessageService
	bookmarkSvc  BookmarkService
	communitySvc CommunityService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	env := &testEnv{
		db:            gdb,
		users:         repos.NewUserRepo(gdb, log),
		profiles:      repos.NewProfileRepo(gdb, log),
		posts:         repos.NewPostRepo(gdb, log),
		likes:         repos.NewLikeRepo(gdb, log),
		comments:      repos.NewCommentRepo(gdb, log),
		follows:       repos.NewFollowRepo(gdb, log),
		notifications: repos.NewNotificationRepo(gdb, log),
		messages:      repos.NewMessageRepo(gdb, log),
		bookmarks:     repos.NewBookmarkRepo(gdb, log),
		communities:   repos.NewCommunityRepo(gdb, log),
	}

	engagement := NewEngagementCalculator(log, env.follows, env.likes, env.comments)
	env.reputation = NewReputationService(log, env.profiles, env.posts, engagement, nil)
	env.dispatcher = NewDispatcher(log, env.profiles, env.reputation)

	env.userSvc = NewUserService(log, env.users, env.profiles, env.follows)
	env.postSvc = NewPostService(log, env.posts, env.dispatcher)
	env.likeSvc = NewLikeService(log, env.posts, env.likes, env.notifications, env.dispatcher)
	env.commentSvc = NewCommentService(log, env.posts, env.comments, env.notifications, env.dispatcher)
	env.followSvc = NewFollowService(log, env.follows, env.notifications, env.dispatcher)
	env.notifySvc = NewNotificationService(log, env.notifications)
	env.messageSvc = NewMessageService(log, env.messages, env.users)
	env.bookmarkSvc = NewBookmarkService(log, env.posts, env.bookmarks)
	env.communitySvc = NewCommunityService(log, env.communities)

	return env
}

func (env *testEnv) createUser(t *testing.T, username string) *types.User {
	t.Helper()
	user := &types.User{Username: username, PasswordHash: "x"}
	if err := env.users.Create(context.Background(), nil, user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	if err := env.profiles.Ensure(context.Background(), nil, user.ID); err != nil {
		t.Fatalf("ensure profile %s: %v", username, err)
	}
	return user
}

func (env *testEnv) profile(t *testing.T, userID uuid.UUID) *types.Profile {
	t.Helper()
	profile, err := env.profiles.GetByUserID(context.Background(), nil, userID)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	return profile
}
