package app

import (
	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/services"
)

type Services struct {
	Engagement   services.EngagementCalculator
	Reputation   services.ReputationService
	Dispatcher   services.Dispatcher
	User         services.UserService
	Post         services.PostService
	Like         services.LikeService
	Comment      services.CommentService
	Follow       services.FollowService
	Notification services.NotificationService
	Message      services.MessageService
	Bookmark     services.BookmarkService
	Community    services.CommunityService
}

func wireServices(log *logger.Logger, r Repos, leaderboard services.Leaderboard) Services {
	log.Info("Wiring services...")

	engagement := services.NewEngagementCalculator(log, r.Follow, r.Like, r.Comment)
	reputation := services.NewReputationService(log, r.Profile, r.Post, engagement, leaderboard)
	dispatcher := services.NewDispatcher(log, r.Profile, reputation)

	return Services{
		Engagement:   engagement,
		Reputation:   reputation,
		Dispatcher:   dispatcher,
		User:         services.NewUserService(log, r.User, r.Profile, r.Follow),
		Post:         services.NewPostService(log, r.Post, dispatcher),
		Like:         services.NewLikeService(log, r.Post, r.Like, r.Notification, dispatcher),
		Comment:      services.NewCommentService(log, r.Post, r.Comment, r.Notification, dispatcher),
		Follow:       services.NewFollowService(log, r.Follow, r.Notification, dispatcher),
		Notification: services.NewNotificationService(log, r.Notification),
		Message:      services.NewMessageService(log, r.Message, r.User),
		Bookmark:     services.NewBookmarkService(log, r.Post, r.Bookmark),
		Community:    services.NewCommunityService(log, r.Community),
	}
}
