package app

import (
	"gorm.io/gorm"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
)

type Repos struct {
	User         repos.UserRepo
	Profile      repos.ProfileRepo
	Post         repos.PostRepo
	Like         repos.LikeRepo
	Comment      repos.CommentRepo
	Follow       repos.FollowRepo
	Notification repos.NotificationRepo
	Message      repos.MessageRepo
	Bookmark     repos.BookmarkRepo
	Community    repos.CommunityRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:         repos.NewUserRepo(db, log),
		Profile:      repos.NewProfileRepo(db, log),
		Post:         repos.NewPostRepo(db, log),
		Like:         repos.NewLikeRepo(db, log),
		Comment:      repos.NewCommentRepo(db, log),
		Follow:       repos.NewFollowRepo(db, log),
		Notification: repos.NewNotificationRepo(db, log),
		Message:      repos.NewMessageRepo(db, log),
		Bookmark:     repos.NewBookmarkRepo(db, log),
		Community:    repos.NewCommunityRepo(db, log),
	}
}
