package interfaces

import "github.com/danil-baybakov/app-clone-twitter/internal/model"

// LikeRepository 定义了点赞相关的数据库操作接口
type LikeRepository interface {
	Create(like *model.Like) error
	FindByTweetIDAndUserID(tweetID, userID int) (*model.Like, error)
	FindByTweetID(tweetID int) ([]model.Like, error)
	DeleteByTweetIDAndUserID(tweetID, userID int) (bool, error)
}
