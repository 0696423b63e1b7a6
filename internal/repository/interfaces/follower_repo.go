package interfaces

import "github.com/danil-baybakov/app-clone-twitter/internal/model"

// FollowerRepository 定义了关注关系相关的数据库操作接口
type FollowerRepository interface {
	Create(follower *model.Follower) error
	FindByPair(followerID, followedID int) (*model.Follower, error)
	DeleteByPair(followerID, followedID int) (bool, error)
	// GetFollowers 查询关注了该用户的用户列表（粉丝）
	GetFollowers(userID int) ([]model.UserBrief, error)
	// GetFollowing 查询该用户关注的用户列表
	GetFollowing(userID int) ([]model.UserBrief, error)
}
