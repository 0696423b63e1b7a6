package service

import (
	"fmt"

	"github.com/danil-baybakov/app-clone-twitter/internal/model"
	"github.com/danil-baybakov/app-clone-twitter/internal/repository/interfaces"
	"github.com/danil-baybakov/app-clone-twitter/internal/repository/mysql"
	serviceErrors "github.com/danil-baybakov/app-clone-twitter/internal/service/errors"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"go.uber.org/zap"
)

// LikeServiceInterface 定义点赞服务接口
type LikeServiceInterface interface {
	GetLikeByTweetIDAndUserID(tweetID, userID int) (*model.Like, error)
	AddLike(tweetID, userID int) error
	DeleteLike(tweetID, userID int) (bool, error)
}

// LikeService 处理与点赞相关的业务逻辑
type LikeService struct {
	likeRepo interfaces.LikeRepository
}

// NewLikeService 创建一个新的 LikeService 实例
func NewLikeService(likeRepo interfaces.LikeRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo}
}

// GetLikeByTweetIDAndUserID 查找点赞记录，未找到返回 nil
func (s *LikeService) GetLikeByTweetIDAndUserID(tweetID, userID int) (*model.Like, error) {
	like, err := s.likeRepo.FindByTweetIDAndUserID(tweetID, userID)
	if err != nil {
		return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("获取点赞数据时数据库操作失败 tweet_id=%d user_id=%d",
				tweetID, userID), err)
	}
	return like, nil
}

// AddLike 创建点赞记录
// 并发重复提交触发唯一约束冲突时，视为幂等成功
func (s *LikeService) AddLike(tweetID, userID int) error {
	like := &model.Like{
		TweetID: tweetID,
		UserID:  userID,
	}
	if err := s.likeRepo.Create(like); err != nil {
		if mysql.IsDuplicateEntry(err) {
			util.Logger.Info("点赞已存在，视为成功",
				zap.Int("tweet_id", tweetID), zap.Int("user_id", userID))
			return nil
		}
		return serviceErrors.Wrap(serviceErrors.ErrDatabase,
			"添加点赞数据时数据库操作失败", err)
	}
	return nil
}

// DeleteLike 删除点赞记录，返回是否有记录被删除
func (s *LikeService) DeleteLike(tweetID, userID int) (bool, error) {
	removed, err := s.likeRepo.DeleteByTweetIDAndUserID(tweetID, userID)
	if err != nil {
		return false, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			"删除点赞数据时数据库操作失败", err)
	}
	return removed, nil
}
