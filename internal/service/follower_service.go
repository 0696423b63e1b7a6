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

// FollowerServiceInterface 定义关注关系服务接口
type FollowerServiceInterface interface {
	GetFollowing(followerID, followedID int) (*model.Follower, error)
	AddFollowing(followerID, followedID int) error
	DeleteFollowing(followerID, followedID int) (bool, error)
}

// FollowerService 处理关注关系相关的业务逻辑
type FollowerService struct {
	followerRepo interfaces.FollowerRepository
}

// NewFollowerService 创建一个新的 FollowerService 实例
func NewFollowerService(followerRepo interfaces.FollowerRepository) *FollowerService {
	return &FollowerService{followerRepo: followerRepo}
}

// GetFollowing 按有序对查找关注关系，未找到返回 nil
func (s *FollowerService) GetFollowing(followerID, followedID int) (*model.Follower, error) {
	following, err := s.followerRepo.FindByPair(followerID, followedID)
	if err != nil {
		return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("获取关注关系数据时数据库操作失败 follower_id=%d followed_id=%d",
				followerID, followedID), err)
	}
	return following, nil
}

// AddFollowing 创建关注关系
// 并发重复提交触发唯一约束冲突时，视为幂等成功
func (s *FollowerService) AddFollowing(followerID, followedID int) error {
	follower := &model.Follower{
		FollowerID: followerID,
		FollowedID: followedID,
	}
	if err := s.followerRepo.Create(follower); err != nil {
		if mysql.IsDuplicateEntry(err) {
			util.Logger.Info("关注关系已存在，视为成功",
				zap.Int("follower_id", followerID), zap.Int("followed_id", followedID))
			return nil
		}
		return serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("添加关注关系数据时数据库操作失败 followed_id=%d", followedID), err)
	}
	return nil
}

// DeleteFollowing 删除关注关系，返回是否有记录被删除
func (s *FollowerService) DeleteFollowing(followerID, followedID int) (bool, error) {
	removed, err := s.followerRepo.DeleteByPair(followerID, followedID)
	if err != nil {
		return false, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("删除关注关系数据时数据库操作失败 followed_id=%d", followedID), err)
	}
	return removed, nil
}
