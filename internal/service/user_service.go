package service

import (
	"fmt"

	"github.com/danil-baybakov/app-clone-twitter/internal/model"
	"github.com/danil-baybakov/app-clone-twitter/internal/repository/interfaces"
	serviceErrors "github.com/danil-baybakov/app-clone-twitter/internal/service/errors"
)

// UserServiceInterface 定义用户服务接口
type UserServiceInterface interface {
	GetUserByAPIKey(apiKey string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	GetUserProfile(id int) (*model.UserProfile, error)
	IsEmpty() (bool, error)
	SeedUsers(users []model.User) error
}

// UserService 处理与用户相关的业务逻辑
type UserService struct {
	userRepo     interfaces.UserRepository
	followerRepo interfaces.FollowerRepository
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(userRepo interfaces.UserRepository, followerRepo interfaces.FollowerRepository) *UserService {
	return &UserService{
		userRepo:     userRepo,
		followerRepo: followerRepo,
	}
}

// GetUserByAPIKey 通过 api_key 获取用户，未找到返回 nil
func (s *UserService) GetUserByAPIKey(apiKey string) (*model.User, error) {
	user, err := s.userRepo.FindByAPIKey(apiKey)
	if err != nil {
		return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			"通过api_key获取用户数据时数据库操作失败", err)
	}
	return user, nil
}

// GetUserByID 通过 id 获取用户，未找到返回 nil
func (s *UserService) GetUserByID(id int) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("获取用户数据时数据库操作失败 id=%d", id), err)
	}
	return user, nil
}

// GetUserProfile 获取用户完整资料，拼装粉丝列表和关注列表
// 用户不存在返回 nil
func (s *UserService) GetUserProfile(id int) (*model.UserProfile, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("获取用户数据时数据库操作失败 id=%d", id), err)
	}
	if user == nil {
		return nil, nil
	}

	followers, err := s.followerRepo.GetFollowers(id)
	if err != nil {
		return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("获取用户粉丝列表时数据库操作失败 id=%d", id), err)
	}

	following, err := s.followerRepo.GetFollowing(id)
	if err != nil {
		return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("获取用户关注列表时数据库操作失败 id=%d", id), err)
	}

	return &model.UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Followers: followers,
		Following: following,
	}, nil
}

// IsEmpty 检查用户表是否为空，用于启动引导
func (s *UserService) IsEmpty() (bool, error) {
	count, err := s.userRepo.Count()
	if err != nil {
		return false, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			"统计用户数量时数据库操作失败", err)
	}
	return count == 0, nil
}

// SeedUsers 批量写入初始用户
func (s *UserService) SeedUsers(users []model.User) error {
	if err := s.userRepo.CreateAll(users); err != nil {
		return serviceErrors.Wrap(serviceErrors.ErrDatabase,
			"写入初始用户时数据库操作失败", err)
	}
	return nil
}
