package service

import (
	"testing"

	"github.com/danil-baybakov/app-clone-twitter/internal/model"
	"github.com/stretchr/testify/assert"
)

// TestGetUserProfile 测试用户资料拼装
func TestGetUserProfile(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockFollowerRepo := new(MockFollowerRepository)
	service := NewUserService(mockUserRepo, mockFollowerRepo)

	mockUserRepo.On("FindByID", 2).Return(&model.User{ID: 2, Name: "Danil Baybakov"}, nil)
	mockFollowerRepo.On("GetFollowers", 2).Return([]model.UserBrief{
		{ID: 3, Name: "Egor Egorov"},
	}, nil)
	mockFollowerRepo.On("GetFollowing", 2).Return([]model.UserBrief{
		{ID: 4, Name: "Sergey Sergeev"},
	}, nil)

	profile, err := service.GetUserProfile(2)
	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, 2, profile.ID)
	assert.Equal(t, "Danil Baybakov", profile.Name)
	assert.Equal(t, []model.UserBrief{{ID: 3, Name: "Egor Egorov"}}, profile.Followers)
	assert.Equal(t, []model.UserBrief{{ID: 4, Name: "Sergey Sergeev"}}, profile.Following)
	mockFollowerRepo.AssertExpectations(t)
}

// TestGetUserProfileNotFound 测试用户不存在时返回 nil
func TestGetUserProfileNotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockFollowerRepo := new(MockFollowerRepository)
	service := NewUserService(mockUserRepo, mockFollowerRepo)

	mockUserRepo.On("FindByID", 99).Return(nil, nil)

	profile, err := service.GetUserProfile(99)
	assert.NoError(t, err)
	assert.Nil(t, profile)
	mockFollowerRepo.AssertNotCalled(t, "GetFollowers", 99)
}

// TestGetUserByAPIKey 测试通过 api_key 获取用户
func TestGetUserByAPIKey(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockFollowerRepo := new(MockFollowerRepository)
	service := NewUserService(mockUserRepo, mockFollowerRepo)

	mockUserRepo.On("FindByAPIKey", "test").Return(&model.User{ID: 1, Name: "TestUser"}, nil)
	user, err := service.GetUserByAPIKey("test")
	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	// 未知 api_key 返回 nil 而不是错误
	mockUserRepo.On("FindByAPIKey", "unknown").Return(nil, nil)
	user, err = service.GetUserByAPIKey("unknown")
	assert.NoError(t, err)
	assert.Nil(t, user)
	mockUserRepo.AssertExpectations(t)
}

// TestIsEmptyAndSeed 测试启动引导：空库检查和种子用户写入
func TestIsEmptyAndSeed(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockFollowerRepo := new(MockFollowerRepository)
	service := NewUserService(mockUserRepo, mockFollowerRepo)

	mockUserRepo.On("Count").Return(0, nil)
	empty, err := service.IsEmpty()
	assert.NoError(t, err)
	assert.True(t, empty)

	seed := []model.User{{Name: "TestUser", APIKey: "test"}}
	mockUserRepo.On("CreateAll", seed).Return(nil)
	err = service.SeedUsers(seed)
	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}
