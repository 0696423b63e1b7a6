package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestAddFollowing 测试添加关注关系
func TestAddFollowing(t *testing.T) {
	mockFollowerRepo := new(MockFollowerRepository)
	service := NewFollowerService(mockFollowerRepo)

	mockFollowerRepo.On("Create", mock.AnythingOfType("*model.Follower")).Return(nil)

	err := service.AddFollowing(1, 2)
	assert.NoError(t, err)
	mockFollowerRepo.AssertExpectations(t)
}

// TestAddFollowingDuplicate 测试并发下撞唯一键时折叠为成功
func TestAddFollowingDuplicate(t *testing.T) {
	mockFollowerRepo := new(MockFollowerRepository)
	service := NewFollowerService(mockFollowerRepo)

	mockFollowerRepo.On("Create", mock.AnythingOfType("*model.Follower")).
		Return(errors.New("Error 1062: Duplicate entry '1-2' for key 'uniq_follower_followed'"))

	err := service.AddFollowing(1, 2)
	assert.NoError(t, err)
}

// TestDeleteFollowing 测试删除关注关系
func TestDeleteFollowing(t *testing.T) {
	mockFollowerRepo := new(MockFollowerRepository)
	service := NewFollowerService(mockFollowerRepo)

	mockFollowerRepo.On("DeleteByPair", 1, 2).Return(true, nil)
	removed, err := service.DeleteFollowing(1, 2)
	assert.NoError(t, err)
	assert.True(t, removed)

	// 没有记录被删除
	mockFollowerRepo.On("DeleteByPair", 1, 3).Return(false, nil)
	removed, err = service.DeleteFollowing(1, 3)
	assert.NoError(t, err)
	assert.False(t, removed)
	mockFollowerRepo.AssertExpectations(t)
}
