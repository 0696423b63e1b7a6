package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestAddLike 测试添加点赞
func TestAddLike(t *testing.T) {
	mockLikeRepo := new(MockLikeRepository)
	service := NewLikeService(mockLikeRepo)

	mockLikeRepo.On("Create", mock.AnythingOfType("*model.Like")).Return(nil)

	err := service.AddLike(5, 1)
	assert.NoError(t, err)
	mockLikeRepo.AssertExpectations(t)
}

// TestAddLikeDuplicate 测试并发下撞唯一键时折叠为成功
func TestAddLikeDuplicate(t *testing.T) {
	mockLikeRepo := new(MockLikeRepository)
	service := NewLikeService(mockLikeRepo)

	mockLikeRepo.On("Create", mock.AnythingOfType("*model.Like")).
		Return(errors.New("Error 1062: Duplicate entry '5-1' for key 'uniq_tweet_user'"))

	err := service.AddLike(5, 1)
	assert.NoError(t, err)
}

// TestDeleteLike 测试取消点赞
func TestDeleteLike(t *testing.T) {
	mockLikeRepo := new(MockLikeRepository)
	service := NewLikeService(mockLikeRepo)

	mockLikeRepo.On("DeleteByTweetIDAndUserID", 5, 1).Return(true, nil)
	removed, err := service.DeleteLike(5, 1)
	assert.NoError(t, err)
	assert.True(t, removed)

	// 没有点赞记录被删除
	mockLikeRepo.On("DeleteByTweetIDAndUserID", 6, 1).Return(false, nil)
	removed, err = service.DeleteLike(6, 1)
	assert.NoError(t, err)
	assert.False(t, removed)
	mockLikeRepo.AssertExpectations(t)
}
