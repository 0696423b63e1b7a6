package service

import (
	"github.com/danil-baybakov/app-clone-twitter/internal/model"
	"github.com/danil-baybakov/app-clone-twitter/internal/repository/interfaces"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"github.com/stretchr/testify/mock"
)

func init() {
	util.InitLogger("error")
}

// MockUserRepository 是 UserRepository 接口的模拟实现
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) CreateAll(users []model.User) error {
	args := m.Called(users)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByAPIKey(apiKey string) (*model.User, error) {
	args := m.Called(apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockTweetRepository 是 TweetRepository 接口的模拟实现
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(tweet *model.Tweet) error {
	args := m.Called(tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) FindAll() ([]model.Tweet, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) FindByID(id int) (*model.Tweet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) FindByIDAndUserID(id, userID int) (*model.Tweet, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) DeleteByID(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTweetRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockMediaRepository 是 MediaRepository 接口的模拟实现
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(media *model.Media) error {
	args := m.Called(media)
	return args.Error(0)
}

func (m *MockMediaRepository) FindByID(id int) (*model.Media, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Media), args.Error(1)
}

func (m *MockMediaRepository) FindByTweetID(tweetID int) ([]model.Media, error) {
	args := m.Called(tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Media), args.Error(1)
}

func (m *MockMediaRepository) UpdateTweetIDByIDs(ids []int, tweetID int) (bool, error) {
	args := m.Called(ids, tweetID)
	return args.Bool(0), args.Error(1)
}

// MockLikeRepository 是 LikeRepository 接口的模拟实现
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(like *model.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockLikeRepository) FindByTweetIDAndUserID(tweetID, userID int) (*model.Like, error) {
	args := m.Called(tweetID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeRepository) FindByTweetID(tweetID int) ([]model.Like, error) {
	args := m.Called(tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Like), args.Error(1)
}

func (m *MockLikeRepository) DeleteByTweetIDAndUserID(tweetID, userID int) (bool, error) {
	args := m.Called(tweetID, userID)
	return args.Bool(0), args.Error(1)
}

// MockFollowerRepository 是 FollowerRepository 接口的模拟实现
type MockFollowerRepository struct {
	mock.Mock
}

func (m *MockFollowerRepository) Create(follower *model.Follower) error {
	args := m.Called(follower)
	return args.Error(0)
}

func (m *MockFollowerRepository) FindByPair(followerID, followedID int) (*model.Follower, error) {
	args := m.Called(followerID, followedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follower), args.Error(1)
}

func (m *MockFollowerRepository) DeleteByPair(followerID, followedID int) (bool, error) {
	args := m.Called(followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowerRepository) GetFollowers(userID int) ([]model.UserBrief, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserBrief), args.Error(1)
}

func (m *MockFollowerRepository) GetFollowing(userID int) ([]model.UserBrief, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserBrief), args.Error(1)
}

var _ interfaces.UserRepository = (*MockUserRepository)(nil)
var _ interfaces.TweetRepository = (*MockTweetRepository)(nil)
var _ interfaces.MediaRepository = (*MockMediaRepository)(nil)
var _ interfaces.LikeRepository = (*MockLikeRepository)(nil)
var _ interfaces.FollowerRepository = (*MockFollowerRepository)(nil)
