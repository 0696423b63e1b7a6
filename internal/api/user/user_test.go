package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danil-baybakov/app-clone-twitter/internal/model"
	"github.com/danil-baybakov/app-clone-twitter/internal/service"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	util.InitLogger("error")
}

// MockUserService 是 UserServiceInterface 的模拟实现
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByAPIKey(apiKey string) (*model.User, error) {
	args := m.Called(apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUserProfile(id int) (*model.UserProfile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockUserService) IsEmpty() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) SeedUsers(users []model.User) error {
	args := m.Called(users)
	return args.Error(0)
}

// MockFollowerService 是 FollowerServiceInterface 的模拟实现
type MockFollowerService struct {
	mock.Mock
}

func (m *MockFollowerService) GetFollowing(followerID, followedID int) (*model.Follower, error) {
	args := m.Called(followerID, followedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follower), args.Error(1)
}

func (m *MockFollowerService) AddFollowing(followerID, followedID int) error {
	args := m.Called(followerID, followedID)
	return args.Error(0)
}

func (m *MockFollowerService) DeleteFollowing(followerID, followedID int) (bool, error) {
	args := m.Called(followerID, followedID)
	return args.Bool(0), args.Error(1)
}

var _ service.UserServiceInterface = (*MockUserService)(nil)
var _ service.FollowerServiceInterface = (*MockFollowerService)(nil)

// setupRouter 搭建测试路由，模拟认证中间件直接写入当前用户 id
func setupRouter(handler *UserHandler, currentUserID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", currentUserID)
		c.Next()
	})
	router.GET("/api/users/me", handler.GetMe)
	router.GET("/api/users/:id", handler.GetUserByID)
	router.POST("/api/users/:id/follow", handler.Follow)
	router.DELETE("/api/users/:id/follow", handler.Unfollow)
	return router
}

// TestGetMe 测试获取当前用户资料
func TestGetMe(t *testing.T) {
	mockUserService := new(MockUserService)
	mockFollowerService := new(MockFollowerService)
	handler := NewUserHandler(mockUserService, mockFollowerService, nil)
	router := setupRouter(handler, 2)

	// 资料包含粉丝列表和关注列表
	profile := &model.UserProfile{
		ID:   2,
		Name: "Danil Baybakov",
		Followers: []model.UserBrief{
			{ID: 3, Name: "Egor Egorov"},
		},
		Following: []model.UserBrief{
			{ID: 4, Name: "Sergey Sergeev"},
		},
	}
	mockUserService.On("GetUserProfile", 2).Return(profile, nil)

	req, _ := http.NewRequest("GET", "/api/users/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result bool              `json:"result"`
		User   model.UserProfile `json:"user"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Result)
	assert.Equal(t, 2, resp.User.ID)
	assert.Equal(t, "Danil Baybakov", resp.User.Name)
	assert.Len(t, resp.User.Followers, 1)
	assert.Equal(t, "Egor Egorov", resp.User.Followers[0].Name)
	assert.Len(t, resp.User.Following, 1)
	assert.Equal(t, "Sergey Sergeev", resp.User.Following[0].Name)
	mockUserService.AssertExpectations(t)
}

// TestGetUserByID 测试获取任意用户资料
func TestGetUserByID(t *testing.T) {
	mockUserService := new(MockUserService)
	mockFollowerService := new(MockFollowerService)
	handler := NewUserHandler(mockUserService, mockFollowerService, nil)
	router := setupRouter(handler, 1)

	// 用户不存在返回 404
	mockUserService.On("GetUserProfile", 99).Return(nil, nil)

	req, _ := http.NewRequest("GET", "/api/users/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"result":false`)

	// 无效 id 返回 400
	req, _ = http.NewRequest("GET", "/api/users/abc", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUserService.AssertExpectations(t)
}

// TestFollow 测试关注操作
func TestFollow(t *testing.T) {
	mockUserService := new(MockUserService)
	mockFollowerService := new(MockFollowerService)
	handler := NewUserHandler(mockUserService, mockFollowerService, nil)
	router := setupRouter(handler, 1)

	// 正常关注：目标存在、不是自己、尚未关注
	mockUserService.On("GetUserByID", 2).Return(&model.User{ID: 2, Name: "Danil Baybakov"}, nil)
	mockFollowerService.On("GetFollowing", 1, 2).Return(nil, nil)
	mockFollowerService.On("AddFollowing", 1, 2).Return(nil)

	req, _ := http.NewRequest("POST", "/api/users/2/follow", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"result":true`)
	mockFollowerService.AssertExpectations(t)

	// 目标用户不存在返回 404
	mockUserService.On("GetUserByID", 99).Return(nil, nil)

	req, _ = http.NewRequest("POST", "/api/users/99/follow", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUserService.AssertExpectations(t)
}

// TestFollowSelf 测试关注自己直接视为成功，不写数据
func TestFollowSelf(t *testing.T) {
	mockUserService := new(MockUserService)
	mockFollowerService := new(MockFollowerService)
	handler := NewUserHandler(mockUserService, mockFollowerService, nil)
	router := setupRouter(handler, 1)

	mockUserService.On("GetUserByID", 1).Return(&model.User{ID: 1, Name: "TestUser"}, nil)

	req, _ := http.NewRequest("POST", "/api/users/1/follow", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"result":true`)
	mockFollowerService.AssertNotCalled(t, "AddFollowing", mock.Anything, mock.Anything)
}

// TestFollowDuplicate 测试重复关注直接视为成功
func TestFollowDuplicate(t *testing.T) {
	mockUserService := new(MockUserService)
	mockFollowerService := new(MockFollowerService)
	handler := NewUserHandler(mockUserService, mockFollowerService, nil)
	router := setupRouter(handler, 1)

	mockUserService.On("GetUserByID", 2).Return(&model.User{ID: 2, Name: "Danil Baybakov"}, nil)
	mockFollowerService.On("GetFollowing", 1, 2).
		Return(&model.Follower{ID: 7, FollowerID: 1, FollowedID: 2}, nil)

	req, _ := http.NewRequest("POST", "/api/users/2/follow", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockFollowerService.AssertNotCalled(t, "AddFollowing", mock.Anything, mock.Anything)
}

// TestUnfollow 测试取消关注操作
func TestUnfollow(t *testing.T) {
	mockUserService := new(MockUserService)
	mockFollowerService := new(MockFollowerService)
	handler := NewUserHandler(mockUserService, mockFollowerService, nil)
	router := setupRouter(handler, 1)

	// 正常取消关注
	mockUserService.On("GetUserByID", 2).Return(&model.User{ID: 2, Name: "Danil Baybakov"}, nil)
	mockFollowerService.On("DeleteFollowing", 1, 2).Return(true, nil)

	req, _ := http.NewRequest("DELETE", "/api/users/2/follow", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"result":true`)

	// 本来就没有关注关系返回 404
	mockUserService.On("GetUserByID", 3).Return(&model.User{ID: 3, Name: "Egor Egorov"}, nil)
	mockFollowerService.On("DeleteFollowing", 1, 3).Return(false, nil)

	req, _ = http.NewRequest("DELETE", "/api/users/3/follow", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockFollowerService.AssertExpectations(t)
}
