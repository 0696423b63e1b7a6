package user

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/danil-baybakov/app-clone-twitter/internal/errors"
	"github.com/danil-baybakov/app-clone-twitter/internal/middleware"
	"github.com/danil-baybakov/app-clone-twitter/internal/service"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler 处理用户资料和关注相关的请求
type UserHandler struct {
	userService     service.UserServiceInterface
	followerService service.FollowerServiceInterface
	metrics         *middleware.Metrics
}

// NewUserHandler 创建一个新的 UserHandler 实例
func NewUserHandler(
	userService service.UserServiceInterface,
	followerService service.FollowerServiceInterface,
	metrics *middleware.Metrics,
) *UserHandler {
	return &UserHandler{
		userService:     userService,
		followerService: followerService,
		metrics:         metrics,
	}
}

// getProfile 获取用户完整资料并返回给前端
func (h *UserHandler) getProfile(c *gin.Context, userID int) {
	profile, err := h.userService.GetUserProfile(userID)
	if err != nil {
		util.Logger.Error("获取用户资料失败", zap.Error(err), zap.Int("user_id", userID))
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "获取用户资料失败", err))
		return
	}
	if profile == nil {
		errors.HandleError(c, errors.New(errors.ErrUserNotFound,
			fmt.Sprintf("用户 id=%d 不存在", userID)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": true,
		"user":   profile,
	})
}

// GetMe 获取当前用户自己的资料
func (h *UserHandler) GetMe(c *gin.Context) {
	h.getProfile(c, c.GetInt("user_id"))
}

// GetUserByID 获取任意用户的资料
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的用户 id"))
		return
	}
	h.getProfile(c, id)
}

// Follow 将目标用户添加到当前用户的关注列表
// 目标用户不存在返回 NotFound；关注自己或重复关注直接视为成功
func (h *UserHandler) Follow(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的用户 id"))
		return
	}
	userID := c.GetInt("user_id")

	// 先检查目标用户存在
	target, err := h.userService.GetUserByID(id)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查找目标用户失败", err))
		return
	}
	if target == nil {
		errors.HandleError(c, errors.New(errors.ErrUserNotFound,
			fmt.Sprintf("用户 id=%d 不存在", id)))
		return
	}

	// 关注自己：不写任何数据，直接返回成功
	if id == userID {
		c.JSON(http.StatusOK, gin.H{"result": true})
		return
	}

	// 已经关注过：不重复写入，直接返回成功
	following, err := h.followerService.GetFollowing(userID, id)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查找关注关系失败", err))
		return
	}
	if following != nil {
		c.JSON(http.StatusOK, gin.H{"result": true})
		return
	}

	if err := h.followerService.AddFollowing(userID, id); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "添加关注关系失败", err))
		return
	}

	if h.metrics != nil {
		h.metrics.FollowRequests.WithLabelValues(c.FullPath()).Inc()
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}

// Unfollow 将目标用户从当前用户的关注列表移除
// 目标用户不存在或本来就没有关注关系时返回 NotFound
func (h *UserHandler) Unfollow(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的用户 id"))
		return
	}
	userID := c.GetInt("user_id")

	target, err := h.userService.GetUserByID(id)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查找目标用户失败", err))
		return
	}
	if target == nil {
		errors.HandleError(c, errors.New(errors.ErrUserNotFound,
			fmt.Sprintf("用户 id=%d 不存在", id)))
		return
	}

	removed, err := h.followerService.DeleteFollowing(userID, id)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "删除关注关系失败", err))
		return
	}
	if !removed {
		errors.HandleError(c, errors.New(errors.ErrFollowNotFound,
			fmt.Sprintf("当前用户没有关注用户 id=%d", id)))
		return
	}

	if h.metrics != nil {
		h.metrics.UnfollowRequests.WithLabelValues(c.FullPath()).Inc()
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}
