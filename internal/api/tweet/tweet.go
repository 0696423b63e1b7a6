package tweet

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

// TweetHandler 处理推文和点赞相关的请求
type TweetHandler struct {
	tweetService service.TweetServiceInterface
	mediaService service.MediaServiceInterface
	likeService  service.LikeServiceInterface
	metrics      *middleware.Metrics
}

// NewTweetHandler 创建一个新的 TweetHandler 实例
func NewTweetHandler(
	tweetService service.TweetServiceInterface,
	mediaService service.MediaServiceInterface,
	likeService service.LikeServiceInterface,
	metrics *middleware.Metrics,
) *TweetHandler {
	return &TweetHandler{
		tweetService: tweetService,
		mediaService: mediaService,
		likeService:  likeService,
		metrics:      metrics,
	}
}

type createTweetRequest struct {
	TweetData     string `json:"tweet_data" binding:"required"`
	TweetMediaIDs []int  `json:"tweet_media_ids" binding:"omitempty,positive_ids"`
}

// CreateTweet 创建一条新推文，并关联此前上传的媒体文件
// 两次写入是独立的存储操作，不在同一事务内
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	var req createTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Logger.Warn("创建推文失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}
	userID := c.GetInt("user_id")

	tweetID, err := h.tweetService.AddTweet(userID, req.TweetData)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "添加推文失败", err))
		return
	}

	if len(req.TweetMediaIDs) > 0 {
		if _, err := h.mediaService.AttachTweetID(req.TweetMediaIDs, tweetID); err != nil {
			errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "媒体文件关联推文失败", err))
			return
		}
	}

	if h.metrics != nil {
		h.metrics.TweetsCreated.WithLabelValues(c.FullPath()).Inc()
	}
	c.JSON(http.StatusCreated, gin.H{
		"result":   true,
		"tweet_id": tweetID,
	})
}

// GetTweets 获取信息流
func (h *TweetHandler) GetTweets(c *gin.Context) {
	tweets, err := h.tweetService.GetFeed()
	if err != nil {
		util.Logger.Error("获取信息流失败", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "获取信息流失败", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": true,
		"tweets": tweets,
	})
}

// DeleteTweet 删除推文，媒体文件和点赞级联删除
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的推文 id"))
		return
	}

	removed, err := h.tweetService.DeleteTweetByID(id)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "删除推文失败", err))
		return
	}
	if !removed {
		errors.HandleError(c, errors.New(errors.ErrTweetNotFound,
			fmt.Sprintf("推文 id=%d 不存在", id)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}

// Like 给推文点赞
// 重复点赞和给自己的推文点赞都直接视为成功，不写任何数据
func (h *TweetHandler) Like(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的推文 id"))
		return
	}
	userID := c.GetInt("user_id")

	// 已经点过赞：直接返回成功
	like, err := h.likeService.GetLikeByTweetIDAndUserID(id, userID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查找点赞记录失败", err))
		return
	}
	if like != nil {
		c.JSON(http.StatusOK, gin.H{"result": true})
		return
	}

	// 给自己的推文点赞：不写数据，直接返回成功
	owned, err := h.tweetService.GetTweetByIDAndUserID(id, userID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查找推文失败", err))
		return
	}
	if owned != nil {
		c.JSON(http.StatusOK, gin.H{"result": true})
		return
	}

	// 推文不存在返回 NotFound，避免外键冲突以系统错误暴露
	tweet, err := h.tweetService.GetTweetByID(id)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查找推文失败", err))
		return
	}
	if tweet == nil {
		errors.HandleError(c, errors.New(errors.ErrTweetNotFound,
			fmt.Sprintf("推文 id=%d 不存在", id)))
		return
	}

	if err := h.likeService.AddLike(id, userID); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "添加点赞失败", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}

// Unlike 取消对推文的点赞
// 对自己的推文调用直接视为成功；没有点赞记录返回 NotFound
func (h *TweetHandler) Unlike(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的推文 id"))
		return
	}
	userID := c.GetInt("user_id")

	// 自己的推文走不到删除，镜像自赞守卫
	owned, err := h.tweetService.GetTweetByIDAndUserID(id, userID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "查找推文失败", err))
		return
	}
	if owned != nil {
		c.JSON(http.StatusOK, gin.H{"result": true})
		return
	}

	removed, err := h.likeService.DeleteLike(id, userID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "删除点赞失败", err))
		return
	}
	if !removed {
		errors.HandleError(c, errors.New(errors.ErrLikeNotFound,
			fmt.Sprintf("当前用户没有给推文 id=%d 点过赞", id)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}
