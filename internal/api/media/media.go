package media

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/danil-baybakov/app-clone-twitter/internal/errors"
	"github.com/danil-baybakov/app-clone-twitter/internal/service"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MediaHandler 处理媒体文件上传和下载请求
type MediaHandler struct {
	mediaService service.MediaServiceInterface
}

// NewMediaHandler 创建一个新的 MediaHandler 实例
func NewMediaHandler(mediaService service.MediaServiceInterface) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload 上传媒体文件，此时尚未关联推文
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.Logger.Warn("上传媒体文件失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "读取上传文件失败", err))
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "读取上传文件失败", err))
		return
	}

	mediaID, err := h.mediaService.AddMedia(
		fileHeader.Filename, body, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "保存媒体文件失败", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"result":   true,
		"media_id": mediaID,
	})
}

// Download 通过 id 获取媒体文件内容
func (h *MediaHandler) Download(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的媒体文件 id"))
		return
	}

	media, err := h.mediaService.GetMediaByID(id)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "获取媒体文件失败", err))
		return
	}
	if media == nil {
		errors.HandleError(c, errors.New(errors.ErrMediaNotFound,
			fmt.Sprintf("媒体文件 id=%d 不存在", id)))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", media.FileName))
	c.Data(http.StatusOK, http.DetectContentType(media.FileBody), media.FileBody)
}
