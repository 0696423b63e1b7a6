package service

import (
	"fmt"

	"github.com/danil-baybakov/app-clone-twitter/internal/model"
	"github.com/danil-baybakov/app-clone-twitter/internal/repository/interfaces"
	serviceErrors "github.com/danil-baybakov/app-clone-twitter/internal/service/errors"
	"github.com/danil-baybakov/app-clone-twitter/internal/storage"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"go.uber.org/zap"
)

// MediaServiceInterface 定义媒体文件服务接口
type MediaServiceInterface interface {
	AddMedia(fileName string, fileBody []byte, contentType string) (int, error)
	GetMediaByID(id int) (*model.Media, error)
	AttachTweetID(ids []int, tweetID int) (bool, error)
}

// MediaService 处理与媒体文件相关的业务逻辑
// blobStorage 可为 nil，此时不写归档副本
type MediaService struct {
	mediaRepo   interfaces.MediaRepository
	blobStorage storage.BlobStorage
}

// NewMediaService 创建一个新的 MediaService 实例
func NewMediaService(mediaRepo interfaces.MediaRepository, blobStorage storage.BlobStorage) *MediaService {
	return &MediaService{
		mediaRepo:   mediaRepo,
		blobStorage: blobStorage,
	}
}

// AddMedia 保存上传的媒体文件，返回新媒体文件 id
// 文件内容写入数据库；配置了归档存储时另写一份副本，失败只记录日志
func (s *MediaService) AddMedia(fileName string, fileBody []byte, contentType string) (int, error) {
	media := &model.Media{
		FileName: fileName,
		FileBody: fileBody,
	}
	if err := s.mediaRepo.Create(media); err != nil {
		return 0, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			"添加媒体文件数据时数据库操作失败", err)
	}

	if s.blobStorage != nil {
		path := fmt.Sprintf("medias/%d_%s", media.ID, fileName)
		if _, err := s.blobStorage.Save(path, fileBody, contentType); err != nil {
			util.Logger.Error("写入媒体文件归档副本失败",
				zap.Error(err), zap.Int("media_id", media.ID))
		}
	}

	return media.ID, nil
}

// GetMediaByID 通过 id 获取媒体文件，未找到返回 nil
func (s *MediaService) GetMediaByID(id int) (*model.Media, error) {
	media, err := s.mediaRepo.FindByID(id)
	if err != nil {
		return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("获取媒体文件数据时数据库操作失败 id=%d", id), err)
	}
	return media, nil
}

// AttachTweetID 给一批媒体文件写入所属推文 id，返回是否有记录被更新
// 与推文创建是两次独立的存储操作，不在同一事务内
func (s *MediaService) AttachTweetID(ids []int, tweetID int) (bool, error) {
	updated, err := s.mediaRepo.UpdateTweetIDByIDs(ids, tweetID)
	if err != nil {
		return false, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("媒体文件关联推文时数据库操作失败 tweet_id=%d", tweetID), err)
	}
	return updated, nil
}
