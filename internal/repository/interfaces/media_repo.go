package interfaces

import "github.com/danil-baybakov/app-clone-twitter/internal/model"

// MediaRepository 定义了媒体文件相关的数据库操作接口
type MediaRepository interface {
	Create(media *model.Media) error
	FindByID(id int) (*model.Media, error)
	FindByTweetID(tweetID int) ([]model.Media, error)
	// UpdateTweetIDByIDs 给一批媒体文件记录写入所属推文 id，返回是否有记录被更新
	UpdateTweetIDByIDs(ids []int, tweetID int) (bool, error)
}
