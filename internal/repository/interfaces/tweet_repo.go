package interfaces

import "github.com/danil-baybakov/app-clone-twitter/internal/model"

// TweetRepository 定义了推文相关的数据库操作接口
type TweetRepository interface {
	Create(tweet *model.Tweet) error
	FindAll() ([]model.Tweet, error)
	FindByID(id int) (*model.Tweet, error)
	FindByIDAndUserID(id, userID int) (*model.Tweet, error)
	DeleteByID(id int) (bool, error)
	Count() (int, error)
}
