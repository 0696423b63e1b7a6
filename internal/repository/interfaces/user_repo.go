package interfaces

import "github.com/danil-baybakov/app-clone-twitter/internal/model"

// UserRepository 定义了用户相关的数据库操作接口
type UserRepository interface {
	Create(user *model.User) error
	CreateAll(users []model.User) error
	FindByID(id int) (*model.User, error)
	FindByAPIKey(apiKey string) (*model.User, error)
	Count() (int, error)
}
