package mysql

import (
	"database/sql"

	"github.com/danil-baybakov/app-clone-twitter/internal/model"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"go.uber.org/zap"
)

// userRepository 实现了 UserRepository 接口
type userRepository struct {
	db *sql.DB
}

// NewUserRepository 创建一个新的 userRepository 实例
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db}
}

// Create 创建一个新用户
func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (api_key, name) VALUES (?, ?)`
	result, err := r.db.Exec(query, user.APIKey, user.Name)
	if err != nil {
		util.Logger.Error("创建用户失败", zap.Error(err))
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新用户ID失败", zap.Error(err))
		return err
	}
	user.ID = int(id)
	util.Logger.Info("用户创建成功", zap.Int("user_id", user.ID))
	return nil
}

// CreateAll 批量创建用户，用于启动引导
func (r *userRepository) CreateAll(users []model.User) error {
	for i := range users {
		if err := r.Create(&users[i]); err != nil {
			return err
		}
	}
	return nil
}

// FindByID 通过ID查找用户，未找到返回 nil
func (r *userRepository) FindByID(id int) (*model.User, error) {
	query := `SELECT id, api_key, name FROM users WHERE id = ?`
	var user model.User
	err := r.db.QueryRow(query, id).Scan(&user.ID, &user.APIKey, &user.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		util.Logger.Error("查找用户失败", zap.Error(err), zap.Int("user_id", id))
		return nil, err
	}
	return &user, nil
}

// FindByAPIKey 通过 api_key 查找用户，未找到返回 nil
func (r *userRepository) FindByAPIKey(apiKey string) (*model.User, error) {
	query := `SELECT id, api_key, name FROM users WHERE api_key = ?`
	var user model.User
	err := r.db.QueryRow(query, apiKey).Scan(&user.ID, &user.APIKey, &user.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		util.Logger.Error("通过api_key查找用户失败", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// Count 统计用户表记录数
func (r *userRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		util.Logger.Error("统计用户数量失败", zap.Error(err))
		return 0, err
	}
	return count, nil
}
