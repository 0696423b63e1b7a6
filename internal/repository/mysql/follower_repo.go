package mysql

import (
	"database/sql"

	"github.com/danil-baybakov/app-clone-twitter/internal/model"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"go.uber.org/zap"
)

// followerRepository 实现了 FollowerRepository 接口
type followerRepository struct {
	db *sql.DB
}

// NewFollowerRepository 创建一个新的 followerRepository 实例
func NewFollowerRepository(db *sql.DB) *followerRepository {
	return &followerRepository{db}
}

// Create 创建一条关注关系
// 唯一约束和 follower_id <> followed_id 检查约束是最后一道防线，
// 冲突由调用方通过 IsDuplicateEntry 识别
func (r *followerRepository) Create(follower *model.Follower) error {
	query := `INSERT INTO followers (follower_id, followed_id) VALUES (?, ?)`
	result, err := r.db.Exec(query, follower.FollowerID, follower.FollowedID)
	if err != nil {
		if !IsDuplicateEntry(err) {
			util.Logger.Error("创建关注关系失败", zap.Error(err),
				zap.Int("follower_id", follower.FollowerID),
				zap.Int("followed_id", follower.FollowedID))
		}
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新关注关系ID失败", zap.Error(err))
		return err
	}
	follower.ID = int(id)
	util.Logger.Info("关注关系创建成功", zap.Int("follow_id", follower.ID))
	return nil
}

// FindByPair 按有序对 (follower_id, followed_id) 精确查找关注关系，未找到返回 nil
func (r *followerRepository) FindByPair(followerID, followedID int) (*model.Follower, error) {
	query := `SELECT id, follower_id, followed_id FROM followers WHERE follower_id = ? AND followed_id = ?`
	var follower model.Follower
	err := r.db.QueryRow(query, followerID, followedID).
		Scan(&follower.ID, &follower.FollowerID, &follower.FollowedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		util.Logger.Error("查找关注关系失败", zap.Error(err),
			zap.Int("follower_id", followerID), zap.Int("followed_id", followedID))
		return nil, err
	}
	return &follower, nil
}

// DeleteByPair 删除关注关系，返回是否有记录被删除
func (r *followerRepository) DeleteByPair(followerID, followedID int) (bool, error) {
	result, err := r.db.Exec(
		`DELETE FROM followers WHERE follower_id = ? AND followed_id = ?`,
		followerID, followedID)
	if err != nil {
		util.Logger.Error("删除关注关系失败", zap.Error(err),
			zap.Int("follower_id", followerID), zap.Int("followed_id", followedID))
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetFollowers 查询关注了该用户的用户列表（粉丝）
// 按关注关系 id 升序保证单次读取内顺序确定
func (r *followerRepository) GetFollowers(userID int) ([]model.UserBrief, error) {
	query := `
        SELECT u.id, u.name
        FROM users u
        JOIN followers f ON u.id = f.follower_id
        WHERE f.followed_id = ?
        ORDER BY f.id`
	return r.queryUserBriefs(query, userID)
}

// GetFollowing 查询该用户关注的用户列表
func (r *followerRepository) GetFollowing(userID int) ([]model.UserBrief, error) {
	query := `
        SELECT u.id, u.name
        FROM users u
        JOIN followers f ON u.id = f.followed_id
        WHERE f.follower_id = ?
        ORDER BY f.id`
	return r.queryUserBriefs(query, userID)
}

func (r *followerRepository) queryUserBriefs(query string, userID int) ([]model.UserBrief, error) {
	rows, err := r.db.Query(query, userID)
	if err != nil {
		util.Logger.Error("查询关注关系列表失败", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	defer rows.Close()

	users := make([]model.UserBrief, 0)
	for rows.Next() {
		var user model.UserBrief
		if err := rows.Scan(&user.ID, &user.Name); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
