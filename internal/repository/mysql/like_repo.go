package mysql

import (
	"database/sql"

	"github.com/danil-baybakov/app-clone-twitter/internal/model"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"go.uber.org/zap"
)

// likeRepository 实现了 LikeRepository 接口
type likeRepository struct {
	db *sql.DB
}

// NewLikeRepository 创建一个新的 likeRepository 实例
func NewLikeRepository(db *sql.DB) *likeRepository {
	return &likeRepository{db}
}

// Create 创建一条点赞记录
// (tweet_id, user_id) 唯一约束是并发重复提交的最后一道防线，
// 冲突由调用方通过 IsDuplicateEntry 识别
func (r *likeRepository) Create(like *model.Like) error {
	query := `INSERT INTO likes (tweet_id, user_id) VALUES (?, ?)`
	result, err := r.db.Exec(query, like.TweetID, like.UserID)
	if err != nil {
		if !IsDuplicateEntry(err) {
			util.Logger.Error("创建点赞失败", zap.Error(err),
				zap.Int("tweet_id", like.TweetID), zap.Int("user_id", like.UserID))
		}
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新点赞ID失败", zap.Error(err))
		return err
	}
	like.ID = int(id)
	util.Logger.Info("点赞创建成功", zap.Int("like_id", like.ID))
	return nil
}

// FindByTweetIDAndUserID 通过推文ID和用户ID查找点赞记录，未找到返回 nil
func (r *likeRepository) FindByTweetIDAndUserID(tweetID, userID int) (*model.Like, error) {
	query := `SELECT id, tweet_id, user_id FROM likes WHERE tweet_id = ? AND user_id = ?`
	var like model.Like
	err := r.db.QueryRow(query, tweetID, userID).Scan(&like.ID, &like.TweetID, &like.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		util.Logger.Error("查找点赞记录失败", zap.Error(err),
			zap.Int("tweet_id", tweetID), zap.Int("user_id", userID))
		return nil, err
	}
	return &like, nil
}

// FindByTweetID 查询推文的全部点赞记录，按 id 升序
func (r *likeRepository) FindByTweetID(tweetID int) ([]model.Like, error) {
	query := `SELECT id, tweet_id, user_id FROM likes WHERE tweet_id = ? ORDER BY id`
	rows, err := r.db.Query(query, tweetID)
	if err != nil {
		util.Logger.Error("查询推文点赞列表失败", zap.Error(err), zap.Int("tweet_id", tweetID))
		return nil, err
	}
	defer rows.Close()

	var likes []model.Like
	for rows.Next() {
		var like model.Like
		if err := rows.Scan(&like.ID, &like.TweetID, &like.UserID); err != nil {
			return nil, err
		}
		likes = append(likes, like)
	}
	return likes, rows.Err()
}

// DeleteByTweetIDAndUserID 删除点赞记录，返回是否有记录被删除
func (r *likeRepository) DeleteByTweetIDAndUserID(tweetID, userID int) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM likes WHERE tweet_id = ? AND user_id = ?`, tweetID, userID)
	if err != nil {
		util.Logger.Error("删除点赞失败", zap.Error(err),
			zap.Int("tweet_id", tweetID), zap.Int("user_id", userID))
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
