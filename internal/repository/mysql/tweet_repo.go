package mysql

import (
	"database/sql"

	"github.com/danil-baybakov/app-clone-twitter/internal/model"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"go.uber.org/zap"
)

// tweetRepository 实现了 TweetRepository 接口
type tweetRepository struct {
	db *sql.DB
}

// NewTweetRepository 创建一个新的 tweetRepository 实例
func NewTweetRepository(db *sql.DB) *tweetRepository {
	return &tweetRepository{db}
}

// Create 创建一条新推文
func (r *tweetRepository) Create(tweet *model.Tweet) error {
	query := `INSERT INTO tweets (user_id, content) VALUES (?, ?)`
	result, err := r.db.Exec(query, tweet.UserID, tweet.Content)
	if err != nil {
		util.Logger.Error("创建推文失败", zap.Error(err), zap.Int("user_id", tweet.UserID))
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新推文ID失败", zap.Error(err))
		return err
	}
	tweet.ID = int(id)
	util.Logger.Info("推文创建成功", zap.Int("tweet_id", tweet.ID))
	return nil
}

// FindAll 查询全部推文，按 id 升序保证结果顺序稳定
func (r *tweetRepository) FindAll() ([]model.Tweet, error) {
	query := `SELECT id, user_id, COALESCE(content, '') FROM tweets ORDER BY id`
	rows, err := r.db.Query(query)
	if err != nil {
		util.Logger.Error("查询推文列表失败", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tweets []model.Tweet
	for rows.Next() {
		var tweet model.Tweet
		if err := rows.Scan(&tweet.ID, &tweet.UserID, &tweet.Content); err != nil {
			return nil, err
		}
		tweets = append(tweets, tweet)
	}
	return tweets, rows.Err()
}

// FindByID 通过ID查找推文，未找到返回 nil
func (r *tweetRepository) FindByID(id int) (*model.Tweet, error) {
	query := `SELECT id, user_id, COALESCE(content, '') FROM tweets WHERE id = ?`
	var tweet model.Tweet
	err := r.db.QueryRow(query, id).Scan(&tweet.ID, &tweet.UserID, &tweet.Content)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		util.Logger.Error("查找推文失败", zap.Error(err), zap.Int("tweet_id", id))
		return nil, err
	}
	return &tweet, nil
}

// FindByIDAndUserID 通过推文ID和作者ID查找推文，用于归属校验
func (r *tweetRepository) FindByIDAndUserID(id, userID int) (*model.Tweet, error) {
	query := `SELECT id, user_id, COALESCE(content, '') FROM tweets WHERE id = ? AND user_id = ?`
	var tweet model.Tweet
	err := r.db.QueryRow(query, id, userID).Scan(&tweet.ID, &tweet.UserID, &tweet.Content)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		util.Logger.Error("查找推文失败", zap.Error(err),
			zap.Int("tweet_id", id), zap.Int("user_id", userID))
		return nil, err
	}
	return &tweet, nil
}

// DeleteByID 删除推文，媒体文件和点赞由外键级联删除
// 返回是否有记录被删除
func (r *tweetRepository) DeleteByID(id int) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM tweets WHERE id = ?`, id)
	if err != nil {
		util.Logger.Error("删除推文失败", zap.Error(err), zap.Int("tweet_id", id))
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		util.Logger.Info("推文删除成功", zap.Int("tweet_id", id))
	}
	return affected > 0, nil
}

// Count 统计推文表记录数
func (r *tweetRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM tweets`).Scan(&count)
	if err != nil {
		util.Logger.Error("统计推文数量失败", zap.Error(err))
		return 0, err
	}
	return count, nil
}
