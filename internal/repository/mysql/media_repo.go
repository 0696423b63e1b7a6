package mysql

import (
	"database/sql"
	"strings"

	"github.com/danil-baybakov/app-clone-twitter/internal/model"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"go.uber.org/zap"
)

// mediaRepository 实现了 MediaRepository 接口
type mediaRepository struct {
	db *sql.DB
}

// NewMediaRepository 创建一个新的 mediaRepository 实例
func NewMediaRepository(db *sql.DB) *mediaRepository {
	return &mediaRepository{db}
}

// Create 保存一个新媒体文件记录，tweet_id 此时为空
func (r *mediaRepository) Create(media *model.Media) error {
	query := `INSERT INTO medias (file_name, file_body, tweet_id) VALUES (?, ?, ?)`
	result, err := r.db.Exec(query, media.FileName, media.FileBody, media.TweetID)
	if err != nil {
		util.Logger.Error("保存媒体文件失败", zap.Error(err), zap.String("file_name", media.FileName))
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		util.Logger.Error("获取新媒体文件ID失败", zap.Error(err))
		return err
	}
	media.ID = int(id)
	util.Logger.Info("媒体文件保存成功", zap.Int("media_id", media.ID))
	return nil
}

// FindByID 通过ID查找媒体文件，未找到返回 nil
func (r *mediaRepository) FindByID(id int) (*model.Media, error) {
	query := `SELECT id, file_name, file_body, tweet_id FROM medias WHERE id = ?`
	var media model.Media
	var tweetID sql.NullInt64
	err := r.db.QueryRow(query, id).Scan(&media.ID, &media.FileName, &media.FileBody, &tweetID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		util.Logger.Error("查找媒体文件失败", zap.Error(err), zap.Int("media_id", id))
		return nil, err
	}
	if tweetID.Valid {
		v := int(tweetID.Int64)
		media.TweetID = &v
	}
	return &media, nil
}

// FindByTweetID 查询推文的全部媒体文件，按 id 升序
// 信息流拼装只需要附件引用，这里不加载文件内容
func (r *mediaRepository) FindByTweetID(tweetID int) ([]model.Media, error) {
	query := `SELECT id, file_name, tweet_id FROM medias WHERE tweet_id = ? ORDER BY id`
	rows, err := r.db.Query(query, tweetID)
	if err != nil {
		util.Logger.Error("查询推文媒体文件失败", zap.Error(err), zap.Int("tweet_id", tweetID))
		return nil, err
	}
	defer rows.Close()

	var medias []model.Media
	for rows.Next() {
		var media model.Media
		var tid sql.NullInt64
		if err := rows.Scan(&media.ID, &media.FileName, &tid); err != nil {
			return nil, err
		}
		if tid.Valid {
			v := int(tid.Int64)
			media.TweetID = &v
		}
		medias = append(medias, media)
	}
	return medias, rows.Err()
}

// UpdateTweetIDByIDs 给一批媒体文件记录写入所属推文 id
// 返回是否有记录被更新
func (r *mediaRepository) UpdateTweetIDByIDs(ids []int, tweetID int) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	query := `UPDATE medias SET tweet_id = ? WHERE id IN (` + placeholders + `)`

	args := make([]interface{}, 0, len(ids)+1)
	args = append(args, tweetID)
	for _, id := range ids {
		args = append(args, id)
	}

	result, err := r.db.Exec(query, args...)
	if err != nil {
		util.Logger.Error("更新媒体文件所属推文失败", zap.Error(err), zap.Int("tweet_id", tweetID))
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	util.Logger.Info("媒体文件关联推文完成",
		zap.Int("tweet_id", tweetID), zap.Int64("affected", affected))
	return affected > 0, nil
}
