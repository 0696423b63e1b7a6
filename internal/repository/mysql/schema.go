package mysql

import (
	"database/sql"
	"strings"

	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"go.uber.org/zap"
)

// 级联删除规则由外键约束保证：
// 删除用户时级联删除其推文、点赞和双向关注关系，
// 删除推文时级联删除其媒体文件和点赞。
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		api_key VARCHAR(50) NOT NULL UNIQUE,
		name VARCHAR(50) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS tweets (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		content TEXT NULL,
		CONSTRAINT fk_tweets_user FOREIGN KEY (user_id)
			REFERENCES users (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS medias (
		id INT AUTO_INCREMENT PRIMARY KEY,
		file_name VARCHAR(255) NOT NULL,
		file_body LONGBLOB,
		tweet_id INT NULL,
		CONSTRAINT fk_medias_tweet FOREIGN KEY (tweet_id)
			REFERENCES tweets (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS likes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		tweet_id INT NOT NULL,
		user_id INT NOT NULL,
		CONSTRAINT fk_likes_tweet FOREIGN KEY (tweet_id)
			REFERENCES tweets (id) ON DELETE CASCADE,
		CONSTRAINT fk_likes_user FOREIGN KEY (user_id)
			REFERENCES users (id) ON DELETE CASCADE,
		CONSTRAINT user_tweet_uc UNIQUE (tweet_id, user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS followers (
		id INT AUTO_INCREMENT PRIMARY KEY,
		follower_id INT NOT NULL,
		followed_id INT NOT NULL,
		CONSTRAINT fk_followers_follower FOREIGN KEY (follower_id)
			REFERENCES users (id) ON DELETE CASCADE,
		CONSTRAINT fk_followers_followed FOREIGN KEY (followed_id)
			REFERENCES users (id) ON DELETE CASCADE,
		CONSTRAINT user_follower_uc UNIQUE (follower_id, followed_id),
		CONSTRAINT user_follower_neq CHECK (follower_id <> followed_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema 确保数据库表结构存在
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			util.Logger.Error("创建数据库表失败", zap.Error(err))
			return err
		}
	}
	util.Logger.Info("数据库表结构检查完成")
	return nil
}

// IsDuplicateEntry 判断错误是否为唯一约束冲突
func IsDuplicateEntry(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
