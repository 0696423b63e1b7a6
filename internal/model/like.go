package model

// Like 点赞实体，(tweet_id, user_id) 唯一
type Like struct {
	ID      int `json:"id"`
	TweetID int `json:"tweet_id"`
	UserID  int `json:"user_id"`
}
