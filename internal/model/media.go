package model

// Media 媒体文件实体
// tweet_id 可为空：媒体先上传，推文创建时再关联
type Media struct {
	ID       int    `json:"id"`
	FileName string `json:"file_name"`
	FileBody []byte `json:"-"`
	TweetID  *int   `json:"tweet_id"`
}
