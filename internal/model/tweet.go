package model

// Tweet 推文实体
type Tweet struct {
	ID      int    `json:"id"`
	UserID  int    `json:"user_id"`
	Content string `json:"content"`
}

// LikeBrief 点赞简要信息，用于推文点赞列表
type LikeBrief struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
}

// FeedTweet 信息流中的一条推文，已拼装作者、附件和点赞数据
type FeedTweet struct {
	ID          int         `json:"id"`
	Content     string      `json:"content"`
	Attachments []string    `json:"attachments"`
	Author      UserBrief   `json:"author"`
	Likes       []LikeBrief `json:"likes"`
}
