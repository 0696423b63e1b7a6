package model

// User 用户实体
// api_key 是用户的不透明凭证，请求头中携带它来解析身份
type User struct {
	ID     int    `json:"id"`
	APIKey string `json:"-"`
	Name   string `json:"name"`
}

// UserBrief 用户简要信息，用于粉丝/关注列表和推文作者
type UserBrief struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserProfile 用户资料，包含粉丝列表和关注列表
type UserProfile struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Followers []UserBrief `json:"followers"`
	Following []UserBrief `json:"following"`
}
