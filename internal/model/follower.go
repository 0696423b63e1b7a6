package model

// Follower 关注关系实体（有向边）
// (follower_id, followed_id) 唯一，且不允许自己关注自己
type Follower struct {
	ID         int `json:"id"`
	FollowerID int `json:"follower_id"`
	FollowedID int `json:"followed_id"`
}
