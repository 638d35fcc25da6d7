package model

// Session 当前登录会话，对应槽位 currentUser，未登录时槽位不存在
type Session struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// TokenID 本次登录签发的 Token JTI；旧数据中不存在该字段
	TokenID string `json:"tokenId,omitempty"`
}
