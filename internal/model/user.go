package model

// User 登录账号，对应槽位 users
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"` // 编码后的密码，编码方式见 service.PasswordEncoder
}
