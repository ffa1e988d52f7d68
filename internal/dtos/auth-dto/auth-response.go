package auth_dto

type RegisterUserResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

type LoginUserResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type LogoutResponse struct {
	UserID string `json:"user_id"`
}
