package dto

type SendCodeRequest struct {
	Phone string `json:"phone" binding:"required,cnmobile"`
}

type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
}

type LoginRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type UserResponse struct {
	Phone    string `json:"phone"`
	Nickname string `json:"nickname"`
}
