package model

type GetUserRequest struct {
	ID uint64 `json:"id"`
}

type GetUserResponse User

type MakeAdminRequest struct {
	UserID uint64 `json:"user_id"`
}

type MakeAdminResponse struct{}
