package model

type SignupRequest struct {
	Username               string `json:"username"`
	Password               string `json:"password"`
	Email                  string `json:"email"`
	FullName               string `json:"full_name"`
	Country                string `json:"country"`
	SubscribedToNewsletter bool   `json:"subscribed_to_newsletter"`
}

type SignupResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}
