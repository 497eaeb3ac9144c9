package dto

type SignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type UserResponse struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
}
