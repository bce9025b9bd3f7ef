package auth

type LoginRequest struct {
	Username string `json:"username"` // Логин (нормализуется в нижний регистр)
	Password string `json:"password"`
}

type LoginResponse struct {
	Message     string `json:"message"`      // "Logged in as <username>"
	AccessToken string `json:"access_token"` // JWT для Authorization: Bearer
}

type LogoutResponse struct {
	Message string `json:"message"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
