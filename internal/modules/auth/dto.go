package auth

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

type SessionResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
