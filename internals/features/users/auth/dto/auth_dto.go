package dto

// RegisterRequest: payload pendaftaran user baru
type RegisterRequest struct {
	Username      string `json:"username" validate:"required,min=3,max=180"`
	Email         string `json:"email" validate:"required,email"`
	PlainPassword string `json:"plainPassword" validate:"required,min=8"`
}

// LoginRequest: kredensial login dengan username atau email
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// LoginResponse: access token JWT untuk endpoint /api
type LoginResponse struct {
	Token string `json:"token"`
}
