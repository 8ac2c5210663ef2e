package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // segundos
	Email     string `json:"email"`
}

// SelectTenantRequest cambia el tenant activo del panel de admin.
type SelectTenantRequest struct {
	Tenant string `json:"tenant"`
}

type SelectTenantResponse struct {
	Tenant string `json:"tenant"`
	Label  string `json:"label"`
}
