package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegistrarRequest creates a user. An empty Rol defaults to vendedor.
type RegistrarRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
	Nombre   string `json:"nombre"   validate:"required,max=100"`
	Rol      string `json:"rol"      validate:"omitempty,oneof=admin vendedor"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse is the sanitized user record; the password hash never leaves
// the service layer.
type UsuarioResponse struct {
	IdUsuario string `json:"Id_Usuario"`
	Username  string `json:"Username"`
	Nombre    string `json:"Nombre"`
	Rol       string `json:"Rol"`
}

type LoginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// SesionUsuario mirrors the identity carried in the access token.
type SesionUsuario struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
}

type VerificarResponse struct {
	Success bool          `json:"success"`
	Usuario SesionUsuario `json:"usuario"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
