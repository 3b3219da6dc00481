package models

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // hash bcrypt, nunca se expone
	Role     string `json:"rol"` // 'admin' o 'usuario'
}

const (
	RoleAdmin   = "admin"
	RoleUsuario = "usuario"
)
