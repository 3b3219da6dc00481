package models

// Comment es la entrada del libro de visitas. El campo Email identifica al
// dueño: debe coincidir con el username del autor autenticado.
type Comment struct {
	ID       string `json:"id"`
	Fecha    string `json:"fecha"` // DD/MM/YYYY, HH:MM:SS en hora argentina
	Apellido string `json:"apellido"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Asunto   string `json:"asunto"`
	Mensaje  string `json:"mensaje"`
}
