package pkg

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	letrasRegexp    = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ\s]+$`)
	letrasNumRegexp = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ0-9\s]+$`)
	mayusculaRegexp = regexp.MustCompile(`[A-Z]`)
	minusculaRegexp = regexp.MustCompile(`[a-z]`)
	digitoRegexp    = regexp.MustCompile(`[0-9]`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("letras", func(fl validator.FieldLevel) bool {
		return letrasRegexp.MatchString(fl.Field().String())
	})
	v.RegisterValidation("letrasnum", func(fl validator.FieldLevel) bool {
		return letrasNumRegexp.MatchString(fl.Field().String())
	})
	v.RegisterValidation("contrasena", func(fl validator.FieldLevel) bool {
		p := fl.Field().String()
		return len(p) >= 6 &&
			mayusculaRegexp.MatchString(p) &&
			minusculaRegexp.MatchString(p) &&
			digitoRegexp.MatchString(p)
	})
	return v
}

// CommentInput son los campos que valida el pipeline al crear un comentario.
// Apellido y nombre aceptan letras y espacios, el asunto además números y el
// mensaje no restringe caracteres.
type CommentInput struct {
	Apellido string `validate:"required,letras"`
	Nombre   string `validate:"required,letras"`
	Asunto   string `validate:"required,letrasnum"`
	Mensaje  string `validate:"required"`
}

// CommentPatch aplica las mismas reglas pero solo sobre los campos
// presentes; los omitidos conservan el valor guardado.
type CommentPatch struct {
	Apellido string `validate:"omitempty,letras"`
	Nombre   string `validate:"omitempty,letras"`
	Asunto   string `validate:"omitempty,letrasnum"`
	Mensaje  string `validate:"-"`
}

// Credentials valida los campos de registro e ingreso.
type Credentials struct {
	Username string `validate:"required,email"`
	Password string `validate:"required,contrasena"`
}

// ValidateStruct corre todas las reglas en una sola pasada y devuelve la
// lista completa de violaciones. El que llama ve todos los problemas en una
// sola respuesta, no de a uno.
func ValidateStruct(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	violations := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, messageFor(fe.Field(), fe.Tag()))
	}
	return violations
}

func messageFor(field, tag string) string {
	switch field {
	case "Apellido":
		if tag == "required" {
			return "El campo apellido es obligatorio."
		}
		return "El apellido contiene caracteres inválidos."
	case "Nombre":
		if tag == "required" {
			return "El campo nombre es obligatorio."
		}
		return "El nombre contiene caracteres inválidos."
	case "Asunto":
		if tag == "required" {
			return "El campo asunto es obligatorio."
		}
		return "El asunto contiene caracteres inválidos."
	case "Mensaje":
		return "El campo mensaje es obligatorio."
	case "Username":
		if tag == "required" {
			return "El campo email es obligatorio."
		}
		return "Debe ingresar un email válido."
	case "Password":
		if tag == "required" {
			return "El campo contraseña es obligatorio."
		}
		return "La contraseña debe tener al menos 6 caracteres, una mayúscula, una minúscula y un número."
	}
	return "El campo " + strings.ToLower(field) + " es inválido."
}
