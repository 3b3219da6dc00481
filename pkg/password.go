package pkg

import "golang.org/x/crypto/bcrypt"

// GeneratePassword hashea la contraseña con bcrypt antes de guardarla.
func GeneratePassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ""
	}
	return string(hash)
}

// ComparePassword compara el hash almacenado contra la contraseña recibida.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
