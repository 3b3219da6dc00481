package pkg

import (
	"time"

	"guestbook-api/models"

	"github.com/golang-jwt/jwt/v5"
)

// Tiempo de expiración del token
const TokenExpiration = time.Hour

// Claims lleva la identidad resuelta a partir del token.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"rol"`
	jwt.RegisteredClaims
}

// GenerateToken firma un token con la identidad del usuario al momento de
// emitirlo. Un cambio de rol posterior no se refleja hasta reautenticar.
func GenerateToken(secret []byte, user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken verifica firma y expiración. Token malformado, mal firmado o
// vencido devuelve error, nunca claims parciales.
func ParseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}
