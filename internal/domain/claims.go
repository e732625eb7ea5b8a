package domain

import "github.com/golang-jwt/jwt/v5"

// Claims son los datos de sesión que viajan dentro del JWT del operador.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
