// Package authenticating protege la API con un único par de
// credenciales de operador. La verificación de credenciales es un
// contrato intercambiable: la implementación estática compara contra
// la configuración, pero un directorio externo podría sustituirla sin
// tocar el servicio.
package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Bigyayos/TiendaControl/internal/config"
	"github.com/Bigyayos/TiendaControl/internal/domain"
	apiErrors "github.com/Bigyayos/TiendaControl/pkg/apiErrors"
)

const sessionDuration = 24 * time.Hour

type Authenticator interface {
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// CredentialVerifier valida un par usuario/contraseña. Se inyecta en el
// servicio para poder cambiar la fuente de credenciales.
type CredentialVerifier interface {
	Verify(username, password string) error
}

// StaticVerifier compara contra el único par configurado. La contraseña
// configurada se hashea al construir el verificador para que la
// comparación posterior sea siempre sobre bcrypt.
type StaticVerifier struct {
	username     string
	passwordHash []byte
}

func NewStaticVerifier(cfg config.Auth) (*StaticVerifier, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("credenciales de operador sin configurar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &StaticVerifier{
		username:     cfg.Username,
		passwordHash: hash,
	}, nil
}

func (v *StaticVerifier) Verify(username, password string) error {
	if username != v.username {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}

type Service struct {
	verifier  CredentialVerifier
	secretKey string
}

func NewService(verifier CredentialVerifier, cfg *config.Config) Authenticator {
	return &Service{
		verifier:  verifier,
		secretKey: cfg.SecretKey,
	}
}

func (s *Service) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrInvalidCredentials, "Usuario y contraseña son obligatorios")
	}

	if err := s.verifier.Verify(username, password); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuario o contraseña incorrectos")
	}

	token, err := generateJWT(username, s.secretKey)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Error al generar el token de sesión")
	}

	return token, nil
}

func generateJWT(username, secretKey string) (string, error) {
	claims := domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
