package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bigyayos/TiendaControl/internal/config"
)

func newTestService(t *testing.T) Authenticator {
	t.Helper()

	verifier, err := NewStaticVerifier(config.Auth{
		Username: "Supervisor",
		Password: "secreta123",
	})
	require.NoError(t, err)

	return NewService(verifier, &config.Config{SecretKey: "clave-de-prueba"})
}

func TestService_Login(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "Credenciales correctas devuelven un token",
			username: "Supervisor",
			password: "secreta123",
		},
		{
			name:     "Contraseña incorrecta",
			username: "Supervisor",
			password: "otra",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Usuario desconocido",
			username: "Intruso",
			password: "secreta123",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Credenciales vacías",
			username: "",
			password: "",
			wantErr:  ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				assert.True(t, IsCredentialsError(err))
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(t)

	token, err := service.Login("Supervisor", "secreta123")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Supervisor", claims.Username)

	// Un token firmado con otra clave no pasa la validación
	otherService := NewService(mustVerifier(t), &config.Config{SecretKey: "otra-clave"})
	_, err = otherService.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken("no-es-un-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func mustVerifier(t *testing.T) CredentialVerifier {
	t.Helper()

	verifier, err := NewStaticVerifier(config.Auth{Username: "x", Password: "y"})
	require.NoError(t, err)
	return verifier
}

func TestNewStaticVerifier_SinCredenciales(t *testing.T) {
	_, err := NewStaticVerifier(config.Auth{})
	assert.Error(t, err)
}
