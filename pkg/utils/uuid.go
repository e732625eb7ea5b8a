package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID genera un identificador corto para correlacionar las
// ejecuciones del scheduler en los logs.
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
