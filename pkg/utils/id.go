package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSweepID gera um identificador curto para correlacionar os logs de
// uma varredura em massa
func GenerateSweepID() (string, error) {
	return gonanoid.Generate(characters, 8)
}
