package syncing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
)

const (
	externalIDMinLength = 5
	externalIDMaxLength = 50
)

// ValidateExternalID valida um identificador do provedor externo antes de
// qualquer chamada de rede, para não gastar créditos com requisições
// estruturalmente inválidas. Função pura, sem I/O.
//
// Identificadores no formato UUID são rejeitados mesmo com comprimento
// válido: são chaves primárias internas, nunca identificadores do provedor.
// Passar o ID interno no lugar do externo é um bug de integração recorrente.
func ValidateExternalID(externalID string) error {
	if externalID == "" {
		return NewSyncError(ErrInvalidIdentifier, apiErrors.ErrInvalidExternalID, "identificador vazio")
	}

	if isInternalUUID(externalID) {
		return NewSyncError(ErrInvalidIdentifier, apiErrors.ErrInvalidExternalID, "identificador no formato de chave primária interna")
	}

	if len(externalID) < externalIDMinLength || len(externalID) > externalIDMaxLength {
		return NewSyncError(ErrInvalidIdentifier, apiErrors.ErrInvalidExternalID, fmt.Sprintf(
			"comprimento fora do intervalo [%d,%d]: %d",
			externalIDMinLength, externalIDMaxLength, len(externalID),
		))
	}

	for _, c := range externalID {
		if !isAllowedChar(c) {
			return NewSyncError(ErrInvalidIdentifier, apiErrors.ErrInvalidExternalID, fmt.Sprintf("caractere não permitido: %q", c))
		}
	}

	return nil
}

// isInternalUUID detecta a forma canônica de 36 caracteres com hifens
func isInternalUUID(s string) bool {
	if len(s) != 36 {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}

func isAllowedChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
