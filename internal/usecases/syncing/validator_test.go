package syncing

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExternalID(t *testing.T) {
	tests := []struct {
		name       string
		externalID string
		wantErr    bool
	}{
		{
			name:       "Identificador válido simples",
			externalID: "maria_fit",
			wantErr:    false,
		},
		{
			name:       "Identificador válido com hífen e dígitos",
			externalID: "creator-2024_br",
			wantErr:    false,
		},
		{
			name:       "Identificador válido no comprimento mínimo",
			externalID: "abcde",
			wantErr:    false,
		},
		{
			name:       "Identificador válido no comprimento máximo",
			externalID: strings.Repeat("a", 50),
			wantErr:    false,
		},
		{
			name:       "Vazio é rejeitado",
			externalID: "",
			wantErr:    true,
		},
		{
			name:       "Abaixo do comprimento mínimo é rejeitado",
			externalID: "abcd",
			wantErr:    true,
		},
		{
			name:       "Acima do comprimento máximo é rejeitado",
			externalID: strings.Repeat("a", 51),
			wantErr:    true,
		},
		{
			name:       "Espaço não é permitido",
			externalID: "maria fit",
			wantErr:    true,
		},
		{
			name:       "Ponto não é permitido",
			externalID: "maria.fit",
			wantErr:    true,
		},
		{
			name:       "Arroba não é permitido",
			externalID: "@maria_fit",
			wantErr:    true,
		},
		{
			name:       "UUID interno é rejeitado mesmo com comprimento válido",
			externalID: "7f9c24e5-3a1b-4a89-9d4e-8f1b2c3d4e5f",
			wantErr:    true,
		},
		{
			name:       "String de 36 caracteres que não é UUID é aceita",
			externalID: strings.Repeat("x", 36),
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExternalID(tt.externalID)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidIdentifier)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("Qualquer UUID gerado é rejeitado", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			id := uuid.New().String()
			err := ValidateExternalID(id)
			require.Error(t, err, "uuid %s deveria ser rejeitado", id)
			assert.ErrorIs(t, err, ErrInvalidIdentifier)
		}
	})
}
