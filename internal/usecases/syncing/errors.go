package syncing

import (
	"errors"
	"fmt"
)

// Taxonomia de erros do motor de sincronização. Nenhum deles dispara retry
// automático: o chamador (ou o agendador) decide o que fazer.
var (
	// Erro do chamador: corrigir a entrada, não repetir
	ErrInvalidIdentifier = errors.New("identificador externo inválido")

	// Falha de autorização, sem retry
	ErrForbidden = errors.New("sem permissão para atualizar este perfil")

	// O provedor devolveu erro ou payload malformado; retryable pelo chamador
	ErrUpstream = errors.New("falha no provedor externo")

	// O payload não tinha nenhum campo aproveitável para uma métrica obrigatória
	ErrNormalization = errors.New("payload sem métricas utilizáveis")

	// Falha de escrita no banco; o snapshot anterior permanece autoritativo
	ErrPersistence = errors.New("falha ao persistir resultado do refresh")

	ErrNotFound = errors.New("recurso não encontrado")
)

// SyncError carrega o código de API e detalhes de um erro do motor
type SyncError struct {
	Err     error  // Erro base da taxonomia
	Code    string // Código de erro para API
	Details string // Detalhes adicionais (mensagem do provedor, campos tentados)
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError cria um erro do motor com contexto para a API
func NewSyncError(baseErr error, code string, details string) *SyncError {
	return &SyncError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
