package domain

import "fmt"

// UpstreamError preserva o status e o corpo originais de uma resposta de erro
// do provedor externo, para diagnóstico
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provedor externo retornou status %d: %s", e.StatusCode, e.Body)
}
