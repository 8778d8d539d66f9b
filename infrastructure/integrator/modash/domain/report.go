package domain

import (
	"encoding/json"

	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

// ProfileReportResponse é o envelope retornado pelo endpoint de relatório de
// perfil. O provedor sinaliza falhas de negócio com error=true mesmo em 200.
type ProfileReportResponse struct {
	Error   bool           `json:"error"`
	Message string         `json:"message,omitempty"`
	Profile map[string]any `json:"profile"`
}

// ProfileReport é o relatório de perfil etiquetado pela plataforma de origem.
// O conjunto de nomes de campo dentro de Profile varia por plataforma e por
// versão do endpoint, por isso o payload é mantido como um mapa e a resolução
// de nomes fica a cargo do normalizador.
type ProfileReport struct {
	Platform       domain.Platform
	ExternalUserID string
	Profile        map[string]any
	Raw            json.RawMessage
}
