package domain

import "encoding/json"

// MediaInfoResponse é o envelope do endpoint de informações de mídia por URL
type MediaInfoResponse struct {
	Error   bool           `json:"error"`
	Message string         `json:"message,omitempty"`
	Media   map[string]any `json:"media"`
}

// MediaInfo são os contadores de engajamento de uma publicação individual
type MediaInfo struct {
	URL      string          `json:"url"`
	Likes    *float64        `json:"likes,omitempty"`
	Comments *float64        `json:"comments,omitempty"`
	Views    *float64        `json:"views,omitempty"`
	Raw      json.RawMessage `json:"-"`
}
