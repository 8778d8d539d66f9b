package domain

// AccountInfoResponse é o envelope do endpoint de informações da conta,
// com o consumo de créditos separado por classe de chamada
type AccountInfoResponse struct {
	Error   bool    `json:"error"`
	Message string  `json:"message,omitempty"`
	Billing Billing `json:"billing"`
}

type Billing struct {
	Discovery CreditWindow `json:"discovery"`
	Raw       CreditWindow `json:"raw"`
	ResetAt   *string      `json:"resetAt,omitempty"`
}

type CreditWindow struct {
	Limit int64 `json:"limit"`
	Used  int64 `json:"used"`
}
