package domain

import "time"

// CreditClass distingue as classes de chamada cobradas pelo provedor externo
type CreditClass string

const (
	CreditClassDiscovery CreditClass = "discovery"
	CreditClassRaw       CreditClass = "raw"
)

// CreditUsage é o consumo de créditos de uma classe de chamada.
// Remaining é sempre max(0, Limit-Used).
type CreditUsage struct {
	Limit     int64 `json:"limit"`
	Used      int64 `json:"used"`
	Remaining int64 `json:"remaining"`
}

// CreditLedger é o orçamento de créditos da conta no provedor externo.
// O provedor é a fonte autoritativa: este motor apenas lê e exibe. O rate
// limiter local é uma aproximação, não um substituto deste ledger.
type CreditLedger struct {
	Discovery CreditUsage `json:"discovery"`
	Raw       CreditUsage `json:"raw"`
	ResetDate *time.Time  `json:"reset_date,omitempty"`
}
