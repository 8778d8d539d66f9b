package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Clock abstrai a fonte de tempo do bucket para permitir relógio falso em testes
type Clock func() time.Time

var (
	ErrInvalidCost = errors.New("custo deve ser maior que zero e menor ou igual à capacidade")
)

// TokenBucket é o rate limiter local que protege o orçamento de requisições
// compartilhado da conta no provedor externo. A recarga é proporcional ao
// tempo decorrido desde a última recarga, limitada à capacidade. Não há
// reset a cada intervalo.
//
// O bucket limita apenas a taxa de chamadas; o saldo de créditos do provedor
// é acompanhado pelo CreditLedger, lido diretamente do provedor.
type TokenBucket struct {
	mu       sync.Mutex
	capacity float64
	tokens   float64
	interval time.Duration
	now      Clock
	last     time.Time
}

// Option configura o TokenBucket na construção
type Option func(*TokenBucket)

// WithClock injeta uma fonte de tempo alternativa (testes)
func WithClock(clock Clock) Option {
	return func(b *TokenBucket) {
		b.now = clock
	}
}

// New cria um bucket cheio com `capacity` tokens recarregados a cada `interval`
func New(capacity int, interval time.Duration, opts ...Option) *TokenBucket {
	b := &TokenBucket{
		capacity: float64(capacity),
		tokens:   float64(capacity),
		interval: interval,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.last = b.now()
	return b
}

// refill credita os tokens proporcionais ao tempo decorrido. Chamar com mu travado.
func (b *TokenBucket) refill() {
	now := b.now()
	elapsed := now.Sub(b.last)
	if elapsed <= 0 {
		return
	}

	b.tokens += b.capacity * float64(elapsed) / float64(b.interval)
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.last = now
}

// TryAcquire debita `cost` tokens sem bloquear. Retorna false se não há saldo.
func (b *TokenBucket) TryAcquire(cost int) bool {
	if cost <= 0 || float64(cost) > b.capacity {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	if b.tokens >= float64(cost) {
		b.tokens -= float64(cost)
		return true
	}
	return false
}

// Acquire suspende o chamador até que `cost` tokens estejam disponíveis e então
// os debita. Respeita o cancelamento do contexto durante a espera.
func (b *TokenBucket) Acquire(ctx context.Context, cost int) error {
	if cost <= 0 || float64(cost) > b.capacity {
		return ErrInvalidCost
	}

	for {
		b.mu.Lock()
		b.refill()
		if b.tokens >= float64(cost) {
			b.tokens -= float64(cost)
			b.mu.Unlock()
			return nil
		}

		// Tempo até acumular o saldo que falta
		missing := float64(cost) - b.tokens
		wait := time.Duration(missing / b.capacity * float64(b.interval))
		b.mu.Unlock()

		if wait <= 0 {
			wait = time.Millisecond
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Peek retorna o saldo atual de tokens sem consumir
func (b *TokenBucket) Peek() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	return b.tokens
}
