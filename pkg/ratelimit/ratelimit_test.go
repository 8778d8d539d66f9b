package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock é um relógio controlado manualmente para os testes
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestBucket(capacity int, interval time.Duration) (*TokenBucket, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return New(capacity, interval, WithClock(clock.Now)), clock
}

func TestTokenBucket_CapacidadeInicial(t *testing.T) {
	bucket, _ := newTestBucket(10, time.Second)

	// Bucket nasce cheio: 10 aquisições imediatas devem passar sem espera
	for i := 0; i < 10; i++ {
		assert.True(t, bucket.TryAcquire(1), "aquisição %d deveria ter sucesso", i+1)
	}

	// A 11ª deve falhar até haver recarga
	assert.False(t, bucket.TryAcquire(1))
}

func TestTokenBucket_RecargaProporcional(t *testing.T) {
	bucket, clock := newTestBucket(10, time.Second)

	// Esvaziar o bucket
	for i := 0; i < 10; i++ {
		require.True(t, bucket.TryAcquire(1))
	}
	assert.InDelta(t, 0, bucket.Peek(), 0.001)

	// Metade do intervalo recarrega metade da capacidade
	clock.Advance(500 * time.Millisecond)
	assert.InDelta(t, 5, bucket.Peek(), 0.001)

	// A recarga nunca ultrapassa a capacidade
	clock.Advance(10 * time.Second)
	assert.InDelta(t, 10, bucket.Peek(), 0.001)
}

func TestTokenBucket_RecargaLiberaAquisicao(t *testing.T) {
	bucket, clock := newTestBucket(10, time.Second)

	for i := 0; i < 10; i++ {
		require.True(t, bucket.TryAcquire(1))
	}
	require.False(t, bucket.TryAcquire(1))

	// Após um décimo do intervalo, exatamente um token foi recarregado
	clock.Advance(100 * time.Millisecond)
	assert.True(t, bucket.TryAcquire(1))
	assert.False(t, bucket.TryAcquire(1))
}

func TestTokenBucket_PeekNaoConsome(t *testing.T) {
	bucket, _ := newTestBucket(5, time.Second)

	assert.InDelta(t, 5, bucket.Peek(), 0.001)
	assert.InDelta(t, 5, bucket.Peek(), 0.001)

	require.True(t, bucket.TryAcquire(2))
	assert.InDelta(t, 3, bucket.Peek(), 0.001)
}

func TestTokenBucket_AcquireBloqueiaAteRecarga(t *testing.T) {
	// Relógio real com intervalo curto para exercitar o caminho bloqueante
	bucket := New(2, 100*time.Millisecond)

	ctx := context.Background()
	require.NoError(t, bucket.Acquire(ctx, 2))

	start := time.Now()
	require.NoError(t, bucket.Acquire(ctx, 1))
	elapsed := time.Since(start)

	// Um token exige ao menos metade do intervalo de recarga
	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
}

func TestTokenBucket_AcquireRespeitaCancelamento(t *testing.T) {
	bucket := New(1, time.Hour)

	ctx := context.Background()
	require.NoError(t, bucket.Acquire(ctx, 1))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := bucket.Acquire(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTokenBucket_CustoInvalido(t *testing.T) {
	bucket, _ := newTestBucket(5, time.Second)

	assert.ErrorIs(t, bucket.Acquire(context.Background(), 0), ErrInvalidCost)
	assert.ErrorIs(t, bucket.Acquire(context.Background(), 6), ErrInvalidCost)
	assert.False(t, bucket.TryAcquire(0))
	assert.False(t, bucket.TryAcquire(6))
}
