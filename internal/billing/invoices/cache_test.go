package invoices

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*PDFCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewPDFCache(client, ttl), mr
}

func TestPDFCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	miss, err := cache.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Nil(t, miss)

	pdf := []byte("%PDF-1.7 test")
	require.NoError(t, cache.Set(ctx, "inv-1", pdf))

	hit, err := cache.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, pdf, hit)
}

func TestPDFCacheExpires(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "inv-1", []byte("%PDF")))
	mr.FastForward(2 * time.Minute)

	hit, err := cache.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Nil(t, hit)
}

func TestPDFCacheNilSafe(t *testing.T) {
	var cache *PDFCache
	ctx := context.Background()

	hit, err := cache.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Nil(t, hit)
	assert.NoError(t, cache.Set(ctx, "inv-1", []byte("%PDF")))

	cache = NewPDFCache(nil, time.Minute)
	hit, err = cache.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Nil(t, hit)
}

func TestRenderPDFUsesCache(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)
	repo := newMockRepository(testCatalog())
	renderer := &stubRenderer{pdf: []byte("%PDF-cached")}
	svc := newTestService(repo, ServiceConfig{Renderer: renderer, PDFCache: cache})

	created, err := svc.Create(context.Background(), CreateInvoiceRequest{
		Items: []CreateInvoiceItem{{ProductID: "P1", Quantity: 1, UnitPrice: 10}},
	})
	require.NoError(t, err)

	first, _, err := svc.RenderPDF(context.Background(), created.ID)
	require.NoError(t, err)
	second, _, err := svc.RenderPDF(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, renderer.callCount(), "second download must hit the cache")
}
