package checkout_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservecold/storefront/internal/cart"
	"github.com/reservecold/storefront/internal/cart/redisrepo"
	"github.com/reservecold/storefront/internal/catalog"
	"github.com/reservecold/storefront/internal/checkout"
	apperrors "github.com/reservecold/storefront/pkg/errors"
	pkgkafka "github.com/reservecold/storefront/pkg/kafka"
)

func setupServices(t *testing.T, delay time.Duration) (*checkout.Service, *cart.Service) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig([]string{"localhost:9092"}), logger)

	carts := cart.NewService(
		redisrepo.New(client, time.Hour),
		catalog.New(catalog.Seed()),
		cart.NewProducer(kafkaProducer, logger),
		logger,
		time.Hour,
	)
	svc := checkout.NewService(carts, checkout.NewProducer(kafkaProducer, logger), logger, delay)
	return svc, carts
}

func validInput() checkout.PlaceOrderInput {
	return checkout.PlaceOrderInput{
		Name:    "Анна Смирнова",
		Email:   "anna@example.com",
		Phone:   "+7 900 123-45-67",
		City:    "Москва",
		Address: "ул. Тверская, д. 1, кв. 10",
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	svc, carts := setupServices(t, 10*time.Millisecond)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "sess-1", "ethiopian-reserve")
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "sess-1", "blend-reserve")
	require.NoError(t, err)

	order, err := svc.PlaceOrder(ctx, "sess-1", validInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.Number, "RC-"))
	assert.Len(t, order.Number, 11)
	assert.Equal(t, 2, order.ItemCount)
	assert.Equal(t, int64(2499+1999), order.Total)
	assert.Equal(t, "Анна Смирнова", order.Customer.Name)
	assert.WithinDuration(t, time.Now().UTC(), order.PlacedAt, 5*time.Second)

	// The cart is emptied once the order is confirmed.
	sess, err := carts.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, sess.State.Items)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	svc, _ := setupServices(t, 10*time.Millisecond)

	_, err := svc.PlaceOrder(context.Background(), "sess-empty", validInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestPlaceOrder_CancelledDuringDelay(t *testing.T) {
	svc, carts := setupServices(t, 5*time.Second)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "sess-1", "nitro-reserve")
	require.NoError(t, err)

	cancelCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	_, err = svc.PlaceOrder(cancelCtx, "sess-1", validInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// An abandoned checkout must not clear the cart.
	sess, err := carts.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, sess.State.Items, 1)
}

func TestHandler_PlaceOrder(t *testing.T) {
	svc, carts := setupServices(t, 10*time.Millisecond)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	r := chi.NewRouter()
	checkout.NewHandler(svc, logger).Register(r)

	_, err := carts.AddItem(context.Background(), "sess-1", "guatemala-reserve")
	require.NoError(t, err)

	body := `{"name":"Анна Смирнова","email":"anna@example.com","phone":"+79001234567","city":"Москва","address":"ул. Тверская, д. 1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(cart.SessionHeader, "sess-1")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"number":"RC-`)
	assert.Contains(t, rec.Body.String(), `"total":2399`)
}

func TestHandler_PlaceOrder_InvalidEmail(t *testing.T) {
	svc, _ := setupServices(t, 10*time.Millisecond)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	r := chi.NewRouter()
	checkout.NewHandler(svc, logger).Register(r)

	body := `{"name":"Анна","email":"not-an-email","phone":"+79001234567","city":"Москва","address":"ул. Тверская, д. 1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(cart.SessionHeader, "sess-1")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestHandler_PlaceOrder_MissingSession(t *testing.T) {
	svc, _ := setupServices(t, 10*time.Millisecond)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	r := chi.NewRouter()
	checkout.NewHandler(svc, logger).Register(r)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
