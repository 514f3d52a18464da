package cardgorilla

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardlens/backend/internal/domain"
)

// newTestClient returns a client against baseURL with near-zero pacing and backoff
func newTestClient(baseURL string) *Client {
	client := NewClient(Config{
		BaseURL:      baseURL,
		RequestDelay: time.Millisecond,
		Timeout:      2 * time.Second,
	}, nil)
	client.backoff = func(int) time.Duration { return time.Millisecond }
	return client
}

type recordedRequest struct {
	endpoint string
	outcome  string
}

type MockRequestRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (m *MockRequestRecorder) UpstreamRequest(endpoint, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, recordedRequest{endpoint: endpoint, outcome: outcome})
}

const detailJSON = `{
	"cid": 2330,
	"name": "삼성 iD ON 카드",
	"card_img": {"url": "https://img.example.com/2330.png"},
	"annual_fee_basic": "국내전용 [15,000원]",
	"annual_fee_detail": "",
	"pre_month_money": 300000,
	"key_benefit": [
		{"title": "커피", "comment": "스타벅스 50% 할인", "info": "<p>스타벅스 <b>50%</b> 결제일 할인</p>"}
	]
}`

func TestNewClient(t *testing.T) {
	client := NewClient(Config{BaseURL: "https://api.example.com"}, nil)

	assert.NotNil(t, client)
	assert.Equal(t, "https://api.example.com", client.cfg.BaseURL)
	assert.Equal(t, DefaultCorp, client.cfg.Corp)
	assert.Equal(t, DefaultPerPage, client.cfg.PerPage)
	assert.Equal(t, DefaultMaxRetries, client.cfg.MaxRetries)
	assert.Equal(t, DefaultUserAgent, client.cfg.UserAgent)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.NotNil(t, client.breaker)
	assert.False(t, client.debug)
}

func TestSetDebug(t *testing.T) {
	client := NewClient(Config{}, nil)

	assert.False(t, client.debug)

	client.SetDebug(true)
	assert.True(t, client.debug)

	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 1000 * time.Millisecond},
		{3, 2000 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt %d", tt.attempt), func(t *testing.T) {
			assert.Equal(t, tt.expected, exponentialBackoff(tt.attempt))
		})
	}
}

func TestListCardIDs_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("corp"))
		assert.Equal(t, "200", r.URL.Query().Get("perPage"))
		assert.Equal(t, "0", r.URL.Query().Get("is_discon"))
		assert.Equal(t, "1", r.URL.Query().Get("p"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, DefaultReferer, r.Header.Get("Referer"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"cid":2330},{"cid":51},{"cid":13}],"total":3}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ids, err := client.ListCardIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{2330, 51, 13}, ids)
}

func TestListCardIDs_Paginates(t *testing.T) {
	var pages []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("p")
		pages = append(pages, page)
		switch page {
		case "1":
			w.Write([]byte(`{"data":[{"cid":1},{"cid":2}],"total":3}`))
		default:
			w.Write([]byte(`{"data":[{"cid":3}],"total":3}`))
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	client.cfg.PerPage = 2

	ids, err := client.ListCardIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, []string{"1", "2"}, pages)
}

func TestListCardIDs_EmptyPageStops(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		// total overstates the listing
		w.Write([]byte(`{"data":[],"total":10}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ids, err := client.ListCardIDs(context.Background())

	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetCard_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards/2330", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(detailJSON))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	card, err := client.GetCard(context.Background(), 2330)

	require.NoError(t, err)
	assert.Equal(t, 2330, card.CID)
	assert.Equal(t, "삼성 iD ON 카드", card.Name)
	assert.Equal(t, "https://img.example.com/2330.png", card.ImageURL)
	assert.Equal(t, "국내전용 [15,000원]", card.AnnualFeeBasic)
	assert.Equal(t, "300000", card.PreMonthMoney)
	require.Len(t, card.Benefits, 1)
	assert.Equal(t, "스타벅스 50% 할인", card.Benefits[0].Comment)
	assert.Contains(t, card.Benefits[0].InfoHTML, "<b>50%</b>")
}

func TestGetCard_MissingCIDUsesRequestedID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"이름만 있는 카드"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	card, err := client.GetCard(context.Background(), 77)

	require.NoError(t, err)
	assert.Equal(t, 77, card.CID)
	assert.Empty(t, card.Benefits)
}

func TestGetCard_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	card, err := client.GetCard(context.Background(), 1)

	assert.Nil(t, card)
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestGetCard_ServerError_Retries(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(detailJSON))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	card, err := client.GetCard(context.Background(), 2330)

	require.NoError(t, err)
	assert.Equal(t, "삼성 iD ON 카드", card.Name)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestGetCard_TooManyRequests_Retries(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(detailJSON))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetCard(context.Background(), 2330)

	require.NoError(t, err)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestGetCard_ClientError_NoRetry(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	card, err := client.GetCard(context.Background(), 2330)

	assert.Nil(t, card)
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, int32(1), attempts.Load())
}

func TestGetCard_AllRetriesFail(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	card, err := client.GetCard(context.Background(), 2330)

	assert.Nil(t, card)
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestGetCard_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("invalid json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	card, err := client.GetCard(context.Background(), 2330)

	assert.Nil(t, card)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestGetCard_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(detailJSON))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	card, err := client.GetCard(ctx, 2330)

	assert.Nil(t, card)
	assert.Error(t, err)
}

func TestGetCard_RequestCreationError(t *testing.T) {
	client := newTestClient("://invalid-url")

	card, err := client.GetCard(context.Background(), 1)

	assert.Nil(t, card)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request URL")
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	// two calls of three attempts each trip the breaker
	for i := 0; i < 2; i++ {
		_, err := client.GetCard(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	}

	_, err := client.GetCard(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrCircuitOpen)
	assert.Equal(t, int32(6), attempts.Load())
}

func TestCircuitBreaker_ClientErrorsDoNotTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := client.GetCard(ctx, i)
		assert.ErrorIs(t, err, domain.ErrCardNotFound)
	}
}

func TestRecorder_ReceivesOutcomes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/404") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(detailJSON))
	}))
	defer server.Close()

	recorder := &MockRequestRecorder{}
	client := newTestClient(server.URL)
	client.SetRecorder(recorder)

	_, err := client.GetCard(context.Background(), 2330)
	require.NoError(t, err)
	_, err = client.GetCard(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrCardNotFound)

	assert.Equal(t, []recordedRequest{
		{endpoint: "detail", outcome: OutcomeOK},
		{endpoint: "detail", outcome: OutcomeNotFound},
	}, recorder.requests)
}

func TestDebugLog(t *testing.T) {
	client := NewClient(Config{}, nil)

	// Should not panic when debug is false
	client.debug = false
	client.debugLog("test message %s", "arg")

	// Should not panic when debug is true
	client.debug = true
	client.debugLog("test message %s", "arg")
}

func TestReadLimitedBody(t *testing.T) {
	t.Run("reads within limit", func(t *testing.T) {
		body, err := readLimitedBody(strings.NewReader("short content"), 1000)
		require.NoError(t, err)
		assert.Equal(t, "short content", string(body))
	})

	t.Run("truncates beyond limit", func(t *testing.T) {
		body, err := readLimitedBody(strings.NewReader(strings.Repeat("0123456789", 100)), 100)
		require.NoError(t, err)
		assert.Len(t, body, 100)
	})
}
