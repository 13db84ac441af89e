package stream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaenox/sentimeter/internal/models"
)

func TestClient_Analyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AnalysisRecord{
			Text:       body["text"],
			Sentiment:  models.Positive,
			Confidence: 0.9123,
			Timestamp:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", time.Second)
	record, err := client.Analyze(context.Background(), "so great")

	require.NoError(t, err)
	assert.Equal(t, "so great", record.Text)
	assert.Equal(t, models.Positive, record.Sentiment)
	assert.Equal(t, 0.9123, record.Confidence)
}

func TestClient_Analyze_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Analyze(context.Background(), "x")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestClient_Analyze_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Analyze(context.Background(), "x")

	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestClient_Analyze_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(srv.URL, 50*time.Millisecond).Analyze(context.Background(), "x")

	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestClient_Analyze_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Analyze(context.Background(), "x")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnreachable)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestClient_Analyze_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient("http://127.0.0.1:1", time.Second).Analyze(ctx, "x")

	assert.ErrorIs(t, err, context.Canceled)
}
