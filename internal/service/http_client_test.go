package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"querydesk/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientExecute(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody model.QueryRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"type":"table","data":{"headers":["id","name"],"rows":[[1,"a"]]}}`)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL + "/execute_query")
	resp, err := client.Execute(context.Background(), "SELECT * FROM students")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "SELECT * FROM students", gotBody.Query)
	assert.Equal(t, model.KindTable, resp.Kind)
	assert.Equal(t, []string{"id", "name"}, resp.Table.Headers)
	assert.Equal(t, [][]string{{"1", "a"}}, resp.Table.Rows)
}

func TestHTTPClientStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"boom"}`)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL + "/query").Execute(context.Background(), "x")

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "boom", statusErr.Message)
}

func TestHTTPClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL + "/execute_query"
	srv.Close()

	_, err := NewHTTPClient(endpoint).Execute(context.Background(), "x")

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, endpoint, netErr.Endpoint)
}

func TestHTTPClientCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPClient("http://127.0.0.1:1/execute_query").Execute(ctx, "x")

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClientDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPClient(srv.URL).Execute(ctx, "x")

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}
