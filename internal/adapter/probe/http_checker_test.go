package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gchat-cardbot/internal/domain/model"
)

func TestCheckTargets(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>  API Gateway  </title></head><body>ok</body></html>`))
	}))
	defer healthy.Close()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	checker := New(5*time.Second, nil)
	results, err := checker.CheckTargets(context.Background(), []model.Target{
		{Name: "api", URL: healthy.URL},
		{Name: "backend", URL: broken.URL},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].Up)
	assert.Equal(t, http.StatusOK, results[0].Status)
	assert.Equal(t, "API Gateway", results[0].PageTitle)
	assert.Greater(t, results[0].Latency, time.Duration(0))

	assert.False(t, results[1].Up)
	assert.Equal(t, http.StatusInternalServerError, results[1].Status)
	assert.Empty(t, results[1].Err)
}

func TestCheckUnreachableTarget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	checker := New(time.Second, nil)
	results, err := checker.CheckTargets(context.Background(), []model.Target{{Name: "gone", URL: url}})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.False(t, results[0].Up)
	assert.NotEmpty(t, results[0].Err)
}

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", `<html><head><title>Home</title></head></html>`, "Home"},
		{"nested text", `<title>A &amp; B</title>`, "A & B"},
		{"no title", `<html><body><p>hi</p></body></html>`, ""},
		{"not html at all", `{"status":"ok"}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractTitle(strings.NewReader(tc.in)))
		})
	}
}
