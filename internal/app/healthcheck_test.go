package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	appConfig, err := NewConfig(Config{})
	require.NoError(t, err)
	testApp, _ := SetupAppTest(t, appConfig)

	_, err = testApp.Registry().LoadAll(context.Background())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	testApp.healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OK modules=3")
}

func TestHealthcheckServer_StartAndClose(t *testing.T) {
	appConfig, err := NewConfig(Config{})
	require.NoError(t, err)
	testApp, _ := SetupAppTest(t, appConfig)
	ctx := context.Background()

	const port = 28471
	testApp.startHealthcheckServer(ctx, port)
	require.NotNil(t, testApp.httpServer)

	// Wait for the listener to come up.
	url := fmt.Sprintf("http://localhost:%d/health", port)
	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return false
		}
		body = string(b)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.Contains(t, body, "OK modules=")

	testApp.closeHealthcheckServer(ctx)

	// The listener is gone after a graceful shutdown.
	_, err = http.Get(url)
	require.Error(t, err)
}

func TestCloseHealthcheckServer_NeverStarted(t *testing.T) {
	appConfig, err := NewConfig(Config{})
	require.NoError(t, err)
	testApp, _ := SetupAppTest(t, appConfig)

	// Closing without a start is a no-op.
	testApp.closeHealthcheckServer(context.Background())
}
