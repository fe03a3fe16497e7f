package openwb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusURL(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"192.168.1.50":      "http://192.168.1.50/openWB/web/api.php?get=all",
		"https://wb.local/": "https://wb.local/openWB/web/api.php?get=all",
		"http://wb.local":   "http://wb.local/openWB/web/api.php?get=all",
		" wb.local// ":      "http://wb.local/openWB/web/api.php?get=all",
	}
	for host, expected := range tests {
		assert.Equal(t, expected, NewClient(host).StatusURL(), "host %q", host)
	}
}

func TestFetchSuccess(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/openWB/web/api.php", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("get"))
		// the controller serves JSON with a text/html content type
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`{"pvw": "-1500", "speichersoc": 55, "boot_done": true}`))
	}))
	defer srv.Close()

	snapshot, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot, 3)
	assert.Equal(t, "-1500", snapshot["pvw"])
	assert.Equal(t, 55.0, snapshot["speichersoc"])
	assert.Equal(t, true, snapshot["boot_done"])
}

func TestFetchMalformedResponse(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"not json":   `<html>login required</html>`,
		"json array": `[1, 2, 3]`,
		"json value": `"just a string"`,
	}
	for name, body := range tests {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).Fetch(context.Background())
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestFetchUnreachableOnErrorStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestFetchUnreachableOnConnectionFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestFetchTimeoutClassifiedAsUnreachable(t *testing.T) {
	t.Parallel()
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	client := NewClient(srv.URL, WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
}
