package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	result, err := Page(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "hello")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestPage_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	result, err := Page(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, server.URL, fetchErr.URL)
}

func TestPage_InvalidURL(t *testing.T) {
	_, err := Page(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestPage_CustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "value", r.Header.Get("X-Test"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	opts := &Options{
		Timeout:   DefaultTimeout,
		UserAgent: "custom-agent",
		Headers:   map[string]string{"X-Test": "value"},
	}
	_, err := Page(context.Background(), server.URL, opts)
	require.NoError(t, err)
}

func TestBytes_Success(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G'}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	data, err := Bytes(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestBytes_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Bytes(context.Background(), server.URL, nil)
	require.Error(t, err)
}

func TestStripText_RemovesChrome(t *testing.T) {
	html := `
		<html><body>
			<nav>Navigation links</nav>
			<script>var x = 1;</script>
			<style>body { color: red; }</style>
			<main>
				<h1>Welcome</h1>
				<p>We sell widgets.</p>
			</main>
			<footer>Copyright</footer>
		</body></html>
	`
	text, err := StripText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Welcome")
	assert.Contains(t, text, "We sell widgets.")
	assert.NotContains(t, text, "Navigation links")
	assert.NotContains(t, text, "var x = 1")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Copyright")
}

func TestCleanWhitespace(t *testing.T) {
	assert.Equal(t, "a\nb", cleanWhitespace("  a  \n\n\n   b\n"))
	assert.Equal(t, "", cleanWhitespace("\n \n\t\n"))
}
