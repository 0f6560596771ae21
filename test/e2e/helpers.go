package e2e

import (
	"bytes"
	"io"
	"net/http"

	"github.com/stretchr/testify/require"
)

func (h *harness) get(path string) ([]byte, int) {
	h.t.Helper()
	resp, err := http.Get(h.server.URL + path)
	require.NoError(h.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)
	return body, resp.StatusCode
}

func (h *harness) postJSON(path, body string) ([]byte, int) {
	h.t.Helper()
	resp, err := http.Post(h.server.URL+path, "application/json", bytes.NewReader([]byte(body)))
	require.NoError(h.t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)
	return out, resp.StatusCode
}
