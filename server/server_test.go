package server_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clilogin/internal/config"
	"clilogin/server"
)

func TestStartBindsLoopbackOnly(t *testing.T) {
	h, err := server.NewHandler("abcd1234", config.EnvProd)
	require.NoError(t, err)

	srv, err := server.Start(h.Router())
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())

	assert.True(t, strings.HasPrefix(srv.Addr(), "127.0.0.1:"), "addr %s should be loopback", srv.Addr())
	assert.Equal(t, "http://"+srv.Addr(), srv.URL())
}

func TestServerEndToEnd(t *testing.T) {
	h, err := server.NewHandler("abcd1234", config.EnvProd)
	require.NoError(t, err)

	srv, err := server.Start(h.Router())
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())

	// The provider's browser redirect, arriving over a real socket.
	q := url.Values{
		"code":  {"real-socket-code"},
		"state": {`{"id":"abcd1234"}`},
	}
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(srv.URL() + "/?" + q.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	require.Equal(t, http.StatusFound, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	code, err := h.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "real-socket-code", code)
}

func TestShutdown(t *testing.T) {
	h, err := server.NewHandler("abcd1234", config.EnvProd)
	require.NoError(t, err)

	srv, err := server.Start(h.Router())
	require.NoError(t, err)
	require.NoError(t, srv.Shutdown(context.Background()))

	_, err = http.Get(srv.URL())
	require.Error(t, err, "server should refuse connections after shutdown")
}
