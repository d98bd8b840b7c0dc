package cmd

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestServeCommand_Help(t *testing.T) {
	out, err := executeCommand(t, "", "serve", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Start the Video Annotation API server")
}

func TestServeCommand_InvalidPort(t *testing.T) {
	_, err := executeCommand(t, "", "serve", "--port", "invalid")
	assert.Error(t, err)
}

func TestServeCommand_StartsAndStopsOnCancel(t *testing.T) {
	useTestConfig(t)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	root := NewRootCmd()
	root.SetContext(ctx)
	serveCmd.SetContext(ctx)
	t.Cleanup(func() {
		root.SetContext(context.Background())
		serveCmd.SetContext(context.Background())
	})

	port := strconv.Itoa(freePort(t))
	done := make(chan error, 1)
	go func() {
		_, err := executeCommand(t, "", "serve", "--host", "127.0.0.1", "--port", port)
		done <- err
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop after its context was cancelled")
	}
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	found, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	assert.NotNil(t, found.Flags().Lookup("port"))
	assert.NotNil(t, found.Flags().Lookup("host"))
}
