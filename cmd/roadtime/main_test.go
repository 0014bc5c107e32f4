package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadtime/config"
	"github.com/katalvlaran/roadtime/core"
	"github.com/katalvlaran/roadtime/logging"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func runWith(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(input), &out)

	return out.String(), err
}

func TestSession_RouteThenTraffic(t *testing.T) {
	out, err := runWith(t, "erode\nKANGEYAM\nyes\nErode\nmodakkurichi\nabc\n-5\n10\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Erode district\nPlaces: Erode, Bhavani,"), out)
	assert.Contains(t, out, "Enter the starting Place (Options: Erode, Bhavani, Perundurai, Modakkurichi, Gobichettipalayam, Sathyamangalam, Kangeyam): ")
	assert.Contains(t, out, "Finding the shortest route from Erode to Kangeyam...\n")
	assert.Contains(t, out, "Path: Erode -> Modakkurichi -> Kangeyam | Estimated travel time: 40 minutes\n")
	assert.Equal(t, 2, strings.Count(out, "Please enter a valid non-negative integer for extra travel time."))
	assert.Contains(t, out, "Traffic on Erode – Modakkurichi: +10 minutes, now 22 minutes.\n")
	assert.Contains(t, out, "Updated route from Erode to Kangeyam after traffic adjustment...\n")
	assert.Contains(t, out, "Path: Erode -> Perundurai -> Kangeyam | Estimated travel time: 44 minutes\n")
}

func TestSession_InvalidPlaceReprompts(t *testing.T) {
	out, err := runWith(t, "ooty\n  bhavani  \nsathyamangalam\nno\n")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "Invalid place name. Please try again."))
	assert.Contains(t, out, "Path: Bhavani -> Gobichettipalayam -> Sathyamangalam | Estimated travel time: 53 minutes\n")
	assert.NotContains(t, out, "Updated route")
}

func TestSession_NoDirectRoad(t *testing.T) {
	out, err := runWith(t, "erode\nkangeyam\nyes\nerode\nkangeyam\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "No direct route exists between Erode and Kangeyam.\n")
	assert.Equal(t, 2, strings.Count(out, "Estimated travel time: 40 minutes"))
}

func TestSession_EndOfInput(t *testing.T) {
	out, err := runWith(t, "erode\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "Finding")
}

func TestSession_Unreachable(t *testing.T) {
	var out bytes.Buffer
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("Erode", "Bhavani", 16))
	require.NoError(t, g.AddEdge("Anthiyur", "Bargur", 35))

	require.NoError(t, newSession(strings.NewReader("erode\nbargur\nno\n"), &out, g, "").run())
	assert.Contains(t, out.String(), "No route from Erode to Bargur.\nReachable from Erode: Erode, Bhavani\n")
}

func TestRunOnce(t *testing.T) {
	out, err := runWith(t, "", "--from", "Erode", "--to", "Kangeyam",
		"--delay-from", "Erode", "--delay-to", "Modakkurichi", "--delay", "10")
	require.NoError(t, err)

	assert.Equal(t, "Finding the shortest route from Erode to Kangeyam...\n"+
		"Path: Erode -> Modakkurichi -> Kangeyam | Estimated travel time: 40 minutes\n"+
		"Traffic on Erode – Modakkurichi: +10 minutes, now 22 minutes.\n"+
		"Updated route from Erode to Kangeyam after traffic adjustment...\n"+
		"Path: Erode -> Perundurai -> Kangeyam | Estimated travel time: 44 minutes\n", out)
}

func TestRunOnce_Errors(t *testing.T) {
	_, err := runWith(t, "", "--from", "Erode", "--to", "Ooty")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = runWith(t, "", "--from", "Erode")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = runWith(t, "", "--from", "Erode", "--to", "Bhavani", "-v", "chatty")
	assert.Error(t, err)

	_, err = runWith(t, "", "--no-such-flag")
	assert.Error(t, err)
}

func TestRun_NetworkFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "tiny"
[[roads]]
from = "A"
to = "B"
minutes = 5
[[roads]]
from = "B"
to = "C"
minutes = 7.5
`), 0o644))

	out, err := runWith(t, "", "--network", path, "--from", "A", "--to", "C")
	require.NoError(t, err)
	assert.Contains(t, out, "Path: A -> B -> C | Estimated travel time: 12.5 minutes\n")

	_, err = runWith(t, "", "--network", filepath.Join(t.TempDir(), "missing.toml"), "--from", "A", "--to", "C")
	assert.Error(t, err)
}

func TestRun_Serve(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, []string{"--serve", "--port", strconv.Itoa(port)}, strings.NewReader(""), io.Discard)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/route?from=Erode&to=Kangeyam", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && strings.Contains(string(body), `"cost":40`)
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop")
	}
}
