package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestPollEventsStopsAfterFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	go func() {
		pollEvents(screen, events)
		close(done)
	}()

	screen.Fini()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("event pump still running after Fini")
	}
	for len(events) > 0 {
		require.NotNil(t, <-events, "nil events are not forwarded")
	}
}
