//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestArrowKeysMoveHighlight(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartApp("pick"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	// Closed with an empty box: down shows every option and highlights the first
	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain("› Apple"), "first option should be highlighted")
	require.True(t, tf.SeePlain("4 results available."))

	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain("› Banana"), "second option should be highlighted")

	require.NoError(t, tf.Up())
	require.True(t, tf.SeePlain("› Apple"), "up should move back")
	time.Sleep(100 * time.Millisecond)

	mark := tf.Mark()
	require.NoError(t, tf.Escape())
	require.True(t, tf.SeePlainSince(mark, "▼"), "escape should close the list")
}

func TestUpOnFirstItemCloses(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("pick"))
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain("▲"), "list should open")

	mark := tf.Mark()
	require.NoError(t, tf.Up())
	require.True(t, tf.SeePlainSince(mark, "▼"), "up on the first item should close the list")
}
