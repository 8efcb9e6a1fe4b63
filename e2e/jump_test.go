//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const fixture = "alpha\nbeta\ngamma\ndelta gamma\n"

func startViewer(t *testing.T) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	path := tf.WriteFile("notes.txt", fixture)

	require.NoError(t, tf.StartApp(path), "Failed to start app")
	require.True(t, tf.Ready(), "Should show normal mode")
	require.True(t, tf.SeePlain("notes.txt"), "Should show the file name")
	return tf
}

func TestJumpEnterMovesToNextMatch(t *testing.T) {
	t.Parallel()
	tf := startViewer(t)
	defer tf.Cleanup()

	require.NoError(t, tf.Jump("gam"))
	require.True(t, tf.SeePlain("jump: gam"), "Should show the search prompt")

	require.NoError(t, tf.Enter())
	require.NoError(t, tf.WaitForE(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), " 3:1 ")
	}, 3*time.Second, "cursor should land on the first gamma"))
}

func TestJumpEscapeKeepsCursor(t *testing.T) {
	t.Parallel()
	tf := startViewer(t)
	defer tf.Cleanup()

	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain(" 2:1 "), "Should move down")

	require.NoError(t, tf.Jump("de"))
	require.True(t, tf.SeePlain("jump: de"), "Should show the search prompt")
	require.NoError(t, tf.SendKeys(KeyEsc))

	// the cursor stays put
	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain(" 3:1 "), "Cursor should continue from line 2")
}

func TestRepeatWithoutPreviousSearch(t *testing.T) {
	t.Parallel()
	tf := startViewer(t)
	defer tf.Cleanup()

	require.NoError(t, tf.Jump(""))
	require.True(t, tf.SeePlain("JUMP"), "Should enter jump mode")
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("no previous search"), "Should report the empty repeat")
}
