package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	var entries []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "timeline.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})
	return path
}

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	Trace("nav.move", map[string]interface{}{"index": 3})
	Close()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "nav.move", entries[0]["event"])
	assert.Contains(t, entries[0], "time")
	payload, ok := entries[0]["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, payload["index"])
}

func TestTraceIsSilentWhenDisabled(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)
	Trace("nav.move", nil)
	Close()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "expected no log file, got %v", err)
}

func TestErrorIsAlwaysWritten(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("boom"))
	Close()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "boom", entries[0]["error"])
}

func TestLogAppendsAcrossReopen(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	Trace("first", nil)
	Close()
	Trace("second", nil)
	Close()

	entries := readEntries(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0]["event"])
	assert.Equal(t, "second", entries[1]["event"])
}
