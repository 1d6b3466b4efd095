package audit

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileSink_Log(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(Config{Dir: filepath.Join(dir, "logs"), File: "audit.log"})

	sink.Log("reconcile", map[string]any{"session_id": 1}, true, nil)
	sink.Log("chat", map[string]any{"message_len": 12}, false, errors.New("boom"))

	f, err := os.Open(filepath.Join(dir, "logs", "audit.log"))
	assert.NoError(t, err)
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		assert.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}

	assert.Len(t, entries, 2)
	assert.Equal(t, "reconcile", entries[0].Action)
	assert.True(t, entries[0].Success)
	assert.Empty(t, entries[0].Error)
	assert.False(t, entries[0].Timestamp.IsZero())

	assert.Equal(t, "chat", entries[1].Action)
	assert.False(t, entries[1].Success)
	assert.Equal(t, "boom", entries[1].Error)
}
