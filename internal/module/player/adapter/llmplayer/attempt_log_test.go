package llmplayer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptLogger_Disabled(t *testing.T) {
	// Setup: 出力先が空の場合はログを無効化する
	logger, err := NewAttemptLogger("")
	require.NoError(t, err)
	defer logger.Close()

	// Execute
	err = logger.Log(AttemptRecord{Reason: FailureTransport})

	// Assert
	assert.NoError(t, err)
}

func TestAttemptLogger_NilSafe(t *testing.T) {
	var logger *AttemptLogger

	assert.NoError(t, logger.Log(AttemptRecord{}))
	assert.NoError(t, logger.Close())
}

func TestAttemptLogger_WritesJSONL(t *testing.T) {
	// Setup
	dir := t.TempDir()
	logger, err := NewAttemptLogger(dir)
	require.NoError(t, err)
	defer logger.Close()

	records := []AttemptRecord{
		{
			Timestamp:    time.Now(),
			DecisionID:   "decision-1",
			PlayerCode:   "GEMINI2_0",
			Model:        "google/gemini-2.0-flash-001",
			Attempt:      1,
			Reason:       FailureUnparseable,
			Prompt:       "prompt text",
			Response:     "garbage reply",
			PromptTokens: 42,
		},
		{
			Timestamp:    time.Now(),
			DecisionID:   "decision-1",
			PlayerCode:   "GEMINI2_0",
			Model:        "google/gemini-2.0-flash-001",
			Attempt:      2,
			Reason:       FailureTransport,
			Prompt:       "prompt text",
			ErrorMessage: "connection refused",
		},
	}

	// Execute
	for _, record := range records {
		require.NoError(t, logger.Log(record))
	}

	// Assert: 1行1レコードのJSONLとして読み戻せる
	logFileName := "llm_attempts_" + time.Now().Format("2006-01-02") + ".jsonl"
	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first AttemptRecord
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "decision-1", first.DecisionID)
	assert.Equal(t, FailureUnparseable, first.Reason)
	assert.Equal(t, "garbage reply", first.Response)
	assert.Equal(t, 42, first.PromptTokens)

	var second AttemptRecord
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, FailureTransport, second.Reason)
	assert.Equal(t, "connection refused", second.ErrorMessage)
}
