package llmplayer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// AttemptRecord は失敗した試行1回分のログレコードです
// 障害時のオフライン調査のため、送信したペイロードと生の応答をそのまま残す
type AttemptRecord struct {
	// Timestamp は失敗の発生時刻
	Timestamp time.Time `json:"timestamp"`
	// DecisionID は同一の意思決定に属する試行を束ねるID
	DecisionID string `json:"decision_id"`
	// PlayerCode はプレイヤーの登録コード
	PlayerCode string `json:"player_code"`
	// Model は対象モデルの識別子
	Model string `json:"model"`
	// Attempt は試行番号（1始まり）
	Attempt int `json:"attempt"`
	// Reason は失敗理由
	Reason FailureReason `json:"reason"`
	// Prompt は実際に送信されたプロンプト
	Prompt string `json:"prompt"`
	// Response はモデルから返された生の本文
	Response string `json:"response"`
	// ErrorMessage はトランスポート失敗時のエラーメッセージ
	ErrorMessage string `json:"error_message,omitempty"`
	// PromptTokens はプロンプトのトークン数（診断用）
	PromptTokens int `json:"prompt_tokens"`
}

// AttemptLogger は失敗した試行のログをJSONL形式で一元管理します
type AttemptLogger struct {
	logFile  *os.File
	logMutex sync.Mutex
	enabled  bool
}

// NewAttemptLogger は新しいAttemptLoggerを作成します
// logDirが空の場合はログを無効化したインスタンスを返す
func NewAttemptLogger(logDir string) (*AttemptLogger, error) {
	if logDir == "" {
		// ログが無効化されている場合
		return &AttemptLogger{enabled: false}, nil
	}

	// ログディレクトリを作成
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// ログファイルを作成（日付でローテーション）
	logFileName := fmt.Sprintf("llm_attempts_%s.jsonl", time.Now().Format("2006-01-02"))
	logFilePath := filepath.Join(logDir, logFileName)

	logFile, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &AttemptLogger{
		logFile: logFile,
		enabled: true,
	}, nil
}

// Close はログファイルを閉じます
func (l *AttemptLogger) Close() error {
	if l == nil || l.logFile == nil {
		return nil
	}
	return l.logFile.Close()
}

// Log はレコードをログに記録します
// ロガーがnilまたは無効化されている場合は何もしない
func (l *AttemptLogger) Log(record AttemptRecord) error {
	if l == nil || !l.enabled {
		return nil
	}

	l.logMutex.Lock()
	defer l.logMutex.Unlock()

	// JSON形式でログに書き込み
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal attempt record: %w", err)
	}

	if _, err := l.logFile.Write(append(jsonBytes, '\n')); err != nil {
		return fmt.Errorf("failed to write log: %w", err)
	}

	return nil
}
