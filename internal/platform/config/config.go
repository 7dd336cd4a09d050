package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します
type Config struct {
	// OpenRouter設定（チャット補完API）
	OpenRouter OpenRouterConfig

	// Player設定（LLMプレイヤーのリトライ挙動）
	Player PlayerConfig

	// AttemptLogDir は失敗した呼び出しを記録するJSONLログの出力先
	// 空文字列の場合はログを無効化する
	AttemptLogDir string

	// Log設定
	LogLevel  string
	LogFormat string
}

// OpenRouterConfig はOpenRouter API設定
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
}

// PlayerConfig はLLMプレイヤーの共通設定
type PlayerConfig struct {
	// Model はプリセットのモデル識別子を上書きする（空なら上書きしない）
	Model string

	// MaxRetries はリモート呼び出しの最大試行回数
	MaxRetries int

	// RetryDelay は試行間の待機時間
	RetryDelay time.Duration
}

// Load は環境変数または.envファイルから設定を読み込みます
func Load(envFilePath string) (*Config, error) {
	// .envファイルが存在する場合は読み込む
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			// ファイルが存在しない場合はエラーとしない（環境変数のみで動作可能）
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load .env file: %w", err)
			}
		}
	}

	cfg := &Config{
		OpenRouter: OpenRouterConfig{
			APIKey:  getEnv("OPENROUTER_API_KEY", ""),
			BaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		},
		Player: PlayerConfig{
			Model:      getEnv("LLM_PLAYER_MODEL", ""),
			MaxRetries: getEnvAsInt("LLM_PLAYER_MAX_RETRIES", 2),
			RetryDelay: getEnvAsDuration("LLM_PLAYER_RETRY_DELAY", time.Second),
		},
		AttemptLogDir: getEnv("LLM_ATTEMPT_LOG_DIR", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}

	return cfg, nil
}

// getEnv は環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt は環境変数を整数として取得し、存在しないか不正な場合はデフォルト値を返します
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration は環境変数をtime.Durationとして取得します
// "1s"や"500ms"の形式を受け付け、不正な場合はデフォルト値を返します
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
