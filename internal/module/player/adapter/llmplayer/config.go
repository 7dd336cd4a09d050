package llmplayer

import "time"

const (
	// DefaultMaxRetries はリモート呼び出しの最大試行回数のデフォルト
	DefaultMaxRetries = 2

	// DefaultRetryDelay は試行間の待機時間のデフォルト
	DefaultRetryDelay = time.Second
)

// Config はLLMプレイヤー1種の動作を定義する
// モデル識別子と指示文のみが異なる実装を複製する代わりに、ここをパラメータ化する
type Config struct {
	// Code はプレイヤーの登録コード（例: "GEMINI2_0"）
	Code string

	// Model は対象モデルの識別子
	Model string

	// SystemPrompt はシステムメッセージ。空の場合は送信しない
	SystemPrompt string

	// PromptTemplate はユーザーメッセージのテンプレート
	// PlaceholderStateとPlaceholderMaxIndexを含めることができる
	PromptTemplate string

	// StrictRange はレスポンススキーマに[0, N-1]の範囲制約を宣言するかどうか
	// 制約を無視するモデルがあっても動作は変わらない（正規化側が最終的に検証する）
	StrictRange bool

	// MaxRetries はリモート呼び出しの最大試行回数。0以下ならデフォルト値
	MaxRetries int

	// RetryDelay は試行間の待機時間。0以下ならデフォルト値
	RetryDelay time.Duration
}

// geminiPromptTemplate はGeminiプリセットの指示文
const geminiPromptTemplate = `You are an AI that plays Catan. Given a game state, you should analyze it and choose the best possible move from the list of actions. Only return the action number.
{{STATE}}
Only return the action number`

// gptPromptTemplate はGPTプリセットの指示文
const gptPromptTemplate = `Analyze this game state and choose the best possible move from the list of actions.
Only return a number between 0 and {{MAX_INDEX}}.
{{STATE}}`

// GeminiFlash はGemini 2.0 Flashを対象とするプリセット
// スキーマに範囲制約を宣言し、ユーザーメッセージのみを送信する
func GeminiFlash() Config {
	return Config{
		Code:           "GEMINI2_0",
		Model:          "google/gemini-2.0-flash-001",
		PromptTemplate: geminiPromptTemplate,
		StrictRange:    true,
	}
}

// GPT4oMini はGPT-4o miniを対象とするプリセット
// システムメッセージを併用し、スキーマの範囲制約は宣言しない
func GPT4oMini() Config {
	return Config{
		Code:           "OPENAI_GPT4O_MINI",
		Model:          "openai/gpt-4o-mini",
		SystemPrompt:   "You are a Catan-playing AI that returns moves in JSON format.",
		PromptTemplate: gptPromptTemplate,
		StrictRange:    false,
	}
}

// withDefaults は未設定の項目をデフォルト値で埋めたコピーを返す
func (c Config) withDefaults() Config {
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	return c
}
