package domain

import "context"

// CompletionRequest はチャット補完APIへの1回分のリクエスト
type CompletionRequest struct {
	// Model は対象モデルの識別子（例: "google/gemini-2.0-flash-001"）
	Model string

	// SystemPrompt はシステムメッセージ。空の場合は送信しない
	SystemPrompt string

	// Prompt はユーザーメッセージ本文
	Prompt string

	// ResponseSchema は応答を制約するJSON Schema定義
	// nilの場合はスキーマ制約なしで送信する
	ResponseSchema *ResponseSchema
}

// ResponseSchema はjson_schema形式のレスポンスフォーマット指定
type ResponseSchema struct {
	// Name はスキーマ名（例: "catan_move"）
	Name string

	// Strict はスキーマへの厳密な準拠を要求するかどうか
	Strict bool

	// Schema はJSON Schema本体
	Schema map[string]any
}

// CompletionResponse はチャット補完APIからの応答
// Choicesが空の場合もあり、その解釈は呼び出し側に委ねる
type CompletionResponse struct {
	// Choices は候補応答のリスト
	Choices []Choice

	// Model は実際に応答したモデルの識別子
	Model string

	// TokensUsed はAPIが報告した合計トークン数
	TokensUsed int
}

// Choice は候補応答1件
type Choice struct {
	// Content は応答本文。空の場合もある
	Content string
}

// FirstContent は先頭choiceの本文を返す
// choiceが存在しない場合は空文字列とfalseを返す
func (r CompletionResponse) FirstContent() (string, bool) {
	if len(r.Choices) == 0 {
		return "", false
	}
	return r.Choices[0].Content, true
}

// Client はチャット補完APIのクライアントインターフェース
type Client interface {
	// Complete はリクエストを送信し、応答を返す
	// トランスポート層の失敗はエラーとして返す
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}
