package llmplayer

import (
	"strconv"
	"strings"

	llmdomain "github.com/jinford/catan-llm-player/internal/module/llm/domain"
)

// プロンプトテンプレート内のプレースホルダ
const (
	// PlaceholderState は盤面のテキスト要約に置換される
	PlaceholderState = "{{STATE}}"
	// PlaceholderMaxIndex は合法手の最大インデックス（N-1）に置換される
	PlaceholderMaxIndex = "{{MAX_INDEX}}"
)

// moveSchemaName はレスポンススキーマの名前
const moveSchemaName = "catan_move"

// buildPrompt はテンプレートのプレースホルダを埋めてプロンプト本文を作る
func buildPrompt(template, stateText string, n int) string {
	replacer := strings.NewReplacer(
		PlaceholderState, stateText,
		PlaceholderMaxIndex, strconv.Itoa(n-1),
	)
	return replacer.Replace(template)
}

// buildMoveSchema は応答を単一の整数フィールドに制約するJSON Schemaを作る
// strictRangeが真の場合はminimum/maximumで[0, n-1]を宣言する
// スキーマはあくまでヒントであり、範囲の最終的な検証は正規化側が行う
func buildMoveSchema(n int, strictRange bool) *llmdomain.ResponseSchema {
	selected := map[string]any{
		"type":        "integer",
		"description": "The number of the selected action from the available actions list",
	}
	if strictRange {
		selected["minimum"] = 0
		selected["maximum"] = n - 1
	}

	return &llmdomain.ResponseSchema{
		Name:   moveSchemaName,
		Strict: true,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				selectedActionField: selected,
			},
			"required":             []string{selectedActionField},
			"additionalProperties": false,
		},
	}
}
