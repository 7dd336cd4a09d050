package llmplayer

import (
	"encoding/json"
	"strconv"
	"strings"

	llmdomain "github.com/jinford/catan-llm-player/internal/module/llm/domain"
)

// FailureReason は1回の試行が成果を出せなかった理由を表します
type FailureReason string

const (
	// FailureNone は試行が成功したことを表す
	FailureNone FailureReason = ""
	// FailureTransport はリモート呼び出し自体の失敗
	FailureTransport FailureReason = "transport"
	// FailureEmpty は応答が存在しない、または本文が空
	FailureEmpty FailureReason = "empty"
	// FailureUnparseable は本文からインデックスを抽出できない
	FailureUnparseable FailureReason = "unparseable"
	// FailureOutOfRange は抽出できたが合法手の範囲外
	FailureOutOfRange FailureReason = "out_of_range"
)

// selectedActionField は構造化応答から選択インデックスを取り出すフィールド名
const selectedActionField = "selected_action"

// normalizeResponse は応答から合法手インデックスを抽出する
// choiceが存在しない場合はFailureEmptyを返す
func normalizeResponse(resp llmdomain.CompletionResponse, n int) (int, FailureReason) {
	content, ok := resp.FirstContent()
	if !ok {
		return 0, FailureEmpty
	}
	return parseActionIndex(content, n)
}

// parseActionIndex は応答本文から[0, n-1]のインデックスを抽出する
// 構造化応答の解析と整数リテラルの解析は同じ生テキストに対して独立に試み、
// どちらかが範囲内の値を得れば成功とする
func parseActionIndex(content string, n int) (int, FailureReason) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return 0, FailureEmpty
	}

	outOfRange := false

	// JSONオブジェクトとして解析し、selected_actionフィールドを参照する
	var reply struct {
		SelectedAction *int `json:"selected_action"`
	}
	if err := json.Unmarshal([]byte(trimmed), &reply); err == nil && reply.SelectedAction != nil {
		if idx := *reply.SelectedAction; 0 <= idx && idx < n {
			return idx, FailureNone
		}
		outOfRange = true
	}

	// 本文全体を整数リテラルとして解析する
	// 余分な文が混ざった応答をここで救済しない（数字の部分抽出は行わない）
	if idx, err := strconv.Atoi(trimmed); err == nil {
		if 0 <= idx && idx < n {
			return idx, FailureNone
		}
		outOfRange = true
	}

	if outOfRange {
		return 0, FailureOutOfRange
	}
	return 0, FailureUnparseable
}
