package adapter

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter はプロンプトと応答のトークン数をカウントする機能を提供する
// 診断用であり、カウント結果がAPI呼び出しを妨げることはない
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter は新しいTokenCounterを作成する
// cl100k_baseエンコーディングを使用する
func NewTokenCounter() (*TokenCounter, error) {
	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to get tiktoken encoding: %w", err)
	}

	return &TokenCounter{
		encoding: encoding,
	}, nil
}

// CountTokens はテキストのトークン数をカウントする
func (tc *TokenCounter) CountTokens(text string) int {
	if tc == nil || tc.encoding == nil {
		// カウンターが利用できない場合は0を返す
		return 0
	}
	tokens := tc.encoding.Encode(text, nil, nil)
	return len(tokens)
}
