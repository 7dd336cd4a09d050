package testing

import (
	"context"
	"sync"

	llmdomain "github.com/jinford/catan-llm-player/internal/module/llm/domain"
)

// MockClient はテスト用のモック補完クライアントです
type MockClient struct {
	CompleteFunc func(ctx context.Context, req llmdomain.CompletionRequest) (llmdomain.CompletionResponse, error)

	mu    sync.Mutex
	calls []llmdomain.CompletionRequest
}

// Complete はCompleteのモック実装です
func (m *MockClient) Complete(ctx context.Context, req llmdomain.CompletionRequest) (llmdomain.CompletionResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return llmdomain.CompletionResponse{}, nil
}

// CallCount は呼び出し回数を返します
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls は記録されたリクエストのコピーを返します
func (m *MockClient) Calls() []llmdomain.CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]llmdomain.CompletionRequest, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// TextResponse は本文1件だけを持つ応答を生成します
func TextResponse(content string) llmdomain.CompletionResponse {
	return llmdomain.CompletionResponse{
		Choices: []llmdomain.Choice{{Content: content}},
	}
}

// EmptyResponse はchoiceを1件も持たない応答を生成します
func EmptyResponse() llmdomain.CompletionResponse {
	return llmdomain.CompletionResponse{}
}
