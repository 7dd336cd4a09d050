package llmplayer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llmdomain "github.com/jinford/catan-llm-player/internal/module/llm/domain"
	"github.com/jinford/catan-llm-player/internal/module/player/adapter/llmplayer"
	"github.com/jinford/catan-llm-player/internal/module/player/domain"
	playertest "github.com/jinford/catan-llm-player/internal/module/player/testing"
)

// testConfig はテスト用の短い待機時間を持つ設定を返す
func testConfig() llmplayer.Config {
	cfg := llmplayer.GeminiFlash()
	cfg.MaxRetries = 2
	cfg.RetryDelay = time.Millisecond
	return cfg
}

func newTestPlayer(t *testing.T, client *playertest.MockClient, cfg llmplayer.Config) *llmplayer.Player {
	t.Helper()

	player, err := llmplayer.New("RED", cfg, client, &playertest.MockSerializer{})
	require.NoError(t, err)
	return player
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name       string
		cfg        llmplayer.Config
		client     llmdomain.Client
		serializer domain.StateSerializer
	}{
		{
			name:       "クライアントが必須",
			cfg:        llmplayer.GeminiFlash(),
			client:     nil,
			serializer: &playertest.MockSerializer{},
		},
		{
			name:       "シリアライザが必須",
			cfg:        llmplayer.GeminiFlash(),
			client:     &playertest.MockClient{},
			serializer: nil,
		},
		{
			name:       "モデル識別子が必須",
			cfg:        llmplayer.Config{},
			client:     &playertest.MockClient{},
			serializer: &playertest.MockSerializer{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, err := llmplayer.New("RED", tt.cfg, tt.client, tt.serializer)

			require.Error(t, err)
			assert.Nil(t, player)
		})
	}
}

func TestDecide_StructuredReplyFirstAttempt(t *testing.T) {
	// Setup
	client := &playertest.MockClient{
		CompleteFunc: func(_ context.Context, _ llmdomain.CompletionRequest) (llmdomain.CompletionResponse, error) {
			return playertest.TextResponse(`{"selected_action": 3}`), nil
		},
	}
	player := newTestPlayer(t, client, testConfig())
	actions := playertest.TestActions(5)

	// Execute
	chosen := player.Decide(context.Background(), &playertest.StubGameView{}, actions)

	// Assert: 1回の呼び出しで即座に成功し、残りの試行は消費しない
	assert.Equal(t, actions[3], chosen)
	assert.Equal(t, 1, client.CallCount())
}

func TestDecide_BareIntegerReply(t *testing.T) {
	// Setup
	client := &playertest.MockClient{
		CompleteFunc: func(_ context.Context, _ llmdomain.CompletionRequest) (llmdomain.CompletionResponse, error) {
			return playertest.TextResponse("1"), nil
		},
	}
	player := newTestPlayer(t, client, testConfig())
	actions := playertest.TestActions(3)

	// Execute
	chosen := player.Decide(context.Background(), &playertest.StubGameView{}, actions)

	// Assert
	assert.Equal(t, actions[1], chosen)
	assert.Equal(t, 1, client.CallCount())
}

func TestDecide_OutOfRangeThenValid(t *testing.T) {
	// Setup: 1回目は範囲外、2回目は有効
	replies := []string{"5", "2"}
	client := &playertest.MockClient{}
	client.CompleteFunc = func(_ context.Context, _ llmdomain.CompletionRequest) (llmdomain.CompletionResponse, error) {
		return playertest.TextResponse(replies[client.CallCount()-1]), nil
	}
	player := newTestPlayer(t, client, testConfig())
	actions := playertest.TestActions(4)

	// Execute
	chosen := player.Decide(context.Background(), &playertest.StubGameView{}, actions)

	// Assert
	assert.Equal(t, actions[2], chosen)
	assert.Equal(t, 2, client.CallCount())
}

func TestDecide_AllAttemptsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		reply llmdomain.CompletionResponse
	}{
		{name: "解析不能な本文", reply: playertest.TextResponse("I cannot decide")},
		{name: "空のchoiceリスト", reply: playertest.EmptyResponse()},
		{name: "範囲外のインデックス", reply: playertest.TextResponse("99")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &playertest.MockClient{
				CompleteFunc: func(_ context.Context, _ llmdomain.CompletionRequest) (llmdomain.CompletionResponse, error) {
					return tt.reply, nil
				},
			}
			player := newTestPlayer(t, client, testConfig())
			actions := playertest.TestActions(3)

			chosen := player.Decide(context.Background(), &playertest.StubGameView{}, actions)

			// フォールバックは常に先頭の合法手、試行回数はちょうどMaxRetries
			assert.Equal(t, actions[0], chosen)
			assert.Equal(t, 2, client.CallCount())
		})
	}
}

func TestDecide_AllAttemptsTransportFailure(t *testing.T) {
	// Setup
	client := &playertest.MockClient{
		CompleteFunc: func(_ context.Context, _ llmdomain.CompletionRequest) (llmdomain.CompletionResponse, error) {
			return llmdomain.CompletionResponse{}, errors.New("connection refused")
		},
	}
	player := newTestPlayer(t, client, testConfig())
	actions := playertest.TestActions(2)

	// Execute: エラーが境界を越えないことを確認する
	chosen := player.Decide(context.Background(), &playertest.StubGameView{}, actions)

	// Assert
	assert.Equal(t, actions[0], chosen)
	assert.Equal(t, 2, client.CallCount())
}

func TestDecide_DelayBetweenFailedAttempts(t *testing.T) {
	// Setup
	cfg := testConfig()
	cfg.RetryDelay = 30 * time.Millisecond
	client := &playertest.MockClient{
		CompleteFunc: func(_ context.Context, _ llmdomain.CompletionRequest) (llmdomain.CompletionResponse, error) {
			return playertest.TextResponse("garbage"), nil
		},
	}
	player := newTestPlayer(t, client, cfg)
	actions := playertest.TestActions(3)

	// Execute
	start := time.Now()
	player.Decide(context.Background(), &playertest.StubGameView{}, actions)
	elapsed := time.Since(start)

	// Assert: 2試行の間に1回の待機が挟まる
	assert.Equal(t, 2, client.CallCount())
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
}

func TestDecide_NoDelayOnSuccess(t *testing.T) {
	// Setup: 成功時には待機しないことを長い待機時間で確認する
	cfg := testConfig()
	cfg.RetryDelay = 10 * time.Second
	client := &playertest.MockClient{
		CompleteFunc: func(_ context.Context, _ llmdomain.CompletionRequest) (llmdomain.CompletionResponse, error) {
			return playertest.TextResponse("0"), nil
		},
	}
	player := newTestPlayer(t, client, cfg)
	actions := playertest.TestActions(2)

	// Execute
	start := time.Now()
	chosen := player.Decide(context.Background(), &playertest.StubGameView{}, actions)
	elapsed := time.Since(start)

	// Assert
	assert.Equal(t, actions[0], chosen)
	assert.Equal(t, 1, client.CallCount())
	assert.Less(t, elapsed, time.Second)
}

func TestDecide_CancelledDuringRetryWait(t *testing.T) {
	// Setup: 1回目の失敗後の待機中にキャンセルする
	ctx, cancel := context.WithCancel(context.Background())
	cfg := testConfig()
	cfg.RetryDelay = 10 * time.Second
	client := &playertest.MockClient{
		CompleteFunc: func(_ context.Context, _ llmdomain.CompletionRequest) (llmdomain.CompletionResponse, error) {
			cancel()
			return playertest.TextResponse("garbage"), nil
		},
	}
	player := newTestPlayer(t, client, cfg)
	actions := playertest.TestActions(3)

	// Execute
	start := time.Now()
	chosen := player.Decide(ctx, &playertest.StubGameView{}, actions)
	elapsed := time.Since(start)

	// Assert: 待機を打ち切ってフォールバックし、それでも合法手を返す
	assert.Equal(t, actions[0], chosen)
	assert.Equal(t, 1, client.CallCount())
	assert.Less(t, elapsed, time.Second)
}

func TestDecide_NoActions(t *testing.T) {
	// Setup
	client := &playertest.MockClient{}
	player := newTestPlayer(t, client, testConfig())

	// Execute
	chosen := player.Decide(context.Background(), &playertest.StubGameView{}, nil)

	// Assert: 返せる手がないためゼロ値、リモート呼び出しは発生しない
	assert.Zero(t, chosen)
	assert.Equal(t, 0, client.CallCount())
}

func TestDecide_RequestPayloadBuiltOnce(t *testing.T) {
	// Setup: 全試行で同一のペイロードが送られることを確認する
	client := &playertest.MockClient{
		CompleteFunc: func(_ context.Context, _ llmdomain.CompletionRequest) (llmdomain.CompletionResponse, error) {
			return playertest.TextResponse("garbage"), nil
		},
	}
	player := newTestPlayer(t, client, testConfig())
	actions := playertest.TestActions(3)

	// Execute
	player.Decide(context.Background(), &playertest.StubGameView{}, actions)

	// Assert
	calls := client.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, calls[0].Prompt, calls[1].Prompt)
	assert.Equal(t, calls[0].Model, calls[1].Model)
}

func TestDecide_SendsSchemaAndPrompt(t *testing.T) {
	// Setup
	client := &playertest.MockClient{
		CompleteFunc: func(_ context.Context, _ llmdomain.CompletionRequest) (llmdomain.CompletionResponse, error) {
			return playertest.TextResponse("0"), nil
		},
	}
	cfg := llmplayer.GPT4oMini()
	cfg.MaxRetries = 1
	player := newTestPlayer(t, client, cfg)
	actions := playertest.TestActions(4)

	// Execute
	player.Decide(context.Background(), &playertest.StubGameView{}, actions)

	// Assert
	calls := client.Calls()
	require.Len(t, calls, 1)
	req := calls[0]
	assert.Equal(t, "openai/gpt-4o-mini", req.Model)
	assert.NotEmpty(t, req.SystemPrompt)
	assert.Contains(t, req.Prompt, "between 0 and 3")
	require.NotNil(t, req.ResponseSchema)
	assert.Equal(t, "catan_move", req.ResponseSchema.Name)
}
