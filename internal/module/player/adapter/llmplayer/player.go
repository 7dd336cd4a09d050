package llmplayer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	llmadapter "github.com/jinford/catan-llm-player/internal/module/llm/adapter"
	llmdomain "github.com/jinford/catan-llm-player/internal/module/llm/domain"
	"github.com/jinford/catan-llm-player/internal/module/player/domain"
)

// Player はリモートモデルに合法手の選択を委ねるプレイヤー実装
// Decideは必ず合法手のいずれかを返し、リモート呼び出しや解析の失敗を
// 呼び出し側に伝播させない
type Player struct {
	color      string
	cfg        Config
	client     llmdomain.Client
	serializer domain.StateSerializer

	logger   *slog.Logger
	tokens   *llmadapter.TokenCounter
	attempts *AttemptLogger
}

// Option はPlayer構築時のオプション
type Option func(*Player)

// WithLogger はロガーを差し替える
func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) {
		p.logger = logger
	}
}

// WithTokenCounter は診断用のトークンカウンターを注入する
func WithTokenCounter(tc *llmadapter.TokenCounter) Option {
	return func(p *Player) {
		p.tokens = tc
	}
}

// WithAttemptLogger は失敗した試行のJSONLログを注入する
func WithAttemptLogger(al *AttemptLogger) Option {
	return func(p *Player) {
		p.attempts = al
	}
}

// New は新しいPlayerを作成する
// APIキーの読み込みやクライアントの生成はホスト側の責務であり、ここでは注入を受けるのみ
func New(color string, cfg Config, client llmdomain.Client, serializer domain.StateSerializer, opts ...Option) (*Player, error) {
	if client == nil {
		return nil, fmt.Errorf("completion client is required")
	}
	if serializer == nil {
		return nil, fmt.Errorf("state serializer is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model identifier is required")
	}

	p := &Player{
		color:      color,
		cfg:        cfg.withDefaults(),
		client:     client,
		serializer: serializer,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Color は担当する色を返す
func (p *Player) Color() string {
	return p.color
}

// Decide は合法手の中から一手を選ぶ
//
// 試行はMaxRetries回まで順に行い、各試行はリモート呼び出しと応答の正規化からなる。
// 範囲内のインデックスが得られた時点で即座に終了し、残りの試行は消費しない。
// 失敗した試行の後は（最終試行を除き）RetryDelayだけ待機する。
// すべての試行が失敗した場合はactions[0]を返す。
func (p *Player) Decide(ctx context.Context, game domain.GameView, actions []domain.Action) domain.Action {
	if len(actions) == 0 {
		// シミュレーション側の契約違反。返せる手がないためゼロ値を返す
		p.logger.Error("decide called with no playable actions", "player", p.cfg.Code)
		return domain.Action{}
	}

	n := len(actions)
	decisionID := uuid.NewString()

	// ペイロードは試行間で変化しないため一度だけ構築する
	stateText := p.serializer.Serialize(game, p.color, actions)
	prompt := buildPrompt(p.cfg.PromptTemplate, stateText, n)
	req := llmdomain.CompletionRequest{
		Model:          p.cfg.Model,
		SystemPrompt:   p.cfg.SystemPrompt,
		Prompt:         prompt,
		ResponseSchema: buildMoveSchema(n, p.cfg.StrictRange),
	}

	promptTokens := p.tokens.CountTokens(prompt)
	logger := p.logger.With(
		"decision_id", decisionID,
		"player", p.cfg.Code,
		"model", p.cfg.Model,
		"actions", n,
		"prompt_tokens", promptTokens,
	)

	for attempt := 0; attempt < p.cfg.MaxRetries; attempt++ {
		idx, reason, raw, callErr := p.attempt(ctx, req, n)
		if reason == FailureNone {
			logger.Info("action selected",
				"attempt", attempt+1,
				"selected_action", idx,
			)
			return actions[idx]
		}

		p.recordFailure(logger, AttemptRecord{
			Timestamp:    time.Now(),
			DecisionID:   decisionID,
			PlayerCode:   p.cfg.Code,
			Model:        p.cfg.Model,
			Attempt:      attempt + 1,
			Reason:       reason,
			Prompt:       prompt,
			Response:     raw,
			PromptTokens: promptTokens,
		}, callErr)

		// 最終試行でなければ一定時間待って次の試行へ
		if attempt < p.cfg.MaxRetries-1 {
			if !p.waitBeforeRetry(ctx) {
				logger.Warn("decision cancelled during retry wait, falling back to first action")
				return actions[0]
			}
		}
	}

	logger.Warn("all attempts exhausted, falling back to first action")
	return actions[0]
}

// attempt はリモート呼び出しと正規化を1回行う
// 戻り値のrawはトランスポート成功時の応答本文（診断用）
func (p *Player) attempt(ctx context.Context, req llmdomain.CompletionRequest, n int) (int, FailureReason, string, error) {
	resp, err := p.client.Complete(ctx, req)
	if err != nil {
		return 0, FailureTransport, "", err
	}

	raw, _ := resp.FirstContent()
	idx, reason := normalizeResponse(resp, n)
	return idx, reason, raw, nil
}

// recordFailure は失敗した試行をログとJSONLレコードに残す
// 記録自体の失敗が意思決定を妨げることはない
func (p *Player) recordFailure(logger *slog.Logger, record AttemptRecord, callErr error) {
	if callErr != nil {
		record.ErrorMessage = callErr.Error()
	}

	logger.Warn("attempt failed",
		"attempt", record.Attempt,
		"reason", record.Reason,
		"error", record.ErrorMessage,
	)

	if err := p.attempts.Log(record); err != nil {
		logger.Error("failed to write attempt record", "error", err)
	}
}

// waitBeforeRetry は次の試行までRetryDelayだけ待機する
// コンテキストが先にキャンセルされた場合はfalseを返す
func (p *Player) waitBeforeRetry(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(p.cfg.RetryDelay):
		return true
	}
}

// インターフェース実装の確認
var _ domain.Player = (*Player)(nil)
