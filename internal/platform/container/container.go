package container

import (
	"fmt"
	"log/slog"

	llmadapter "github.com/jinford/catan-llm-player/internal/module/llm/adapter"
	llmdomain "github.com/jinford/catan-llm-player/internal/module/llm/domain"
	"github.com/jinford/catan-llm-player/internal/module/player/adapter/catan"
	"github.com/jinford/catan-llm-player/internal/module/player/adapter/llmplayer"
	"github.com/jinford/catan-llm-player/internal/module/player/adapter/random"
	playerdomain "github.com/jinford/catan-llm-player/internal/module/player/domain"
	"github.com/jinford/catan-llm-player/internal/platform/config"
)

// Container はアプリケーションの依存関係を保持する
type Container struct {
	Config     *config.Config
	Logger     *slog.Logger
	Client     llmdomain.Client
	Serializer playerdomain.StateSerializer
	Registry   *playerdomain.Registry

	tokenCounter *llmadapter.TokenCounter
	attemptLog   *llmplayer.AttemptLogger
}

type containerOptions struct {
	client llmdomain.Client
}

// Option はContainer構築時のオプション
type Option func(*containerOptions)

// WithCompletionClient は補完クライアントを差し替える
// テストからモッククライアントを注入するために使う
func WithCompletionClient(client llmdomain.Client) Option {
	return func(opts *containerOptions) {
		opts.client = client
	}
}

// New は設定から依存関係を組み立て、プレイヤーレジストリを構築する
func New(logger *slog.Logger, cfg *config.Config, opts ...Option) (*Container, error) {
	options := &containerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// 補完クライアント（差し替えがなければOpenRouterを使う）
	client := options.client
	if client == nil {
		var err error
		client, err = llmadapter.NewOpenRouterClient(cfg.OpenRouter.APIKey, cfg.OpenRouter.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("補完クライアントの初期化に失敗: %w", err)
		}
	}

	// 診断用トークンカウンター
	// エンコーディングが用意できなくても動作は継続する（カウントは0になる）
	tokenCounter, err := llmadapter.NewTokenCounter()
	if err != nil {
		logger.Warn("token counter unavailable", "error", err)
		tokenCounter = nil
	}

	// 失敗した試行のJSONLログ
	attemptLog, err := llmplayer.NewAttemptLogger(cfg.AttemptLogDir)
	if err != nil {
		return nil, fmt.Errorf("試行ログの初期化に失敗: %w", err)
	}

	c := &Container{
		Config:       cfg,
		Logger:       logger,
		Client:       client,
		Serializer:   catan.NewSerializer(),
		Registry:     playerdomain.NewRegistry(),
		tokenCounter: tokenCounter,
		attemptLog:   attemptLog,
	}

	if err := c.registerPlayers(); err != nil {
		return nil, err
	}

	return c, nil
}

// registerPlayers は組み込みのプレイヤープリセットをレジストリに登録する
func (c *Container) registerPlayers() error {
	presets := []llmplayer.Config{
		llmplayer.GeminiFlash(),
		llmplayer.GPT4oMini(),
	}

	for _, preset := range presets {
		// 環境設定でリトライ挙動とモデルを上書きできる
		cfg := preset
		if c.Config.Player.Model != "" {
			cfg.Model = c.Config.Player.Model
		}
		if c.Config.Player.MaxRetries > 0 {
			cfg.MaxRetries = c.Config.Player.MaxRetries
		}
		if c.Config.Player.RetryDelay > 0 {
			cfg.RetryDelay = c.Config.Player.RetryDelay
		}

		err := c.Registry.Register(cfg.Code, cfg.Model, func(color string) (playerdomain.Player, error) {
			return llmplayer.New(color, cfg, c.Client, c.Serializer,
				llmplayer.WithLogger(c.Logger),
				llmplayer.WithTokenCounter(c.tokenCounter),
				llmplayer.WithAttemptLogger(c.attemptLog),
			)
		})
		if err != nil {
			return fmt.Errorf("プレイヤー %s の登録に失敗: %w", cfg.Code, err)
		}
	}

	err := c.Registry.Register("RANDOM", "uniform random baseline", func(color string) (playerdomain.Player, error) {
		return random.New(color), nil
	})
	if err != nil {
		return fmt.Errorf("プレイヤー RANDOM の登録に失敗: %w", err)
	}

	return nil
}

// Close はContainerが保持するリソースをクリーンアップする
func (c *Container) Close() {
	if c.attemptLog != nil {
		if err := c.attemptLog.Close(); err != nil {
			c.Logger.Warn("failed to close attempt log", "error", err)
		}
	}
}
