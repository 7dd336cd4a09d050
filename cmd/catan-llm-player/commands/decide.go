package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jinford/catan-llm-player/internal/module/player/adapter/catan"
)

// DecideAction は盤面スナップショットに対して1回の意思決定を実行するアクション
func DecideAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")
	statePath := cmd.String("state")
	playerCode := cmd.String("player")
	color := cmd.String("color")

	// 共通コンテキストの初期化
	appCtx, err := NewAppContext(envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	// 盤面スナップショットの読み込み
	fixture, err := catan.LoadFixture(statePath)
	if err != nil {
		return fmt.Errorf("盤面スナップショットの読み込みに失敗: %w", err)
	}

	actions := fixture.Actions()
	if len(actions) == 0 {
		return fmt.Errorf("スナップショットに合法手が含まれていません")
	}

	// プレイヤーの構築
	player, err := appCtx.Container.Registry.New(playerCode, color)
	if err != nil {
		return fmt.Errorf("プレイヤーの構築に失敗: %w", err)
	}

	// 意思決定の実行（この呼び出しはエラーを返さず、必ず合法手を返す）
	chosen := player.Decide(ctx, fixture, actions)

	fmt.Printf("player: %s (%s)\n", playerCode, color)
	fmt.Printf("actions: %d\n", len(actions))
	fmt.Printf("chosen: %s\n", chosen)
	return nil
}
