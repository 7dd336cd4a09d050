package commands

import (
	"context"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/jinford/catan-llm-player/internal/module/player/adapter/llmplayer"
)

// ModelsListAction は組み込みプレイヤーの一覧を表示するコマンドのアクション
// 一覧表示に認証情報は不要なため、プリセット定義のみを参照する
func ModelsListAction(_ context.Context, _ *cli.Command) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("コード", "モデル", "スキーマ範囲制約")

	for _, preset := range []llmplayer.Config{llmplayer.GeminiFlash(), llmplayer.GPT4oMini()} {
		strict := "なし"
		if preset.StrictRange {
			strict = "あり"
		}
		table.Append(preset.Code, preset.Model, strict)
	}
	table.Append("RANDOM", "uniform random baseline", "-")

	table.Render()
	return nil
}
