package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jinford/catan-llm-player/cmd/catan-llm-player/commands"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 構造化ログの設定
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	app := &cli.Command{
		Name:  "catan-llm-player",
		Usage: "LLMをカタンのプレイヤーとして動かすアダプターCLI",
		Commands: []*cli.Command{
			{
				Name:  "models",
				Usage: "プレイヤー管理コマンド",
				Commands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "登録済みプレイヤーの一覧を表示",
						Action: commands.ModelsListAction,
					},
				},
			},
			{
				Name:  "decide",
				Usage: "盤面スナップショットに対して1回の意思決定を実行",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "env",
						Usage: "環境変数ファイルパス",
						Value: ".env",
					},
					&cli.StringFlag{
						Name:     "state",
						Usage:    "盤面スナップショット（JSON）のパス",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "player",
						Usage: "プレイヤーコード",
						Value: "GEMINI2_0",
					},
					&cli.StringFlag{
						Name:  "color",
						Usage: "担当する色",
						Value: "RED",
					},
				},
				Action: commands.DecideAction,
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatalf("error: %v", err)
	}
}
