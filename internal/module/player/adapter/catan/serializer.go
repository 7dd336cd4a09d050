package catan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jinford/catan-llm-player/internal/module/player/domain"
)

// Serializer はカタンの盤面と合法手をテキスト要約に変換する
// 同じ盤面からは常に同じテキストを生成する
type Serializer struct{}

// NewSerializer は新しいSerializerを作成する
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize は盤面の要約を組み立てる
// 自分の資源と発展カードは明細を、相手は勝利点と手札合計のみを出力する
func (s *Serializer) Serialize(game domain.GameView, color string, actions []domain.Action) string {
	var output []string
	output = append(output, "=== DEBUG BOT STATE ===")

	// ゲームフェーズ情報
	output = append(output, "Game Phase:")
	output = append(output, fmt.Sprintf("  Current Prompt: %s", game.CurrentPrompt()))
	output = append(output, fmt.Sprintf("  Initial Build Phase: %t", game.IsInitialBuildPhase()))
	output = append(output, fmt.Sprintf("  Turn Number: %d", game.TurnNumber()))

	// プレイヤー情報
	output = append(output, "\nPlayers:")
	output = append(output, fmt.Sprintf("I am playing as: %s", color))
	for _, player := range game.Players() {
		marker := ""
		if player.Color == color {
			marker = "(ME)"
		}
		output = append(output, fmt.Sprintf("\n%s%s:", player.Color, marker))
		output = append(output, fmt.Sprintf("  Victory Points: %d", player.VictoryPoints))

		if player.Color == color {
			// 自分の手札は明細を出力する
			output = append(output, "  Resources:")
			output = append(output, fmt.Sprintf("    Wood: %d", player.Resources.Wood))
			output = append(output, fmt.Sprintf("    Brick: %d", player.Resources.Brick))
			output = append(output, fmt.Sprintf("    Sheep: %d", player.Resources.Sheep))
			output = append(output, fmt.Sprintf("    Wheat: %d", player.Resources.Wheat))
			output = append(output, fmt.Sprintf("    Ore: %d", player.Resources.Ore))
			output = append(output, "  Development Cards:")
			output = append(output, fmt.Sprintf("    Knights: %d", player.DevCards.Knight))
			output = append(output, fmt.Sprintf("    Victory Points: %d", player.DevCards.VictoryPoint))
			output = append(output, fmt.Sprintf("    Year of Plenty: %d", player.DevCards.YearOfPlenty))
			output = append(output, fmt.Sprintf("    Monopoly: %d", player.DevCards.Monopoly))
			output = append(output, fmt.Sprintf("    Road Building: %d", player.DevCards.RoadBuilding))
		} else {
			// 相手は手札の合計枚数のみを出力する
			output = append(output, fmt.Sprintf("  Total Resource Cards: %d", player.Resources.Total()))
		}
	}

	// 盤面情報
	output = append(output, "\nBoard State:")
	output = append(output, fmt.Sprintf("  Buildings: %s", formatBuildings(game.BuildingsByColor())))
	output = append(output, fmt.Sprintf("  Resource Bank: %v", game.ResourceBank()))
	output = append(output, fmt.Sprintf("  Development Cards Left: %d", game.DevelopmentCardsLeft()))

	// 特殊フェーズ
	if game.IsDiscarding() {
		output = append(output, "\nDiscard Phase Active")
	}
	if game.IsMovingKnight() {
		output = append(output, "\nKnight Movement Active")
	}
	if game.IsResolvingTrade() {
		output = append(output, fmt.Sprintf("\nTrade Active: %s", game.CurrentTrade()))
	}

	// 合法手は0始まりの番号付きで列挙する
	output = append(output, "\nPlayable Actions:")
	for i, action := range actions {
		output = append(output, fmt.Sprintf("%d: %s", i, action))
	}
	output = append(output, "=====================")

	return strings.Join(output, "\n")
}

// formatBuildings は色ごとの建造物要約を色のソート順で整形する
// mapの反復順に依存させないため、出力の決定性をここで保証する
func formatBuildings(buildings map[string]string) string {
	colors := make([]string, 0, len(buildings))
	for c := range buildings {
		colors = append(colors, c)
	}
	sort.Strings(colors)

	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		parts = append(parts, fmt.Sprintf("%s=%s", c, buildings[c]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// インターフェース実装の確認
var _ domain.StateSerializer = (*Serializer)(nil)
