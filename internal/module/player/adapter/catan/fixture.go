package catan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jinford/catan-llm-player/internal/module/player/domain"
)

// Fixture はJSONスナップショットから構築されるGameView実装
// シミュレーション本体なしでCLIやテストから意思決定を実行するために使う
type Fixture struct {
	Prompt            string            `json:"current_prompt"`
	InitialBuildPhase bool              `json:"is_initial_build_phase"`
	Turn              int               `json:"turn_number"`
	PlayerList        []FixturePlayer   `json:"players"`
	Buildings         map[string]string `json:"buildings_by_color"`
	Bank              []int             `json:"resource_bank"`
	DevCardsLeft      int               `json:"development_cards_left"`
	Discarding        bool              `json:"is_discarding"`
	MovingKnight      bool              `json:"is_moving_knight"`
	ResolvingTrade    bool              `json:"is_resolving_trade"`
	Trade             string            `json:"current_trade"`
	ActionList        []FixtureAction   `json:"playable_actions"`
}

// FixturePlayer はスナップショット内の1プレイヤー分の情報
type FixturePlayer struct {
	Color         string `json:"color"`
	VictoryPoints int    `json:"victory_points"`
	Wood          int    `json:"wood"`
	Brick         int    `json:"brick"`
	Sheep         int    `json:"sheep"`
	Wheat         int    `json:"wheat"`
	Ore           int    `json:"ore"`
	Knight        int    `json:"knight"`
	VictoryCard   int    `json:"victory_point_card"`
	YearOfPlenty  int    `json:"year_of_plenty"`
	Monopoly      int    `json:"monopoly"`
	RoadBuilding  int    `json:"road_building"`
}

// FixtureAction はスナップショット内の合法手1件
type FixtureAction struct {
	Color string `json:"color"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// LoadFixture はJSONファイルからFixtureを読み込む
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var fixture Fixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file: %w", err)
	}
	return &fixture, nil
}

// Actions はスナップショットの合法手リストをdomain.Actionに変換して返す
func (f *Fixture) Actions() []domain.Action {
	actions := make([]domain.Action, 0, len(f.ActionList))
	for _, a := range f.ActionList {
		actions = append(actions, domain.Action{
			Color: a.Color,
			Type:  a.Type,
			Value: a.Value,
		})
	}
	return actions
}

// CurrentPrompt は現在のフェーズ名を返す
func (f *Fixture) CurrentPrompt() string { return f.Prompt }

// IsInitialBuildPhase は初期配置フェーズかどうかを返す
func (f *Fixture) IsInitialBuildPhase() bool { return f.InitialBuildPhase }

// TurnNumber は現在のターン番号を返す
func (f *Fixture) TurnNumber() int { return f.Turn }

// Players は着席順のプレイヤーサマリーを返す
func (f *Fixture) Players() []domain.PlayerSummary {
	players := make([]domain.PlayerSummary, 0, len(f.PlayerList))
	for _, p := range f.PlayerList {
		players = append(players, domain.PlayerSummary{
			Color:         p.Color,
			VictoryPoints: p.VictoryPoints,
			Resources: domain.ResourceCounts{
				Wood:  p.Wood,
				Brick: p.Brick,
				Sheep: p.Sheep,
				Wheat: p.Wheat,
				Ore:   p.Ore,
			},
			DevCards: domain.DevCardCounts{
				Knight:       p.Knight,
				VictoryPoint: p.VictoryCard,
				YearOfPlenty: p.YearOfPlenty,
				Monopoly:     p.Monopoly,
				RoadBuilding: p.RoadBuilding,
			},
		})
	}
	return players
}

// BuildingsByColor は色ごとの建造物要約を返す
func (f *Fixture) BuildingsByColor() map[string]string { return f.Buildings }

// ResourceBank は銀行の資源残数を返す
func (f *Fixture) ResourceBank() []int { return f.Bank }

// DevelopmentCardsLeft は山札に残る発展カード枚数を返す
func (f *Fixture) DevelopmentCardsLeft() int { return f.DevCardsLeft }

// IsDiscarding は捨て札フェーズ中かどうかを返す
func (f *Fixture) IsDiscarding() bool { return f.Discarding }

// IsMovingKnight は盗賊（騎士）移動中かどうかを返す
func (f *Fixture) IsMovingKnight() bool { return f.MovingKnight }

// IsResolvingTrade は交渉中かどうかを返す
func (f *Fixture) IsResolvingTrade() bool { return f.ResolvingTrade }

// CurrentTrade は交渉中の取引の要約を返す
func (f *Fixture) CurrentTrade() string { return f.Trade }

// インターフェース実装の確認
var _ domain.GameView = (*Fixture)(nil)
