package testing

import (
	"strconv"

	"github.com/jinford/catan-llm-player/internal/module/player/domain"
)

// MockSerializer はテスト用のモックStateSerializerです
type MockSerializer struct {
	SerializeFunc func(game domain.GameView, color string, actions []domain.Action) string
}

// Serialize はSerializeのモック実装です
// SerializeFuncが未設定の場合は固定文字列を返します
func (m *MockSerializer) Serialize(game domain.GameView, color string, actions []domain.Action) string {
	if m.SerializeFunc != nil {
		return m.SerializeFunc(game, color, actions)
	}
	return "serialized game state"
}

// StubGameView はテスト用の最小のGameView実装です
type StubGameView struct {
	Prompt       string
	Turn         int
	PlayerList   []domain.PlayerSummary
	Buildings    map[string]string
	Bank         []int
	DevCardsLeft int
	Discarding   bool
	MovingKnight bool
	Trading      bool
	Trade        string
	InitialBuild bool
}

func (v *StubGameView) CurrentPrompt() string               { return v.Prompt }
func (v *StubGameView) IsInitialBuildPhase() bool           { return v.InitialBuild }
func (v *StubGameView) TurnNumber() int                     { return v.Turn }
func (v *StubGameView) Players() []domain.PlayerSummary     { return v.PlayerList }
func (v *StubGameView) BuildingsByColor() map[string]string { return v.Buildings }
func (v *StubGameView) ResourceBank() []int                 { return v.Bank }
func (v *StubGameView) DevelopmentCardsLeft() int           { return v.DevCardsLeft }
func (v *StubGameView) IsDiscarding() bool                  { return v.Discarding }
func (v *StubGameView) IsMovingKnight() bool                { return v.MovingKnight }
func (v *StubGameView) IsResolvingTrade() bool              { return v.Trading }
func (v *StubGameView) CurrentTrade() string                { return v.Trade }

// TestActions はn件の合法手を生成します
// Valueに位置を埋め込み、どの手が返されたかを比較できるようにします
func TestActions(n int) []domain.Action {
	actions := make([]domain.Action, 0, n)
	for i := 0; i < n; i++ {
		actions = append(actions, domain.Action{
			Color: "RED",
			Type:  "END_TURN",
			Value: strconv.Itoa(i),
		})
	}
	return actions
}
