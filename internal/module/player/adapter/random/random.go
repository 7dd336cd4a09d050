package random

import (
	"context"
	"math/rand"

	"github.com/jinford/catan-llm-player/internal/module/player/domain"
)

// Player は合法手から一様ランダムに一手を選ぶベースライン実装
type Player struct {
	color string
}

// New は新しいPlayerを作成する
func New(color string) *Player {
	return &Player{color: color}
}

// Decide は合法手から一手をランダムに選ぶ
func (p *Player) Decide(_ context.Context, _ domain.GameView, actions []domain.Action) domain.Action {
	if len(actions) == 0 {
		return domain.Action{}
	}
	return actions[rand.Intn(len(actions))]
}

// Color は担当する色を返す
func (p *Player) Color() string {
	return p.color
}

// インターフェース実装の確認
var _ domain.Player = (*Player)(nil)
