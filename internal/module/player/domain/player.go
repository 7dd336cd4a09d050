package domain

import (
	"context"
	"fmt"
)

// Action は外部シミュレーションが提示する一手の記述子
// 1回の意思決定の中では合法手リスト内の位置がアクションの同一性を表す
type Action struct {
	// Color はアクションを実行するプレイヤーの色
	Color string

	// Type はアクション種別（例: "BUILD_SETTLEMENT", "ROLL"）
	Type string

	// Value はアクションのパラメータ表現（座標、資源など）
	Value string
}

// String は合法手リストに表示する1行表現を返す
func (a Action) String() string {
	if a.Value == "" {
		return fmt.Sprintf("%s(color=%s)", a.Type, a.Color)
	}
	return fmt.Sprintf("%s(color=%s, value=%s)", a.Type, a.Color, a.Value)
}

// Player はゲームシミュレーションのターンループから呼び出されるプレイヤー
type Player interface {
	// Decide は合法手の中から一手を選ぶ
	// actionsは1件以上であることが保証され、返り値は必ずactionsの要素となる
	// リモート呼び出しや解析の失敗はこの境界を越えず、最悪でもactions[0]が返る
	Decide(ctx context.Context, game GameView, actions []Action) Action

	// Color は担当する色を返す
	Color() string
}

// StateSerializer は盤面と合法手を決定論的なテキスト要約に変換する
// 実装はシミュレーション側の協力者であり、純粋関数として扱う
type StateSerializer interface {
	Serialize(game GameView, color string, actions []Action) string
}
