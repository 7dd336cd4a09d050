package domain

// ResourceCounts は手札の資源カード枚数
type ResourceCounts struct {
	Wood  int
	Brick int
	Sheep int
	Wheat int
	Ore   int
}

// Total は資源カードの合計枚数を返す
func (r ResourceCounts) Total() int {
	return r.Wood + r.Brick + r.Sheep + r.Wheat + r.Ore
}

// DevCardCounts は手札の発展カード枚数
type DevCardCounts struct {
	Knight       int
	VictoryPoint int
	YearOfPlenty int
	Monopoly     int
	RoadBuilding int
}

// PlayerSummary は1プレイヤー分の公開・非公開情報のスナップショット
// 相手に見せてよい範囲の制御はシリアライザ側で行う
type PlayerSummary struct {
	Color         string
	VictoryPoints int
	Resources     ResourceCounts
	DevCards      DevCardCounts
}

// GameView はゲーム状態への読み取り専用の能力インターフェース
// シミュレーションの内部構造に依存せず、意思決定に必要な事実のみを公開する
type GameView interface {
	// CurrentPrompt は現在のフェーズを表すプロンプト名を返す
	CurrentPrompt() string

	// IsInitialBuildPhase は初期配置フェーズかどうかを返す
	IsInitialBuildPhase() bool

	// TurnNumber は現在のターン番号を返す
	TurnNumber() int

	// Players は着席順のプレイヤーサマリーを返す
	Players() []PlayerSummary

	// BuildingsByColor は色ごとの建造物の表示用要約を返す
	BuildingsByColor() map[string]string

	// ResourceBank は銀行の資源残数を返す
	ResourceBank() []int

	// DevelopmentCardsLeft は山札に残る発展カード枚数を返す
	DevelopmentCardsLeft() int

	// IsDiscarding は捨て札フェーズ中かどうかを返す
	IsDiscarding() bool

	// IsMovingKnight は盗賊（騎士）移動中かどうかを返す
	IsMovingKnight() bool

	// IsResolvingTrade は交渉中かどうかを返す
	IsResolvingTrade() bool

	// CurrentTrade は交渉中の取引の表示用要約を返す（交渉中でなければ空）
	CurrentTrade() string
}
