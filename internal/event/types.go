// internal/event/types.go
package event

const (
	EnemyKilled  EventType = "EnemyKilled"  // Враг убит, Data: EnemyKilledData
	ChestOpened  EventType = "ChestOpened"  // Сундук открыт, Data: CoinsData
	CoinsChanged EventType = "CoinsChanged" // Изменился счет монет, Data: CoinsData
	HeroDied     EventType = "HeroDied"     // Герой погиб
	BandEntered  EventType = "BandEntered"  // Герой вошел в новую полосу, Data: BandData
	RunFinished  EventType = "RunFinished"  // Забег закончен, Data: CoinsData
)

// EnemyKilledData — данные события EnemyKilled.
type EnemyKilledData struct {
	Name  string
	Coins int
}

// CoinsData несет прирост и итоговое значение.
type CoinsData struct {
	Delta int
	Total int
}

// BandData — номер полосы и признак большой волны.
type BandData struct {
	Band int
	Boss bool
}

func (EnemyKilledData) payload() {}
func (CoinsData) payload()       {}
func (BandData) payload()        {}
