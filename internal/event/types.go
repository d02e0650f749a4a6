package event

import (
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/types"
)

const (
	UnitSpawned    EventType = "UnitSpawned"    // Юнит создан (волна или старт)
	UnitDied       EventType = "UnitDied"       // Здоровье упало до нуля
	LastHit        EventType = "LastHit"        // Герой добил вражеского крипа
	Denied         EventType = "Denied"         // Герой добил своего крипа
	CriticalStrike EventType = "CriticalStrike" // Сработал крит
	BarrierBlocked EventType = "BarrierBlocked" // Барьер остановил крипа
	WaveStarted    EventType = "WaveStarted"    // Началась новая волна
	ItemPurchased  EventType = "ItemPurchased"
	ShieldCast     EventType = "ShieldCast"
)

// UnitSpawnedData — дескриптор нового юнита для внешнего визуального слоя.
type UnitSpawnedData struct {
	ID         types.EntityID
	Team       types.Team
	Kind       types.UnitKind
	X, Y       float64
	HP         float64
	Radius     float64
	Stats      defs.Stats
	LaneOffset float64
}

// UnitDiedData описывает смерть юнита. KillerID равен нулю, если убил барьер.
type UnitDiedData struct {
	ID       types.EntityID
	KillerID types.EntityID
}

// LastHitData сопровождает LastHit и Denied. Gold равен нулю для денаев.
type LastHitData struct {
	HeroID  types.EntityID
	CreepID types.EntityID
	Team    types.Team
	Gold    int
}

// CriticalStrikeData — кто нанёс крит и с каким уроном.
type CriticalStrikeData struct {
	AttackerID types.EntityID
	Damage     int
}

// BarrierBlockedData — барьер команды Team убил крипа.
type BarrierBlockedData struct {
	Team          types.Team
	CreepID       types.EntityID
	HitsRemaining int
}

// WaveStartedData — номер новой волны.
type WaveStartedData struct {
	Number int
}

// ItemPurchasedData — покупка героя.
type ItemPurchasedData struct {
	HeroID types.EntityID
	Item   defs.ItemID
	Cost   int
}

// ShieldCastData — щит наложен на союзника.
type ShieldCastData struct {
	CasterID types.EntityID
	TargetID types.EntityID
}
