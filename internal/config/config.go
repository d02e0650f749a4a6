// internal/config/config.go
package config

import "image/color"

const (
	// Игровое поле (ландшафт)
	ScreenWidth  = 844
	ScreenHeight = 390
	MaxDeltaTime = 0.06

	// Тайминги
	WaveInterval = 30.0 // секунд между волнами
	ShopDuration = 15.0 // секунд на магазин

	// Бой: выбор цели и движение
	MaxAttackersPerTarget = 100
	PickMargin            = 10.0
	AggroRangeBonus       = 200.0 // сверх attackRange, в этом радиусе крип замечает врага
	GoalReachDist         = 50.0  // дистанция, на которой цель линии считается достигнутой
	MovementStopDist      = 5.0
	RangedRangeThreshold  = 200.0 // attackRange выше порога — дальний крип
	SeparationPadding     = 4.0
	SeparationStrength    = 60.0

	// Бой: предметы
	ShieldItemCooldown  = 35.0
	SplashAoeRadius     = 150.0
	SplashAoeDamageMult = 0.5
	CritChance          = 0.25
	CritMultiplier      = 2
	MidasGoldMult       = 1.3
	RapidFireSpeedMult  = 1.5
	RapidFireDuration   = 5.0
	LaserEveryNth       = 4
	SplashEveryNth      = 2

	// Награда за крипов
	MeleeCreepGoldBase  = 38
	RangedCreepGoldBase = 54
	CreepGoldVariance   = 7 // случайный бонус в [0, CreepGoldVariance)

	// Снаряды
	ProjectileLifetime   = 3.0
	ProjectileArcFactor  = 0.25
	ProjectileArcMax     = 80.0
	ProjectileRadius     = 6.0
	ProjectileMinDivisor = 1.0

	// Барьеры
	BarrierCharges = 3

	// Формация волны
	CreepRadius        = 22.0
	CreepSpacing       = 2*CreepRadius + 50
	MeleePerWave       = 3
	RangedBackOffset   = 60.0
	HeroRadius         = 28.0
	HeroCornerInset    = HeroRadius*3/2 + 14
	DenyHealthFraction = 0.5

	// Визуальные подсказки
	FloatingTextDuration  = 1.0
	FloatingTextRiseSpeed = 30.0
	BeamDuration          = 0.2
	CritTextOffsetY       = 30.0
	BlockedTextOffsetY    = 20.0
)

var (
	BackgroundColor   = color.RGBA{17, 17, 17, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	HeroColors        = []color.RGBA{{0, 150, 255, 255}, {255, 153, 255, 255}}
	MeleeCreepColors  = []color.RGBA{{110, 231, 110, 255}, {255, 107, 107, 255}}
	RangedCreepColors = []color.RGBA{{31, 175, 58, 255}, {200, 30, 30, 255}}
	ProjectileColors  = []color.RGBA{{79, 195, 247, 255}, {255, 107, 107, 255}}
	BarrierColors     = []color.RGBA{{79, 195, 247, 255}, {255, 107, 107, 255}}
	LaserColors       = []color.RGBA{{0, 255, 255, 255}, {255, 0, 255, 255}}
	DenyColors        = []color.RGBA{{0, 150, 255, 255}, {255, 153, 255, 255}}
	GoldColor         = color.RGBA{255, 215, 0, 255}
	CritColor         = color.RGBA{255, 0, 0, 255}
	SplashColor       = color.RGBA{255, 165, 0, 255}
	HPBarBackground   = color.RGBA{51, 51, 51, 255}
	HPBarHigh         = color.RGBA{76, 175, 80, 255}
	HPBarMid          = color.RGBA{255, 152, 0, 255}
	HPBarLow          = color.RGBA{244, 67, 54, 255}
)
