package config

import (
	_ "embed"
)

//go:embed defaults/bubbles.yaml
var defaultBubblesYAML []byte

// DefaultBubblesConfig returns the built-in bubble scene configuration.
func DefaultBubblesConfig() BubblesConfig {
	return BubblesConfig{
		Population: BubblePopulation{
			AreaPerBubble: 65000,
			Min:           20,
			Max:           48,
		},
		Sizes: []SizeClass{
			{Name: "small", Weight: 0.50, MinSize: 60, MaxSize: 76, TTLMinMs: 9000, TTLMaxMs: 13000, TouchPad: 20},
			{Name: "medium", Weight: 0.35, MinSize: 86, MaxSize: 106, TTLMinMs: 6000, TTLMaxMs: 9000, TouchPad: 28},
			{Name: "large", Weight: 0.15, MinSize: 112, MaxSize: 136, TTLMinMs: 4200, TTLMaxMs: 6500, TouchPad: 36},
		},
		Motion: BubbleMotion{
			SpeedMin:          26,
			SpeedMax:          48,
			LegMin:            40,
			LegMax:            120,
			LegDurationMinMs:  900,
			LegDurationMaxMs:  3200,
			MaxTurnDeg:        18,
			InitialSpreadDeg:  180.0 / 14,
			SoftWall:          32,
			WallNudgeXDeg:     15,
			WallNudgeYDeg:     10,
			BiasGainMin:       0.05,
			BiasGainSizeBoost: 0.02,
		},
		Separation: BubbleSeparation{
			Factor:      0.6,
			Gain:        0.12,
			MaxDeltaDeg: 22.5,
		},
		Placement: BubblePlacement{
			Attempts: 30,
			Margin:   10,
		},
		Decor: BubbleDecor{
			StickerProb: 0.12,
			Stickers:    []string{"duck", "cow", "frog", "sheep", "horse", "bunny"},
		},
		Combo: BubbleCombo{
			WindowMs:   1200,
			Threshold:  3,
			Boost:      1.25,
			BoostMs:    2500,
			BadgeInMs:  180,
			BadgeOutMs: 220,
		},
		Emitter: BubbleEmitter{
			IntervalMs:    80,
			LongPressMs:   200,
			MaxShots:      28,
			SizeMin:       36,
			SizeMax:       58,
			SpreadDeg:     30,
			DistanceMin:   90,
			DistanceMax:   170,
			DurationMinMs: 850,
			DurationMaxMs: 1400,
			GrowMs:        220,
			BonusSpeed:    1.2,
			Jitter:        10,
			StickerProb:   0.06,
		},
		Clouds: BubbleClouds{
			AreaPerCloud:    180000,
			Min:             5,
			Max:             10,
			RowHeight:       160,
			MaxRows:         5,
			WidthMin:        140,
			WidthMax:        280,
			SpeedMin:        8,
			SpeedMax:        16,
			OpacityMin:      0.18,
			OpacityMax:      0.33,
			NightDim:        0.85,
			MaxStartDelayMs: 2000,
			MinDurationMs:   6000,
		},
		Tilt: BubbleTilt{
			AmplitudeX: 12,
			AmplitudeY: 8,
			SmoothMs:   120,
		},
		SFX: BubbleSFX{
			ManualGapMs: 220,
			AutoProb:    0.25,
			AutoGapMs:   800,
			ShotProb:    0.15,
			ShotGapMs:   500,
		},
		Parental: ParentalGate{
			Taps:    5,
			ResetMs: 2500,
			Label:   "Parental Area (Tap 5x)",
		},
		Viewport: Viewport{
			CellWidthPx:  10,
			CellHeightPx: 20,
		},
	}
}
