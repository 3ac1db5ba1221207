// Package config provides YAML-based tunables for the playroom scenes
// and the colour themes used to draw them.
package config

import "time"

// BubblesConfig contains every tunable of the bubble scene.
type BubblesConfig struct {
	Population BubblePopulation `yaml:"population"`
	Sizes      []SizeClass      `yaml:"sizes"`
	Motion     BubbleMotion     `yaml:"motion"`
	Separation BubbleSeparation `yaml:"separation"`
	Placement  BubblePlacement  `yaml:"placement"`
	Decor      BubbleDecor      `yaml:"decor"`
	Combo      BubbleCombo      `yaml:"combo"`
	Emitter    BubbleEmitter    `yaml:"emitter"`
	Clouds     BubbleClouds     `yaml:"clouds"`
	Tilt       BubbleTilt       `yaml:"tilt"`
	SFX        BubbleSFX        `yaml:"sfx"`
	Parental   ParentalGate     `yaml:"parental"`
	Viewport   Viewport         `yaml:"viewport"`
}

// BubblePopulation sizes the drifting crowd to the viewport area.
type BubblePopulation struct {
	AreaPerBubble float64 `yaml:"area_per_bubble"`
	Min           int     `yaml:"min"`
	Max           int     `yaml:"max"`
}

// SizeClass is one weighted bubble size band with its lifetime range.
type SizeClass struct {
	Name     string  `yaml:"name"`
	Weight   float64 `yaml:"weight"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	TTLMinMs int     `yaml:"ttl_min_ms"`
	TTLMaxMs int     `yaml:"ttl_max_ms"`
	TouchPad float64 `yaml:"touch_pad"`
}

// BubbleMotion defines steering parameters.
type BubbleMotion struct {
	SpeedMin          float64 `yaml:"speed_min"`
	SpeedMax          float64 `yaml:"speed_max"`
	LegMin            float64 `yaml:"leg_min"`
	LegMax            float64 `yaml:"leg_max"`
	LegDurationMinMs  int     `yaml:"leg_duration_min_ms"`
	LegDurationMaxMs  int     `yaml:"leg_duration_max_ms"`
	MaxTurnDeg        float64 `yaml:"max_turn_deg"`
	InitialSpreadDeg  float64 `yaml:"initial_spread_deg"`
	SoftWall          float64 `yaml:"soft_wall"`
	WallNudgeXDeg     float64 `yaml:"wall_nudge_x_deg"`
	WallNudgeYDeg     float64 `yaml:"wall_nudge_y_deg"`
	BiasGainMin       float64 `yaml:"bias_gain_min"`
	BiasGainSizeBoost float64 `yaml:"bias_gain_size_boost"`
}

// BubbleSeparation defines the crowd repulsion rule.
type BubbleSeparation struct {
	Factor      float64 `yaml:"factor"`
	Gain        float64 `yaml:"gain"`
	MaxDeltaDeg float64 `yaml:"max_delta_deg"`
}

// BubblePlacement bounds the spawn search.
type BubblePlacement struct {
	Attempts int     `yaml:"attempts"`
	Margin   float64 `yaml:"margin"`
}

// BubbleDecor defines stickers drawn on surprise bubbles.
type BubbleDecor struct {
	StickerProb float64  `yaml:"sticker_prob"`
	Stickers    []string `yaml:"stickers"`
}

// BubbleCombo defines the rapid-pop reward.
type BubbleCombo struct {
	WindowMs   int     `yaml:"window_ms"`
	Threshold  int     `yaml:"threshold"`
	Boost      float64 `yaml:"boost"`
	BoostMs    int     `yaml:"boost_ms"`
	BadgeInMs  int     `yaml:"badge_in_ms"`
	BadgeOutMs int     `yaml:"badge_out_ms"`
}

// BubbleEmitter defines the bubble gun.
type BubbleEmitter struct {
	IntervalMs    int     `yaml:"interval_ms"`
	LongPressMs   int     `yaml:"long_press_ms"`
	MaxShots      int     `yaml:"max_shots"`
	SizeMin       float64 `yaml:"size_min"`
	SizeMax       float64 `yaml:"size_max"`
	SpreadDeg     float64 `yaml:"spread_deg"`
	DistanceMin   float64 `yaml:"distance_min"`
	DistanceMax   float64 `yaml:"distance_max"`
	DurationMinMs int     `yaml:"duration_min_ms"`
	DurationMaxMs int     `yaml:"duration_max_ms"`
	GrowMs        int     `yaml:"grow_ms"`
	BonusSpeed    float64 `yaml:"bonus_speed"`
	Jitter        float64 `yaml:"jitter"`
	StickerProb   float64 `yaml:"sticker_prob"`
}

// BubbleClouds defines the parallax background.
type BubbleClouds struct {
	AreaPerCloud    float64 `yaml:"area_per_cloud"`
	Min             int     `yaml:"min"`
	Max             int     `yaml:"max"`
	RowHeight       float64 `yaml:"row_height"`
	MaxRows         int     `yaml:"max_rows"`
	WidthMin        float64 `yaml:"width_min"`
	WidthMax        float64 `yaml:"width_max"`
	SpeedMin        float64 `yaml:"speed_min"`
	SpeedMax        float64 `yaml:"speed_max"`
	OpacityMin      float64 `yaml:"opacity_min"`
	OpacityMax      float64 `yaml:"opacity_max"`
	NightDim        float64 `yaml:"night_dim"`
	MaxStartDelayMs int     `yaml:"max_start_delay_ms"`
	MinDurationMs   int     `yaml:"min_duration_ms"`
}

// BubbleTilt defines how the sensor reading moves the scene.
type BubbleTilt struct {
	AmplitudeX float64 `yaml:"amplitude_x"`
	AmplitudeY float64 `yaml:"amplitude_y"`
	SmoothMs   int     `yaml:"smooth_ms"`
}

// BubbleSFX throttles pop sounds so bursts stay pleasant.
type BubbleSFX struct {
	ManualGapMs int     `yaml:"manual_gap_ms"`
	AutoProb    float64 `yaml:"auto_prob"`
	AutoGapMs   int     `yaml:"auto_gap_ms"`
	ShotProb    float64 `yaml:"shot_prob"`
	ShotGapMs   int     `yaml:"shot_gap_ms"`
}

// ParentalGate defines the tap pattern that opens the parental area.
type ParentalGate struct {
	Taps    int    `yaml:"taps"`
	ResetMs int    `yaml:"reset_ms"`
	Label   string `yaml:"label"`
}

// Viewport maps terminal cells to simulation pixels.
type Viewport struct {
	CellWidthPx  int `yaml:"cell_width_px"`
	CellHeightPx int `yaml:"cell_height_px"`
}

// Ms converts a millisecond count from the YAML to a duration.
func Ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
