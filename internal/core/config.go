package core

// RuntimeConfig contains configuration passed to scenes at mount.
// Scenes use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic simulation
	CellW    int   // Simulation pixels per cell, horizontally
	CellH    int   // Simulation pixels per cell, vertically
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		CellW:    10,
		CellH:    20,
	}
}

// Viewport returns the simulation viewport size in pixels.
func (c RuntimeConfig) Viewport() (w, h float64) {
	cw, ch := c.cellSize()
	return float64(c.ScreenW * cw), float64(c.ScreenH * ch)
}

// ToCell converts a simulation pixel position to a cell position.
func (c RuntimeConfig) ToCell(p Point) (x, y int) {
	cw, ch := c.cellSize()
	return int(p.X) / cw, int(p.Y) / ch
}

// ToPixel returns the pixel position of the centre of a cell.
func (c RuntimeConfig) ToPixel(x, y int) Point {
	cw, ch := c.cellSize()
	return Point{
		X: float64(x*cw) + float64(cw)/2,
		Y: float64(y*ch) + float64(ch)/2,
	}
}

func (c RuntimeConfig) cellSize() (int, int) {
	cw, ch := c.CellW, c.CellH
	if cw <= 0 {
		cw = 10
	}
	if ch <= 0 {
		ch = 20
	}
	return cw, ch
}

// SceneState represents the current state of a scene.
// Returned by Scene.State() to communicate status to the platform.
type SceneState struct {
	ManualPops int  // Bubbles popped by taps
	AutoPops   int  // Bubbles that expired on their own
	Combos     int  // Combo rewards triggered
	Shots      int  // Bubble gun shots fired
	Boosted    bool // Whether the combo boost is active
	Mounted    bool // Whether the scene is live
}

// StepResult is returned by Scene.Step() after each simulation tick.
type StepResult struct {
	State SceneState

	// UnlockRequested is set on the tick the parental gate opened.
	UnlockRequested bool
}
