package config

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Neural Canvas - 1-5: view, Tab: next view, F3: overlay, Esc/Q: quit"
	LogPrefix    = "neural-canvas: "
	DefaultView  = "home"

	// Viewports narrower than this get the small particle set
	MobileBreakpoint     = 768
	MobileParticleCount  = 60
	DesktopParticleCount = 140

	// Above this many particles links are found through grid buckets
	GridBucketThreshold = 256

	// Overlay
	HistoryRingSize      = 240
	OverlayFPS           = 60
	OverlaySpringFreq    = 6.0
	OverlaySpringDamping = 1.0
	OverlayHistoryWidth  = 160
	OverlayHistoryHeight = 32
)

// Palette. The canvas sits at CanvasOpacity over the page base colour.
const (
	CanvasOpacity        = 0.7
	BackdropBaseColorHex = "#020308"
	BackdropInnerAlpha   = 0.2
	BackdropOuterAlpha   = 0.9
	BackdropInnerCenterY = 0.1
	BackdropOuterCenterY = 0.5
	BackdropOuterRadiusH = 0.9

	ConnectionColorHex = "#00f3ff"
	PrimaryColorHex    = "#00f3ff" // fact
	SecondaryColorHex  = "#bc13fe" // narrative
	HighlightColorHex  = "#ffb347" // shared
	PrimaryAlpha       = 0.55
	SecondaryAlpha     = 0.7
	HighlightAlpha     = 0.9
)

// Spawn parameters
const (
	PrimaryKindWeight   = 0.65
	SecondaryKindWeight = 0.25
	HighlightKindWeight = 0.10
	HighlightSizeScale  = 1.3
	MinParticleSize     = 1.0
	ParticleSizeRange   = 1.7
	BaseSpeed           = 0.28
	VelocitySpread      = 3.0
)

// Simulation parameters
const (
	StructureEasing = 0.02

	// Drift is scaled by DriftBase - DriftDamping*structure
	DriftBase    = 1.4
	DriftDamping = 0.6

	PullThreshold = 0.05
	PullBase      = 0.015
	PullGain      = 0.035

	LatticeMargin = 0.18
	RespawnMargin = 40.0

	ConnectionDistance = 120.0
	ConnectionLoose    = 1.1
	ConnectionTighten  = 0.5
	LinkAlphaBase      = 0.55
	LinkAlphaGain      = 0.4
	LinkWidthBase      = 0.4
	LinkWidthGain      = 0.6
)

// Target structure per view
const (
	HomeStructure       = 0.1
	MagazineStructure   = 0.3
	AnalyticalStructure = 0.95
)
