package parameter

// Floating text
const (
	// TextLifetime is the fade-out duration of a slash/parry label in seconds
	TextLifetime = 0.5

	// TextRotationSpreadDeg is the maximum random tilt either side of horizontal
	TextRotationSpreadDeg = 15.0

	// TextInitialScale is the label scale at spawn
	TextInitialScale = 1.0
)

// Notices
const (
	// NoticeQueueMax bounds undrained notices; the oldest are dropped first
	NoticeQueueMax = 256
)

// Trail rendering
const (
	// CursorTrailAlpha dims the cursor trail relative to the weapon trail
	CursorTrailAlpha = 0.5
)

// Mannequin defaults
const (
	// MannequinX, MannequinY place the default practice target
	MannequinX = 3.0
	MannequinY = 2.0

	// MannequinHalfSize is half the side of the default square target
	MannequinHalfSize = 0.3

	// MannequinFlashDuration is how long a struck target renders highlighted, in seconds
	MannequinFlashDuration = 0.25
)

// Camera
const (
	// CameraFov is the visible world height in units
	CameraFov = 10.0
)

// Terminal sandbox
const (
	// FrameRate is the sandbox tick and redraw frequency in Hz
	FrameRate = 60

	// FrameDeltaMax caps the simulated step after a stall, in seconds
	FrameDeltaMax = 0.1

	// KeyHoldDuration keeps a key-bound action held after each press; spans the
	// terminal's auto-repeat delay so a held key stays down
	KeyHoldDuration = 0.55

	// CellAspect is a terminal cell's height over its width
	CellAspect = 2.0

	// TextVisibleOpacity hides labels fainter than this
	TextVisibleOpacity = 0.05
)
