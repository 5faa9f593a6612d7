package parameter

// Empirically tuned motion gains; preserved as-is, not derived

// Pursuit
const (
	// WeaponChaseGain scales (target - position) into target velocity while idle or charging
	WeaponChaseGain = 10.0
)

// Arc following while swinging
const (
	// SwingNormalGain pulls the tip back onto the arc
	SwingNormalGain = 5.0

	// SwingTangentGain pushes the tip along the arc, multiplied by swing power
	SwingTangentGain = 5.0

	// SwingGain scales the combined arc-following velocity
	SwingGain = 3.0

	// SwingSpeedFactor lets an active swing exceed speed_max by this factor
	SwingSpeedFactor = 1.5

	// SwingEndT is the arc parameter past which a swing is complete
	SwingEndT = 1.0
)

// One-shot impulses
const (
	// BoostNormalGain is the normal component of the swing-start impulse
	BoostNormalGain = 3.0

	// BoostTangentGain is the tangent component of the swing-start impulse, multiplied by power
	BoostTangentGain = 5.0

	// BoostGain scales the swing-start impulse
	BoostGain = 3.0

	// RecoilGain scales the swing-end impulse toward the cursor, multiplied by power
	RecoilGain = 5.0
)

// Geometry
const (
	// WeaponReachDefault is the tip's maximum distance from the player in world units
	WeaponReachDefault = 2.0

	// DefendAngleOffsetDeg rotates the blade sprite while a defend action is active
	DefendAngleOffsetDeg = 50.0

	// ArcChainResolution is the segment count for arc debug overlays
	ArcChainResolution = 50
)

// History
const (
	// HistoryInitialCapacity pre-sizes trail buffers (~0.5s at 120 samples/s)
	HistoryInitialCapacity = 64
)
