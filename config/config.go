package config

// Config contains window and timing configuration
type Config struct {
	Width    int
	Height   int
	TickRate int // simulation ticks per second
}

// DistanceMatchConfig contains distance matching defaults shared by all nodes
type DistanceMatchConfig struct {
	CurveName   string // curve looked up on each clip
	Skeleton    string // skeleton characters are built for
	ReportEvery int    // ticks between snapshot log lines in the headless runner
}

// SpeedSegment is one leg of a scripted speed profile
type SpeedSegment struct {
	Speed    float64 // target speed at the end of the segment (pixels/second)
	Duration float64 // seconds
	Ease     string  // easing name, see clips.EaseNames
}

// LocomotionConfig contains character movement configuration
type LocomotionConfig struct {
	WalkSpeed    float64 // speed the walk clip is authored for (pixels/second)
	RunSpeed     float64 // speed the run clip is authored for (pixels/second)
	Acceleration float64 // pixels/second^2 when speeding up
	Friction     float64 // pixels/second^2 when slowing down
	MaxSpeed     float64

	// Profile is the scripted speed curve the demo characters follow
	Profile []SpeedSegment
}

// DebugConfig contains debug options
type DebugConfig struct {
	Overlay bool // Draw node snapshots in the viewer
}

var C *Config
var DistanceMatch DistanceMatchConfig
var Locomotion LocomotionConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	DistanceMatch = DistanceMatchConfig{
		CurveName:   "Distance",
		Skeleton:    "hero",
		ReportEvery: 30,
	}

	Locomotion = LocomotionConfig{
		WalkSpeed:    96.0,  // walk clip covers 96px in 1.0s
		RunSpeed:     268.0, // run clip covers 172px in 0.64s
		Acceleration: 400.0,
		Friction:     600.0,
		MaxSpeed:     320.0,

		Profile: []SpeedSegment{
			{Speed: 96, Duration: 1.5, Ease: "inOutQuad"},  // start walking
			{Speed: 96, Duration: 2.0, Ease: "linear"},     // walk
			{Speed: 268, Duration: 1.0, Ease: "inQuad"},    // speed up
			{Speed: 268, Duration: 2.0, Ease: "linear"},    // run
			{Speed: 0, Duration: 1.2, Ease: "outCubic"},    // stop
			{Speed: 0, Duration: 1.0, Ease: "linear"},      // rest
		},
	}

	Debug = DebugConfig{
		Overlay: true,
	}
}
