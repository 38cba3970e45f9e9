package distmatch

import "github.com/automoto/stride/shared/animcurve"

// Clip describes the playback properties of an animation clip.
type Clip struct {
	Name      string
	Length    float64
	RateScale float64
	Skeleton  string
}

// Library resolves clips and the named curves embedded in them. Both lookups
// report false for unknown names; callers treat that as a missing curve
// rather than a failure.
type Library interface {
	Clip(name string) (Clip, bool)
	Curve(clip, curve string) (animcurve.Curve, bool)
}

// compatible reports whether clip can be evaluated on skeleton. An empty
// skeleton on either side matches anything.
func compatible(skeleton string, clip Clip) bool {
	return skeleton == "" || clip.Skeleton == "" || skeleton == clip.Skeleton
}
