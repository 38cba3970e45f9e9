// Package distmatch drives animation playback time from traveled distance.
//
// A clip's distance curve maps playback time to cumulative distance. Resolve
// performs the inverse lookup, turning a target distance into a playback
// time, and applies the looping, delta and clamping policies. Blend combines
// the distance curves of several weighted clips into one curve over
// normalized time so the same lookup can drive a blend space.
//
// Evaluate is the per-tick entry point for a node. It is a pure function of
// the node configuration, the previous MatchState and the tick input; the
// caller owns the state and stores the returned copy.
package distmatch
