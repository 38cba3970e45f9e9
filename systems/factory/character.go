package factory

import (
	"fmt"

	"github.com/automoto/stride/archetypes"
	"github.com/automoto/stride/assets/clips"
	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/automoto/stride/shared/distmatch"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SequenceNode returns a distance matched node playing a single clip. Delta
// nodes consume the distance covered each tick; others the total distance.
func SequenceNode(name, clip string, loop, delta bool) distmatch.Node {
	return distmatch.Node{
		Name:             name,
		Source:           distmatch.Source{Kind: distmatch.SingleClip, Clip: clip},
		Skeleton:         cfg.DistanceMatch.Skeleton,
		DistanceMatching: true,
		DistanceCurve:    cfg.DistanceMatch.CurveName,
		Loop:             loop,
		DeltaDistance:    delta,
	}
}

// BlendNode returns a looping delta distance matched node blending clips.
func BlendNode(name string, clipNames ...string) distmatch.Node {
	samples := make([]distmatch.WeightedClip, len(clipNames))
	for i, c := range clipNames {
		samples[i] = distmatch.WeightedClip{Clip: c}
	}
	return distmatch.Node{
		Name:             name,
		Source:           distmatch.Source{Kind: distmatch.BlendedComposite, Samples: samples},
		Skeleton:         cfg.DistanceMatch.Skeleton,
		DistanceMatching: true,
		DistanceCurve:    cfg.DistanceMatch.CurveName,
		Loop:             true,
		DeltaDistance:    true,
	}
}

// ClockNode returns a looping node that plays clip at wall clock time.
func ClockNode(name, clip string) distmatch.Node {
	return distmatch.Node{
		Name:     name,
		Source:   distmatch.Source{Kind: distmatch.SingleClip, Clip: clip},
		Skeleton: cfg.DistanceMatch.Skeleton,
		Loop:     true,
	}
}

// CreateCharacter spawns a character evaluating node. positions gives the
// speed of each blend sample and is ignored for single clip nodes.
func CreateCharacter(w donburi.World, node distmatch.Node, positions ...float64) *donburi.Entry {
	character := archetypes.Character.Spawn(w)
	setupCharacter(character, node, positions)
	return character
}

// CreateScriptedCharacter spawns a character whose target speed follows
// profile.
func CreateScriptedCharacter(w donburi.World, node distmatch.Node, profile []cfg.SpeedSegment, loop bool, positions ...float64) (*donburi.Entry, error) {
	seq, err := BuildSpeedProfile(profile, loop)
	if err != nil {
		return nil, fmt.Errorf("character %s: %w", node.Name, err)
	}

	character := archetypes.ScriptedCharacter.Spawn(w)
	setupCharacter(character, node, positions)
	components.SpeedProfile.SetValue(character, components.SpeedProfileData{
		Sequence: seq,
	})
	return character, nil
}

func setupCharacter(e *donburi.Entry, node distmatch.Node, positions []float64) {
	components.Locomotion.SetValue(e, components.LocomotionData{
		Acceleration: cfg.Locomotion.Acceleration,
		Friction:     cfg.Locomotion.Friction,
		MaxSpeed:     cfg.Locomotion.MaxSpeed,
	})

	components.DistanceMatch.SetValue(e, components.DistanceMatchData{
		Node:           node,
		State:          distmatch.NewMatchState(),
		BlendPositions: append([]float64(nil), positions...),
		ExplicitClock:  !node.DistanceMatching,
	})

	clipNames := []string{node.Source.Clip}
	if node.Source.Kind == distmatch.BlendedComposite {
		clipNames = clipNames[:0]
		for _, s := range node.Source.Samples {
			clipNames = append(clipNames, s.Clip)
		}
	}
	components.Animation.Set(e, GenerateAnimations(clipNames...))
}

// BuildSpeedProfile turns speed segments into a tween sequence. Each segment
// starts at the speed the previous one ended on; the first starts at rest.
// A looping sequence repeats forever.
func BuildSpeedProfile(segments []cfg.SpeedSegment, loop bool) (*gween.Sequence, error) {
	seq := gween.NewSequence()
	from := 0.0
	for i, seg := range segments {
		fn, ok := clips.Easing(seg.Ease)
		if !ok {
			return nil, fmt.Errorf("speed segment %d: unknown easing %q", i, seg.Ease)
		}
		if seg.Duration <= 0 {
			return nil, fmt.Errorf("speed segment %d: duration must be positive, got %v", i, seg.Duration)
		}
		seq.Add(gween.New(float32(from), float32(seg.Speed), float32(seg.Duration), fn))
		from = seg.Speed
	}
	if loop {
		seq.SetLoop(-1)
	}
	return seq, nil
}
