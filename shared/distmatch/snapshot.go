package distmatch

import "fmt"

// Snapshot is a read-only view of a node's last tick for diagnostics.
type Snapshot struct {
	Node      string
	Clip      string
	InputTime float64
	Time      float64
	Matched   bool
}

func (s Snapshot) String() string {
	clip := s.Clip
	if clip == "" {
		clip = "None"
	}
	return fmt.Sprintf("%s('%s' InputTime: %.3f, Time: %.3f)", s.Node, clip, s.InputTime, s.Time)
}
