package clips

import (
	"embed"
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/stride/shared/animcurve"
	"github.com/automoto/stride/shared/distmatch"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var tables embed.FS

// DefaultTable is the embedded clip table used when no path is given.
const DefaultTable = "data/locomotion.yaml"

type tableFile struct {
	Clips []clipDef `yaml:"clips"`
}

type clipDef struct {
	Name      string              `yaml:"name"`
	Length    float64             `yaml:"length"`
	RateScale float64             `yaml:"rateScale"`
	Skeleton  string              `yaml:"skeleton"`
	Curves    map[string]curveDef `yaml:"curves"`
}

// curveDef is either an explicit key list or an easing description.
type curveDef struct {
	Keys     []keyDef `yaml:"keys"`
	Ease     string   `yaml:"ease"`
	Distance float64  `yaml:"distance"`
	Samples  int      `yaml:"samples"`
}

type keyDef struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}

// Load parses a YAML clip table from fsys. It takes an fs.FS so callers can
// pass the embedded tables or os.DirFS.
func Load(fsys fs.FS, path string) (*Library, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read clip table %s: %w", path, err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse clip table %s: %w", path, err)
	}
	log.Printf("[clips] loaded %d clips from %s", lib.Len(), path)
	return lib, nil
}

// LoadDefault loads the embedded DefaultTable.
func LoadDefault() (*Library, error) {
	return Load(tables, DefaultTable)
}

// Parse builds a Library from YAML table data.
func Parse(data []byte) (*Library, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, err
	}

	lib := NewLibrary()
	for i, cd := range tf.Clips {
		curves := make(map[string]animcurve.Curve, len(cd.Curves))
		for name, def := range cd.Curves {
			c, err := def.build(cd.Length)
			if err != nil {
				return nil, fmt.Errorf("clip %d (%s) curve %q: %w", i, cd.Name, name, err)
			}
			curves[name] = c
		}
		err := lib.Add(distmatch.Clip{
			Name:      cd.Name,
			Length:    cd.Length,
			RateScale: cd.RateScale,
			Skeleton:  cd.Skeleton,
		}, curves)
		if err != nil {
			return nil, fmt.Errorf("clip %d: %w", i, err)
		}
	}
	return lib, nil
}

func (d curveDef) build(clipLength float64) (animcurve.Curve, error) {
	if d.Ease != "" {
		if len(d.Keys) > 0 {
			return animcurve.Curve{}, fmt.Errorf("both keys and ease given")
		}
		return EaseCurve(d.Ease, clipLength, d.Distance, d.Samples)
	}
	keys := make([]animcurve.Keyframe, len(d.Keys))
	for i, k := range d.Keys {
		keys[i] = animcurve.Keyframe{Time: k.Time, Value: k.Value}
	}
	return animcurve.NewCurve(keys...)
}
