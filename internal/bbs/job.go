package bbs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// jobFile models the YAML job description consumed by the bbs command.
type jobFile struct {
	Policy   *BendPolicy  `yaml:"bend_policy,omitempty"`
	Elements []jobElement `yaml:"elements"`
}

type jobElement struct {
	Zone       string  `yaml:"zone"`
	Shape      string  `yaml:"shape"`
	DiameterMM float64 `yaml:"diameter_mm"`
	Count      int     `yaml:"count"`

	LengthMM    float64 `yaml:"length_mm,omitempty"`
	AnchorageMM float64 `yaml:"anchorage_mm,omitempty"`

	CrankDepthMM  float64 `yaml:"crank_depth_mm,omitempty"`
	CrankAngleDeg float64 `yaml:"crank_angle_deg,omitempty"`

	MemberWidthMM float64 `yaml:"member_width_mm,omitempty"`
	MemberDepthMM float64 `yaml:"member_depth_mm,omitempty"`
	CoverMM       float64 `yaml:"cover_mm,omitempty"`

	Remarks string `yaml:"remarks,omitempty"`
}

// LoadJob reads a reinforcement job file and returns its elements and
// bend policy (seismic default when the file names none).
func LoadJob(path string) ([]Element, BendPolicy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, BendPolicy{}, fmt.Errorf("read job file: %w", err)
	}

	var jf jobFile
	if err := yaml.Unmarshal(raw, &jf); err != nil {
		return nil, BendPolicy{}, fmt.Errorf("parse job file %s: %w", path, err)
	}
	if len(jf.Elements) == 0 {
		return nil, BendPolicy{}, fmt.Errorf("%w: job file %s lists no elements", ErrInvalidInput, path)
	}

	policy := SeismicHookPolicy()
	if jf.Policy != nil {
		policy = *jf.Policy
	}

	elements := make([]Element, 0, len(jf.Elements))
	for i, je := range jf.Elements {
		shape, err := ParseShape(je.Shape)
		if err != nil {
			return nil, BendPolicy{}, fmt.Errorf("job element %d: %w", i, err)
		}
		elements = append(elements, Element{
			Zone:          je.Zone,
			Shape:         shape,
			DiameterMM:    je.DiameterMM,
			Count:         je.Count,
			LengthMM:      je.LengthMM,
			AnchorageMM:   je.AnchorageMM,
			CrankDepthMM:  je.CrankDepthMM,
			CrankAngleDeg: je.CrankAngleDeg,
			MemberWidthMM: je.MemberWidthMM,
			MemberDepthMM: je.MemberDepthMM,
			CoverMM:       je.CoverMM,
			Remarks:       je.Remarks,
		})
	}
	return elements, policy, nil
}
