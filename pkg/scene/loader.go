package scene

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yunhao-qian/light2d/pkg/core"
	"github.com/yunhao-qian/light2d/pkg/entity"
	"github.com/yunhao-qian/light2d/pkg/geometry"
	"github.com/yunhao-qian/light2d/pkg/material"
)

// Document is the on-disk YAML scene description.
type Document struct {
	Region     RegionDoc     `yaml:"region"`
	Circles    []CircleDoc   `yaml:"circles"`
	Integrator IntegratorDoc `yaml:"integrator"`
}

// RegionDoc is the YAML encoding of a core.Region.
type RegionDoc struct {
	Min [2]float64 `yaml:"min"`
	Max [2]float64 `yaml:"max"`
}

// CircleDoc is the YAML encoding of one SimpleEntity over a Circle shape.
type CircleDoc struct {
	Center   [2]float64  `yaml:"center"`
	Radius   float64     `yaml:"radius"`
	Material MaterialDoc `yaml:"material"`
}

// MaterialDoc is the YAML encoding of a material; only the fields
// relevant to Type are read, the rest are ignored. Missing fields are
// not reported and read as zero.
type MaterialDoc struct {
	Type   string     `yaml:"type"` // "constant_light", "lambertian", "mirror", or "metal"
	Li     [3]float64 `yaml:"li"`
	Albedo [3]float64 `yaml:"albedo"`
	Fuzz   float64    `yaml:"fuzz"`
}

// IntegratorDoc is the YAML encoding of the PathTracer's parameters.
type IntegratorDoc struct {
	NSamples         int     `yaml:"n_samples"`
	NSteps           int     `yaml:"n_steps"`
	RussianRouletteQ float64 `yaml:"russian_roulette_q"`
}

// LoadError reports a problem in a scene document.
type LoadError struct {
	Reason string
}

func (e *LoadError) Error() string {
	return "scene: " + e.Reason
}

// Load parses a YAML scene document into a Scene and the integrator
// parameters it names.
func Load(r io.Reader) (*Scene, IntegratorDoc, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, IntegratorDoc{}, fmt.Errorf("scene: decoding document: %w", err)
	}

	region := core.NewRegion(
		core.NewVec2(doc.Region.Min[0], doc.Region.Min[1]),
		core.NewVec2(doc.Region.Max[0], doc.Region.Max[1]),
	)

	entities := make([]*entity.SimpleEntity, len(doc.Circles))
	for i, c := range doc.Circles {
		mat, err := buildMaterial(c.Material)
		if err != nil {
			return nil, IntegratorDoc{}, err
		}
		shape := geometry.NewCircle(core.NewVec2(c.Center[0], c.Center[1]), c.Radius)
		entities[i] = entity.NewSimpleEntity(shape, mat)
	}

	return NewScene(region, entities...), doc.Integrator, nil
}

func buildMaterial(doc MaterialDoc) (material.Material, error) {
	switch doc.Type {
	case "constant_light":
		return material.NewConstantLight(core.NewSpectrum(doc.Li[0], doc.Li[1], doc.Li[2])), nil
	case "lambertian":
		return material.NewLambertian(core.NewSpectrum(doc.Albedo[0], doc.Albedo[1], doc.Albedo[2])), nil
	case "mirror":
		return material.NewMirror(core.NewSpectrum(doc.Albedo[0], doc.Albedo[1], doc.Albedo[2])), nil
	case "metal":
		return material.NewMetal(core.NewSpectrum(doc.Albedo[0], doc.Albedo[1], doc.Albedo[2]), doc.Fuzz), nil
	default:
		return nil, &LoadError{Reason: fmt.Sprintf("unknown material type %q", doc.Type)}
	}
}
