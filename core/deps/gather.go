package deps

import (
	"errors"
	"strings"

	"q3-demo-checker/core/archive"
	"q3-demo-checker/core/bsp"
)

// ErrNoBSP is returned when a map archive holds no maps/*.bsp.
var ErrNoBSP = errors.New("no BSP found in map archive")

const (
	bspPattern    = "maps/**/*.bsp"
	shaderPattern = "scripts/**/*.shader"
)

// entityKeys name external assets in the entity lump.
var entityKeys = []string{"model", "model2", "noise"}

// Dependencies is what a map needs, split by where the reference was found.
type Dependencies struct {
	// BSP is the entry the texture and entity references were read from.
	BSP string `json:"bsp" yaml:"bsp"`
	// Textures come from the BSP texture lump.
	Textures []string `json:"textures" yaml:"textures"`
	// Entities come from model/model2/noise entity keys.
	Entities []string `json:"entities" yaml:"entities"`
	// ShaderImages come from the map's shader scripts.
	ShaderImages []string `json:"shader_images" yaml:"shader_images"`
	// Ignored lists the references dropped by the rules.
	Ignored []string `json:"ignored" yaml:"ignored"`
	// Required is the union of all kept references.
	Required archive.Inventory `json:"-" yaml:"-"`
}

// Gather reads the required assets of a map archive.
func Gather(a *archive.Archive, rules Rules) (*Dependencies, error) {
	bsps, err := a.Glob(bspPattern)
	if err != nil {
		return nil, err
	}
	if len(bsps) == 0 {
		return nil, ErrNoBSP
	}

	data, err := a.ReadFile(bsps[0])
	if err != nil {
		return nil, err
	}
	f, err := bsp.Parse(data)
	if err != nil {
		return nil, &archive.ReadError{Archive: a.Name(), Entry: bsps[0], Err: err}
	}

	textures, err := f.Textures()
	if err != nil {
		return nil, &archive.ReadError{Archive: a.Name(), Entry: bsps[0], Err: err}
	}
	ents, err := f.Entities()
	if err != nil {
		return nil, &archive.ReadError{Archive: a.Name(), Entry: bsps[0], Err: err}
	}

	var models []string
	for _, v := range bsp.EntityValues(ents, entityKeys...) {
		// "*N" are inline brush models of the BSP itself.
		if strings.HasPrefix(v, "*") {
			continue
		}
		models = append(models, v)
	}

	var images []string
	scripts, err := a.Glob(shaderPattern)
	if err != nil {
		return nil, err
	}
	for _, script := range scripts {
		text, err := a.ReadFile(script)
		if err != nil {
			return nil, err
		}
		images = append(images, ShaderImages(string(text))...)
	}

	d := &Dependencies{
		BSP:      bsps[0],
		Required: make(archive.Inventory),
	}
	ignored := make(archive.Inventory)
	d.Textures = d.keep(textures, rules, ignored)
	d.Entities = d.keep(models, rules, ignored)
	d.ShaderImages = d.keep(images, rules, ignored)
	d.Ignored = ignored.Sorted()
	return d, nil
}

// keep adds the non-ignored refs to Required and returns them canonical, sorted and
// unique.
func (d *Dependencies) keep(refs []string, rules Rules, ignored archive.Inventory) []string {
	kept := make(archive.Inventory, len(refs))
	for _, ref := range refs {
		if rules.Ignored(ref) {
			ignored.Add(ref)
			continue
		}
		if kept.Add(ref) {
			d.Required.Add(ref)
		}
	}
	return kept.Sorted()
}
