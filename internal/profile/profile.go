package profile

import "sort"

// Spec describes one icon to generate.
type Spec struct {
	Target string // raster path the icon stands in for, e.g. extension/icon48.png
	Size   int    // width and height in pixels
	Label  string // text drawn on the icon
}

// Set is an ordered list of icon specs generated together.
type Set struct {
	Name  string
	Specs []Spec
}

// DefaultSet is used when no set is requested.
const DefaultSet = "chrome-extension"

// Built-in sets.
var sets = map[string]Set{
	"chrome-extension": {
		Name: "chrome-extension",
		Specs: []Spec{
			{Target: "extension/icon128.png", Size: 128, Label: "SAS"},
			{Target: "extension/icon48.png", Size: 48, Label: "SAS"},
			{Target: "extension/icon16.png", Size: 16, Label: "S"},
		},
	},
	"mv3-full": {
		Name: "mv3-full",
		Specs: []Spec{
			{Target: "extension/icon128.png", Size: 128, Label: "SAS"},
			{Target: "extension/icon48.png", Size: 48, Label: "SAS"},
			{Target: "extension/icon32.png", Size: 32, Label: "SAS"},
			{Target: "extension/icon16.png", Size: 16, Label: "S"},
		},
	},
}

// Get returns a set by name. Falls back to chrome-extension if unknown.
func Get(name string) Set {
	if s, ok := sets[name]; ok {
		return s.clone()
	}
	s := sets[DefaultSet].clone()
	s.Name = name // preserve requested name
	return s
}

// Known reports whether name is a built-in set.
func Known(name string) bool {
	_, ok := sets[name]
	return ok
}

// Names returns the built-in set names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sets))
	for n := range sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sizes returns the pixel sizes of the set in order.
func (s Set) Sizes() []int {
	sizes := make([]int, len(s.Specs))
	for i, sp := range s.Specs {
		sizes[i] = sp.Size
	}
	return sizes
}

func (s Set) clone() Set {
	specs := make([]Spec, len(s.Specs))
	copy(specs, s.Specs)
	s.Specs = specs
	return s
}
