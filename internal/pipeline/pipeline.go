package pipeline

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AnyUserName/exticons/internal/manifest"
	"github.com/AnyUserName/exticons/internal/preview"
	"github.com/AnyUserName/exticons/internal/profile"
)

// Config holds all parameters for a generate run.
type Config struct {
	Root       string // directory icon targets are resolved against
	Set        profile.Set
	PreviewLen int // base64 preview length; 0 = preview.DefaultLen, <0 = full
	Verbose    bool
	Out        io.Writer // report stream
	Log        io.Writer // verbose diagnostics
}

// Pipeline generates the icons of one set, in order.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.PreviewLen == 0 {
		cfg.PreviewLen = preview.DefaultLen
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Log == nil {
		cfg.Log = os.Stderr
	}
	return &Pipeline{cfg: cfg}
}

// Run writes every icon of the set and returns a manifest describing them.
// The first write failure stops the run; icons already written stay on disk.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	p.logf("set %s: %d icons into %s", p.cfg.Set.Name, len(p.cfg.Set.Specs), p.cfg.Root)

	p.printInstructions()

	m := manifest.New(p.cfg.Set.Name, p.cfg.Root)
	for _, spec := range p.cfg.Set.Specs {
		r := generate(spec)
		if !r.icon.Fits {
			p.logf("warn: label %q likely overflows %dpx icon %s", spec.Label, spec.Size, r.icon.Path)
		}

		fmt.Fprintf(p.cfg.Out, "\n%s:\n", r.icon.Path)
		fmt.Fprintln(p.cfg.Out, preview.DataURL(r.doc, p.previewLen()))

		if err := p.write(r); err != nil {
			return nil, err
		}
		fmt.Fprintf(p.cfg.Out, "Saved: %s\n", r.icon.Path)
		p.logf("wrote %s (%d bytes, hash %s)", r.icon.Path, r.icon.Bytes, r.icon.Hash)

		m.Icons[spec.Target] = r.icon
	}

	fmt.Fprintln(p.cfg.Out)
	fmt.Fprintln(p.cfg.Out, "Note: Chrome extensions can use SVG icons directly in manifest v3!")
	fmt.Fprintln(p.cfg.Out, "You can update manifest.json to use .svg files instead of .png")

	m.ComputeStats()
	return m, nil
}

func (p *Pipeline) printInstructions() {
	sizes := make([]string, 0, len(p.cfg.Set.Specs))
	for _, s := range p.cfg.Set.Sizes() {
		sizes = append(sizes, strconv.Itoa(s))
	}

	w := p.cfg.Out
	fmt.Fprintln(w, "SVG icon templates created. To convert to PNG:")
	fmt.Fprintln(w, "1. Use an online SVG to PNG converter")
	fmt.Fprintln(w, "2. Or install ImageMagick/Inkscape and run:")
	fmt.Fprintf(w, "   for i in %s; do\n", strings.Join(sizes, " "))
	fmt.Fprintln(w, "     convert icon${i}.svg extension/icon${i}.png")
	fmt.Fprintln(w, "   done")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Or use this data URL in Chrome (saves as icon*.svg):")
}

func (p *Pipeline) previewLen() int {
	if p.cfg.PreviewLen < 0 {
		return 0
	}
	return p.cfg.PreviewLen
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(p.cfg.Log, "[exticons] "+format+"\n", args...)
	}
}
