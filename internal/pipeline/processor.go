package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/exticons/internal/hasher"
	"github.com/AnyUserName/exticons/internal/icon"
	"github.com/AnyUserName/exticons/internal/manifest"
	"github.com/AnyUserName/exticons/internal/profile"
	"github.com/AnyUserName/exticons/internal/textfit"
)

// result holds one generated icon before it is written.
type result struct {
	icon manifest.Icon
	doc  string
}

// generate renders spec to SVG. It touches no files.
func generate(spec profile.Spec) result {
	doc := icon.SVG(spec.Size, spec.Label)
	return result{
		doc: doc,
		icon: manifest.Icon{
			Path:  icon.SVGPath(spec.Target),
			Size:  spec.Size,
			Label: spec.Label,
			Bytes: int64(len(doc)),
			Hash:  hasher.ContentHash([]byte(doc)),
			Fits:  textfit.Fits(spec.Label, spec.Size, icon.FontScale),
		},
	}
}

// write stores the document under the configured root, replacing any
// existing file. Missing directories are an error.
func (p *Pipeline) write(r result) error {
	outPath := filepath.Join(p.cfg.Root, filepath.FromSlash(r.icon.Path))
	if err := os.WriteFile(outPath, []byte(r.doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.icon.Path, err)
	}
	return nil
}
