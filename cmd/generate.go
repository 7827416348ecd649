package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/AnyUserName/exticons/internal/manifest"
	"github.com/AnyUserName/exticons/internal/pipeline"
	"github.com/AnyUserName/exticons/internal/preview"
	"github.com/AnyUserName/exticons/internal/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	genRoot       string
	genSet        string
	genPreviewLen int
	genManifest   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the SVG icons of an icon set",
	Long: `Renders every icon of the selected set and writes it next to its PNG
target, e.g. extension/icon48.png becomes extension/icon48.svg under --root.
Existing files are overwritten. The output directory must already exist.

Each icon is previewed as a truncated base64 data URL.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	bindGenerateFlags(generateCmd.Flags())
	rootCmd.AddCommand(generateCmd)
}

// bindGenerateFlags registers the generate flags on fs. The root command
// shares them so a bare invocation behaves like generate.
func bindGenerateFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&genRoot, "root", "r", ".", "directory icon targets are resolved against")
	fs.StringVarP(&genSet, "set", "s", profile.DefaultSet, "icon set to generate")
	fs.IntVar(&genPreviewLen, "preview-len", preview.DefaultLen, "base64 preview length (<= 0 = full)")
	fs.BoolVar(&genManifest, "manifest", false, "write "+manifest.FileName+" into --root")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	if !profile.Known(genSet) {
		logVerbose("unknown set %q, using %s specs", genSet, profile.DefaultSet)
	}
	set := profile.Get(genSet)

	logVerbose("root:    %s", genRoot)
	logVerbose("set:     %s (sizes=%v)", set.Name, set.Sizes())

	previewLen := genPreviewLen
	if previewLen <= 0 {
		previewLen = -1
	}
	p := pipeline.New(pipeline.Config{
		Root:       genRoot,
		Set:        set,
		PreviewLen: previewLen,
		Verbose:    verbose,
	})

	m, err := p.Run()
	if err != nil {
		return err
	}

	if genManifest {
		path := filepath.Join(genRoot, manifest.FileName)
		if err := manifest.WriteJSON(m, path); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		logVerbose("manifest: %s (%d icons)", path, m.Stats.TotalIcons)
	}
	return nil
}
