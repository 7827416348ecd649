package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/exticons/internal/hasher"
	"github.com/AnyUserName/exticons/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate an exticons manifest and check the icons on disk",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	m, err := manifest.ReadJSON(manifestPath)
	if err != nil {
		return err
	}

	// Icon paths are relative to the directory holding the manifest.
	baseDir := filepath.Dir(manifestPath)
	logVerbose("validating %d icons under %s", len(m.Icons), baseDir)
	errors := validateManifest(m, baseDir)

	if len(errors) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d icons, %s — all files present and unchanged\n",
			m.Stats.TotalIcons, formatBytes(m.Stats.TotalBytes))
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	seenPaths := map[string]bool{}
	for _, target := range m.Targets() {
		ic := m.Icons[target]

		if ic.Size <= 0 {
			errs = append(errs, fmt.Sprintf("icon %q: invalid size %d", target, ic.Size))
		}
		if ic.Hash == "" {
			errs = append(errs, fmt.Sprintf("icon %q: missing hash", target))
		}
		if ic.Path == "" {
			errs = append(errs, fmt.Sprintf("icon %q: missing path", target))
			continue
		}

		if seenPaths[ic.Path] {
			errs = append(errs, fmt.Sprintf("icon %q: duplicate path %q", target, ic.Path))
		}
		seenPaths[ic.Path] = true

		fullPath := filepath.Join(baseDir, filepath.FromSlash(ic.Path))
		info, err := os.Stat(fullPath)
		if err != nil {
			errs = append(errs, fmt.Sprintf("icon %q: file not found: %s", target, ic.Path))
			continue
		}
		if info.Size() != ic.Bytes {
			errs = append(errs, fmt.Sprintf("icon %q: size mismatch: manifest=%d, disk=%d",
				target, ic.Bytes, info.Size()))
		}
		sum, err := hasher.FileHash(fullPath)
		if err != nil {
			errs = append(errs, fmt.Sprintf("icon %q: %v", target, err))
		} else if ic.Hash != "" && sum != ic.Hash {
			errs = append(errs, fmt.Sprintf("icon %q: hash mismatch: manifest=%s, disk=%s",
				target, ic.Hash, sum))
		}
	}

	var totalBytes int64
	for _, ic := range m.Icons {
		totalBytes += ic.Bytes
	}
	if m.Stats.TotalIcons != len(m.Icons) {
		errs = append(errs, fmt.Sprintf("stats.total_icons mismatch: %d != %d", m.Stats.TotalIcons, len(m.Icons)))
	}
	if m.Stats.TotalBytes != totalBytes {
		errs = append(errs, fmt.Sprintf("stats.total_bytes mismatch: %d != %d", m.Stats.TotalBytes, totalBytes))
	}

	return errs
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
