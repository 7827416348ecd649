package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/exticons/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <root_or_manifest>",
	Short: "Display the icons recorded in a manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for manifest inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, manifest.FileName)
	}

	m, err := manifest.ReadJSON(path)
	if err != nil {
		return err
	}

	return printStats(m)
}

func printStats(m *manifest.Manifest) error {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Set:              %s\n", m.Set)
	fmt.Printf("  Icons:            %d (%s)\n", m.Stats.TotalIcons, formatBytes(m.Stats.TotalBytes))
	fmt.Println()

	fmt.Println("  Icons:")
	var warnings []string
	for _, target := range m.Targets() {
		ic := m.Icons[target]
		fmt.Printf("    %4dpx  %-6s %-28s %8s  %s\n",
			ic.Size, ic.Label, ic.Path, formatBytes(ic.Bytes), ic.Hash)
		if !ic.Fits {
			warnings = append(warnings, fmt.Sprintf("label %q may overflow %s", ic.Label, ic.Path))
		}
	}
	fmt.Println()

	snippet, err := m.IconsSnippet()
	if err != nil {
		return fmt.Errorf("render icons snippet: %w", err)
	}
	fmt.Println("  manifest.json:")
	fmt.Println(string(snippet))

	if len(warnings) > 0 {
		fmt.Println()
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
	}
	fmt.Println()
	return nil
}
