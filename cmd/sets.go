package cmd

import (
	"fmt"

	"github.com/AnyUserName/exticons/internal/profile"
	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List built-in icon sets",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		for _, name := range profile.Names() {
			s := profile.Get(name)
			fmt.Printf("  %-18s sizes=%v\n", s.Name, s.Sizes())
			for _, sp := range s.Specs {
				fmt.Printf("    %-24s %4dpx  %s\n", sp.Target, sp.Size, sp.Label)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(setsCmd)
}
