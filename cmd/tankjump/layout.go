package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tankjump/internal/config"
	"github.com/vovakirdan/tankjump/internal/level"
)

var flagCheck string

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the classic level or check a level file",
	Long: `Print the classic level as YAML, in the format accepted by --level.
The layout is computed from the layout section of the config.

With --check, validate a level file instead.

Examples:
  tankjump layout > classic.yaml
  tankjump layout --check ./levels/tiny.yaml`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this level file")
}

func runLayout(cmd *cobra.Command, args []string) error {
	if flagCheck != "" {
		lvl, err := level.Load(flagCheck)
		if err != nil {
			return err
		}
		fmt.Printf("ok: %s (%d entities)\n", lvl.Name, len(lvl.Entities))
		return nil
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	data, err := level.Marshal(level.Classic(cfg))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
