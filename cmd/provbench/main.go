// provbench loads a full province map through the library and reports
// how long each stage takes: a quick end-to-end smoke test against real
// game data.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zijistark/libck2/defaultmap"
	"github.com/zijistark/libck2/definitions"
	"github.com/zijistark/libck2/provedge"
	"github.com/zijistark/libck2/provmap"
	"github.com/zijistark/libck2/vfs"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "provbench <game-dir>",
	Short: "Benchmark the province-map pipeline against a game directory",
	Long: `provbench runs the full load pipeline (default.map, definition.csv,
provinces.bmp, then border tracing) and prints per-stage timings plus
edge statistics. Mod directories may be layered on top of the base game
with --mod (repeatable, later flags take priority).`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringArray("mod", nil, "Mod directory to overlay (repeatable)")
}

func run(cmd *cobra.Command, args []string) error {
	mods, _ := cmd.Flags().GetStringArray("mod")

	fs, err := vfs.New(args[0])
	if err != nil {
		return err
	}
	for _, m := range mods {
		if err := fs.PushModPath(m); err != nil {
			return err
		}
	}

	stage := func(name string) func() {
		start := time.Now()

		return func() { fmt.Printf("%-12s %v\n", name, time.Since(start)) }
	}

	done := stage("default.map")
	dmPath, err := fs.Path("map/default.map")
	if err != nil {
		return err
	}
	dm, err := defaultmap.ParseFile(dmPath)
	if err != nil {
		return err
	}
	done()

	done = stage("definitions")
	defPath, err := fs.Path(dm.MapPath(dm.Definitions))
	if err != nil {
		return err
	}
	tbl, err := definitions.ParseFile(defPath)
	if err != nil {
		return err
	}
	done()

	done = stage("provinces")
	bmpPath, err := fs.Path(dm.MapPath(dm.Provinces))
	if err != nil {
		return err
	}
	grid, err := provmap.LoadFile(bmpPath, tbl.ColorIndex())
	if err != nil {
		return err
	}
	done()

	done = stage("trace")
	set, err := provedge.Trace(grid)
	if err != nil {
		return err
	}
	done()

	st := set.Stats()
	fmt.Printf("\nmap          %d×%d, %d provinces defined\n", grid.Width(), grid.Height(), tbl.Len())
	fmt.Printf("segments     %d (unit length %d, %d units saved by merging)\n",
		st.Segments, st.UnitLength, st.SavedUnits)
	fmt.Printf("edges        %d\n", set.Len())

	return nil
}
