// ultrabros is a side-scrolling platformer for the terminal, a desktop
// window or an SSH server.
//
// Usage:
//
//	ultrabros                - Launcher menu (play, high scores, quit)
//	ultrabros play           - Play in the current terminal
//	ultrabros window         - Play in a desktop window
//	ultrabros serve          - Start SSH server for remote play
//	ultrabros scores         - Show the run history
//	ultrabros levels         - Validate and list platform layouts
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the tuning file
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.ultrabros/runs.db)
//	--config <path>       - Tuning YAML (default: search ~/.ultrabros, ./configs)
//	--levels <dir>        - Directory of layout YAML files (default: built in)
//	--difficulty <name>   - easy, normal or hard
//	--watch               - Reload tuning and layouts when the files change
//	--warp                - Enable the quick-load key (N)
//	--log-file <path>     - Log file for the terminal front end
//	--debug               - Log every simulation event
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ultrabros/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagWatch      bool
	flagWarp       bool
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ultrabros",
	Short: "Ultra Bros - a retro platformer for your terminal",
	Long: `Ultra Bros is a side-scrolling platformer: five worlds of three levels
and a boss each, played in the terminal, a desktop window or over SSH.

Available commands:
  play     - Play in the current terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the run history
  levels   - Validate and list platform layouts

Run without a command to open the launcher menu.

Examples:
  ultrabros
  ultrabros play --difficulty easy
  ultrabros window --watch
  ultrabros serve --ssh :2222
  ultrabros scores --recent`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.SilenceUsage = true

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use the tuning file)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	pf.StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")
	pf.StringVar(&flagLevels, "levels", "", "Directory of platform layout YAML files")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.BoolVar(&flagWatch, "watch", false, "Reload tuning and layouts when their files change")
	pf.BoolVar(&flagWarp, "warp", false, "Enable the quick-load key (N)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal front end)")
	pf.BoolVar(&flagDebug, "debug", false, "Log every simulation event")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
