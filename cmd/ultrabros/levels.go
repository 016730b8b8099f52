package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ultrabros/internal/stage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Validate and list platform layouts",
	Long: `Loads the platform layouts (built in, or from --levels), validates
them and prints one line per world.

Examples:
  ultrabros levels
  ultrabros levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	lay, err := stage.LoadLayouts(flagLevels)
	if err != nil {
		return err
	}

	fmt.Println("Layouts loaded from:")
	for _, src := range lay.Sources {
		fmt.Printf("  %s\n", src)
	}
	fmt.Println()

	// Calculate column widths
	maxThemeLen := 5 // "Theme" header
	for _, w := range lay.Worlds {
		if len(w.Theme) > maxThemeLen {
			maxThemeLen = len(w.Theme)
		}
	}
	if len(lay.Arena.Theme) > maxThemeLen {
		maxThemeLen = len(lay.Arena.Theme)
	}

	// Print header
	fmt.Printf("  %-5s  %-*s  %-9s  %s\n", "World", maxThemeLen, "Theme", "Platforms", "Sky")
	fmt.Printf("  %-5s  %-*s  %-9s  %s\n", "-----", maxThemeLen, "-----", "---------", "---")

	for _, w := range lay.Worlds {
		fmt.Printf("  %-5d  %-*s  %-9d  %s\n", w.Number, maxThemeLen, w.Theme, len(w.Platforms), w.Sky.Hex())
	}
	fmt.Printf("  %-5s  %-*s  %-9d  %s\n", "boss", maxThemeLen, lay.Arena.Theme, len(lay.Arena.Platforms), lay.Arena.Sky.Hex())

	fmt.Println()
	fmt.Printf("%d worlds, %d levels each, all valid.\n", stage.WorldCount, stage.LevelsPerWorld)
	return nil
}
