package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sidewalk/internal/assets"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the embedded images",
	Long:  `Shows every image built into the game with its frame size and frame count.`,
	Args:  cobra.NoArgs,
	Run:   runAssets,
}

func runAssets(_ *cobra.Command, _ []string) {
	specs := assets.Manifest()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range specs {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %-6s  %s\n", maxIDLen, "ID", "Frame", "Frames", "File")
	fmt.Printf("  %-*s  %-9s  %-6s  %s\n", maxIDLen, "--", "-----", "------", "----")

	for _, s := range specs {
		frame := fmt.Sprintf("%dx%d", s.FrameW, s.FrameH)
		fmt.Printf("  %-*s  %-9s  %-6d  %s\n", maxIDLen, s.ID, frame, s.Frames, s.File)
	}
}
