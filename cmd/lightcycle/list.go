package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightcycle/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all AI programs",
	Long:  `Shows the AI programs you can ride against.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	programs := registry.List()

	if len(programs) == 0 {
		fmt.Println("No programs available.")
		return
	}

	fmt.Println("Available programs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, p := range programs {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxTitleLen = max(maxTitleLen, len(p.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Style", "Description")
	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----", "-----------")

	for _, p := range programs {
		fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, p.ID, maxTitleLen, p.Title, p.Strategy, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'lightcycle play --program <id>' to ride against one.")
}
