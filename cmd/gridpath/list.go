package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/scenario"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all built-in scenarios",
	Long:  `Shows every scenario registered in the scenario catalog.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	all := scenario.List()

	if len(all) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range all {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxNameLen, "Name", "Size", "Conn", "Title")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxNameLen, "----", "----", "----", "-----")

	for _, s := range all {
		size := fmt.Sprintf("%dx%d", s.Width, s.Height)
		fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxNameLen, s.Name, size, s.Conn, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'gridpath run <name>' to search a scenario.")
}
