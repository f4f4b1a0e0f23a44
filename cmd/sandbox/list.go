package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"falling-sand/internal/config"
	"falling-sand/internal/core"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered simulations and built-in scenes",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	fmt.Println("Simulations:")
	for _, name := range core.Names() {
		marker := " "
		if name == settings.Sim {
			marker = "*"
		}
		fmt.Printf("  %s %s\n", marker, name)
	}

	fmt.Println()
	fmt.Println("Scenes:")
	for _, name := range config.BuiltinScenes() {
		fmt.Printf("    %s\n", name)
	}
	fmt.Println()
	fmt.Println("Run 'sandbox run --scene <name>' to simulate a scene.")
}
