package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulties",
	Long:  `Shows the difficulties in the catalog, or the ones --config defines in their place.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	_, cat, err := loadSetup()
	if err != nil {
		return err
	}

	fmt.Println("Difficulties:")
	fmt.Println()

	maxKeyLen := 3 // "Key" header
	for _, info := range cat.List() {
		if len(info.Key) > maxKeyLen {
			maxKeyLen = len(info.Key)
		}
	}

	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxKeyLen, "Key", "Name", "Items", "Look")
	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxKeyLen, "---", "----", "-----", "----")

	for i := 0; i < cat.Len(); i++ {
		p := cat.At(i)
		look := "distinct"
		if p.VisuallyIndistinguishable {
			look = "same"
		}
		fmt.Printf("  %-*s  %-10s  %-6d  %s\n", maxKeyLen, p.Key, p.Name, p.RoundSize, look)
	}

	fmt.Println()
	fmt.Println("Run 'compost play <key>' to play.")
	return nil
}
