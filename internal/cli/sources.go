package cli

import (
	"fmt"
	"strings"

	"github.com/askengine/askengine/internal/vocab"
	"github.com/spf13/cobra"
)

// sourcesCmd lists the supported sports vocabulary
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List supported sports, leagues, and stats",
	Run:   runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) {
	v := vocab.Default()

	fmt.Println("Supported sports:")
	fmt.Println()
	for _, sport := range vocab.SportOrder {
		fmt.Printf("  %s\n", sport)
		fmt.Printf("    leagues: %s\n", strings.Join(v.Leagues(sport), ", "))
		fmt.Printf("    stats:   %s\n", strings.Join(v.Stats(sport), ", "))
	}
}
