package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidresolve/vidresolve/provider"
	"github.com/vidresolve/vidresolve/style"
)

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().BoolP("plain", "p", false, "Print only the provider name")
	detectCmd.SetOut(os.Stdout)
}

// detectCmd classifies URLs without touching the network.
var detectCmd = &cobra.Command{
	Use:   "detect <url>...",
	Short: "Classify URLs by hosting provider",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plain := lo.Must(cmd.Flags().GetBool("plain"))

		for _, raw := range args {
			p := provider.Detect(raw)
			if plain {
				cmd.Println(p)
				continue
			}

			cmd.Printf("%s %s\n", style.ProviderTag(p.String()), raw)
		}
	},
}
