package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidresolve/vidresolve/extract"
	"github.com/vidresolve/vidresolve/filesystem"
	"github.com/vidresolve/vidresolve/key"
)

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringSliceP("host", "H", nil, "Allowed hosts, overriding "+key.ExtractAllowedHosts)
	extractCmd.SetOut(os.Stdout)
}

// extractCmd scans a JSON document for allow-listed stream URLs.
var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Harvest stream URLs from a JSON document (stdin when no file or \"-\")",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}

		data, err := filesystem.ReadInput(path, cmd.InOrStdin())
		handleErr(err)

		hosts := lo.Must(cmd.Flags().GetStringSlice("host"))
		if len(hosts) == 0 {
			hosts = viper.GetStringSlice(key.ExtractAllowedHosts)
		}

		for _, s := range extract.NewScraper(hosts...).Extract(json.RawMessage(data)) {
			cmd.Println(s.URL)
		}
	},
}
