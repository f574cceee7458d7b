package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidresolve/vidresolve/key"
	"github.com/vidresolve/vidresolve/pixeldrain"
	"github.com/vidresolve/vidresolve/provider"
	"github.com/vidresolve/vidresolve/source"
)

func init() {
	rootCmd.AddCommand(pixeldrainCmd)
	pixeldrainCmd.Flags().BoolP("json", "j", false, "Print the file metadata as JSON")
}

// pixeldrainCmd prints file metadata. It never fails on metadata errors.
var pixeldrainCmd = &cobra.Command{
	Use:   "pixeldrain <url>",
	Short: "Show pixeldrain file metadata and its download link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r := pixeldrain.New(
			pixeldrain.WithClient(httpClient()),
			pixeldrain.WithAPI(viper.GetString(key.PixeldrainAPI)),
		)

		file, err := r.ResolveURL(cmd.Context(), args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(cmd.OutOrStdout(), file))
			return
		}

		printResult(cmd.OutOrStdout(), source.NewFile(provider.Pixeldrain.String(), file))
	},
}
