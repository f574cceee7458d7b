package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidresolve/vidresolve/key"
	"github.com/vidresolve/vidresolve/provider"
	"github.com/vidresolve/vidresolve/proxy"
	"github.com/vidresolve/vidresolve/source"
)

func init() {
	rootCmd.AddCommand(proxyCmd)
	proxyCmd.Flags().BoolP("json", "j", false, "Print the reply as JSON")
}

// proxyCmd resolves a URL through the configured proxy endpoint.
var proxyCmd = &cobra.Command{
	Use:   "proxy <url>",
	Short: "Resolve a URL through the proxy endpoint",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := proxy.New(viper.GetString(key.ProxyEndpoint), proxy.WithClient(httpClient()))

		reply, err := client.Resolve(cmd.Context(), args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(cmd.OutOrStdout(), reply))
			return
		}

		result := source.NewStreams(provider.Detect(args[0]).String(), reply.Streams)
		result.Note = reply.Note
		printResult(cmd.OutOrStdout(), result)
	},
}
