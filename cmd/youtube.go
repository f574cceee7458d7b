package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidresolve/vidresolve/config"
	"github.com/vidresolve/vidresolve/key"
	"github.com/vidresolve/vidresolve/provider"
	"github.com/vidresolve/vidresolve/proxy"
	"github.com/vidresolve/vidresolve/source"
	"github.com/vidresolve/vidresolve/youtube"
)

func init() {
	rootCmd.AddCommand(youtubeCmd)
	youtubeCmd.Flags().BoolP("json", "j", false, "Print the streams as JSON")
	youtubeCmd.Flags().BoolP("audio", "a", false, "Show only audio streams")
}

// youtubeCmd lists the streams of a YouTube video with the configured strategy.
var youtubeCmd = &cobra.Command{
	Use:   "youtube <url>",
	Short: "List the streams of a YouTube video",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var r source.StreamResolver

		switch strategy := viper.GetString(key.YouTubeStrategy); strategy {
		case config.StrategyDirect:
			r = youtube.New(youtube.WithClient(httpClient()), youtube.WithAPI(viper.GetString(key.YouTubeAPI)))
		case config.StrategyNative:
			r = youtube.NewNative(httpClient())
		case config.StrategyProxy:
			r = source.StreamResolverFunc(proxy.New(viper.GetString(key.ProxyEndpoint), proxy.WithClient(httpClient())).Streams)
		default:
			handleErr(fmt.Errorf("%w: unknown %s %q", source.ErrConfigurationMissing, key.YouTubeStrategy, strategy))
		}

		streams, err := r.Resolve(cmd.Context(), args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("audio")) {
			streams = lo.Filter(streams, func(s *source.StreamInfo, _ int) bool {
				return s.AudioOnly
			})
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(cmd.OutOrStdout(), streams))
			return
		}

		printResult(cmd.OutOrStdout(), source.NewStreams(provider.YouTube.String(), streams))
	},
}
