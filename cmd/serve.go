package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidresolve/vidresolve/auth"
	"github.com/vidresolve/vidresolve/extract"
	"github.com/vidresolve/vidresolve/icon"
	"github.com/vidresolve/vidresolve/key"
	"github.com/vidresolve/vidresolve/log"
	"github.com/vidresolve/vidresolve/server"
	"github.com/vidresolve/vidresolve/style"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address")
	_ = viper.BindPFlag(key.ServerAddr, serveCmd.Flags().Lookup("addr"))
}

// serveCmd runs the server-mediated resolution endpoint.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the proxy resolution endpoint",
	Long: `Run the proxy resolution endpoint.

POST {"url": "..."} to the server root. YouTube links need an API key,
taken from ` + key.ServerYouTubeAPIKey + ` or from the system keyring ("vidresolve key set").`,
	Run: func(cmd *cobra.Command, args []string) {
		log.ToStderr(nil)

		apiKey := auth.ResolveAPIKey(viper.GetString(key.ServerYouTubeAPIKey))
		if apiKey == "" {
			cmd.PrintErrf("%s %s\n", icon.Get(icon.Warn), style.Faint("no API key configured, YouTube requests will fail"))
		}

		handler := server.New(server.Options{
			APIKey:    apiKey,
			APIURL:    viper.GetString(key.ServerYouTubeAPIURL),
			Client:    httpClient(),
			Extractor: extract.NewScraper(viper.GetStringSlice(key.ExtractAllowedHosts)...),
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		handleErr(server.ListenAndServe(ctx, viper.GetString(key.ServerAddr), handler))
	},
}
