// Package cmd implements the command-line interface for vidresolve.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidresolve/vidresolve/color"
	"github.com/vidresolve/vidresolve/config"
	"github.com/vidresolve/vidresolve/constant"
	"github.com/vidresolve/vidresolve/icon"
	"github.com/vidresolve/vidresolve/key"
	"github.com/vidresolve/vidresolve/log"
	"github.com/vidresolve/vidresolve/resolve"
	"github.com/vidresolve/vidresolve/source"
	"github.com/vidresolve/vidresolve/style"
	"github.com/vidresolve/vidresolve/tui"
	"github.com/vidresolve/vidresolve/util"
	"github.com/vidresolve/vidresolve/version"
	"github.com/vidresolve/vidresolve/where"
	"golang.org/x/term"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("json", "j", false, "Print the result as JSON")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., emoji, plain, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("strategy", "S", "", "How YouTube links are resolved (direct, proxy, native)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("strategy", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.Strategies, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.YouTubeStrategy, rootCmd.PersistentFlags().Lookup("strategy")))

	rootCmd.PersistentFlags().StringP("proxy", "P", "", "Proxy endpoint URL for the server-mediated path")
	lo.Must0(viper.BindPFlag(key.ProxyEndpoint, rootCmd.PersistentFlags().Lookup("proxy")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.OutOrStdout())
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd resolves the URL argument, or starts the interactive prompt without one.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [url]",
	Short: "Resolve video links into directly fetchable streams",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Resolve video links into directly fetchable streams"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			interactive(cmd)
			return
		}

		result, err := newResolver().Resolve(cmd.Context(), args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(cmd.OutOrStdout(), result))
			return
		}

		printResult(cmd.OutOrStdout(), result)
	},
}

// interactive resolves URL after URL until the user quits. Submitting a URL while
// another is still resolving cancels the older one.
func interactive(cmd *cobra.Command) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		handleErr(errors.New("url is required"))
	}

	asJSON := lo.Must(cmd.Flags().GetBool("json"))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	err := tui.Run(ctx, &tui.Options{
		Resolver: resolve.NewLatest(newResolver()),
		Render: func(result *source.Result) string {
			var b strings.Builder
			if asJSON {
				_ = printJSON(&b, result)
			} else {
				printResult(&b, result)
			}
			return strings.TrimRight(b.String(), "\n")
		},
	})
	handleErr(err)
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
