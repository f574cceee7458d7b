package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidresolve/vidresolve/color"
	"github.com/vidresolve/vidresolve/config"
	"github.com/vidresolve/vidresolve/filesystem"
	"github.com/vidresolve/vidresolve/style"
	"github.com/vidresolve/vidresolve/util"
	"github.com/vidresolve/vidresolve/where"
)

type location struct {
	flag string
	name string
	path func() string
}

var locations = []location{
	{"config", "Config file", config.Path},
	{"logs", "Logs", where.Logs},
	{"cache", "Cache", where.Cache},
	{"temp", "Temp", where.Temp},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().Bool(l.flag, false, "Print only the "+strings.ToLower(l.name)+" path")
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where vidresolve keeps its config, logs and cache",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				fmt.Println(l.path())
				return
			}
		}

		width := util.Max(lo.Map(locations, func(l location, _ int) int {
			return len(l.name)
		})...)

		for _, l := range locations {
			path := l.path()

			status := ""
			if exists, _ := filesystem.API().Exists(path); !exists {
				status = style.Faint(" (missing)")
			}

			fmt.Printf(
				"%s  %s%s\n",
				style.Fg(color.Purple)(fmt.Sprintf("%-*s", width, l.name)),
				path,
				status,
			)
		}
	},
}
