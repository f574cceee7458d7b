package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidresolve/vidresolve/icon"
	"github.com/vidresolve/vidresolve/util"
	"github.com/vidresolve/vidresolve/where"
)

// Resolved links are never cached, so these only hold the release tag cache, logs and scratch files.
var clearable = []location{
	{"cache", "Cache", where.Cache},
	{"logs", "Logs", where.Logs},
	{"temp", "Temp", where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, l := range clearable {
		clearCmd.Flags().Bool(l.flag, false, "Remove the "+l.flag+" directory")
	}
	clearCmd.Flags().BoolP("all", "a", false, "Remove every directory above")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached release data, logs and temporary files",
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))

		selected := lo.Filter(clearable, func(l location, _ int) bool {
			return all || lo.Must(cmd.Flags().GetBool(l.flag))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, l := range selected {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), l.flag))
			err := util.Delete(l.path())
			erase()

			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				handleErr(err)
			}

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(l.flag))
		}
	},
}
