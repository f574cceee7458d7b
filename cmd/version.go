package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidresolve/vidresolve/color"
	"github.com/vidresolve/vidresolve/constant"
	"github.com/vidresolve/vidresolve/style"
	"github.com/vidresolve/vidresolve/version"
)

type buildInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"builtAt"`
	BuiltBy  string `json:"builtBy"`
	Platform string `json:"platform"`
	Go       string `json:"go"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Go:       runtime.Version(),
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Print build metadata as json")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		build := currentBuild()

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			fmt.Println(build.Version)
			return
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(printJSON(cmd.OutOrStdout(), build))
			return
		}

		rows := [][2]string{
			{"Version", build.Version},
			{"Revision", build.Revision},
			{"Built at", build.BuiltAt},
			{"Built by", build.BuiltBy},
			{"Platform", build.Platform},
			{"Go", build.Go},
		}

		fmt.Printf("%s %s\n\n", style.Fg(color.Purple)("▇▇▇"), style.Fg(color.Purple)(constant.App))
		for _, row := range rows {
			fmt.Printf("  %s %s\n", style.Faint(fmt.Sprintf("%-10s", row[0])), style.Bold(row[1]))
		}

		version.Notify(cmd.OutOrStdout())
	},
}
