package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidresolve/vidresolve/color"
	"github.com/vidresolve/vidresolve/config"
	"github.com/vidresolve/vidresolve/style"
	"github.com/vidresolve/vidresolve/where"
	"golang.org/x/exp/slices"
)

type envVar struct {
	name string
	key  string
}

func envVars() []envVar {
	vars := lo.Map(config.EnvExposed, func(k string, _ int) envVar {
		field := config.Default[k]
		return envVar{name: field.Env(), key: k}
	})
	vars = append(vars, envVar{name: where.EnvConfigPath})

	slices.SortFunc(vars, func(a, b envVar) int {
		switch {
		case a.name < b.name:
			return -1
		case a.name > b.name:
			return 1
		default:
			return 0
		}
	})

	return vars
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List environment variables that override configuration",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))

		for _, v := range envVars() {
			value, present := os.LookupEnv(v.name)
			if setOnly && !present {
				continue
			}

			rendered := style.Fg(color.Red)("unset")
			if present {
				rendered = style.Fg(color.Green)(value)
			}

			line := fmt.Sprintf("%s=%s", style.New().Bold(true).Foreground(color.Purple).Render(v.name), rendered)
			if v.key != "" {
				line += style.Faint("  # " + v.key)
			}

			fmt.Println(line)
		}
	},
}
