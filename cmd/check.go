package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidresolve/vidresolve/auth"
	"github.com/vidresolve/vidresolve/color"
	"github.com/vidresolve/vidresolve/config"
	"github.com/vidresolve/vidresolve/icon"
	"github.com/vidresolve/vidresolve/key"
	"github.com/vidresolve/vidresolve/style"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd validates the configuration and reports every problem at once.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Run: func(cmd *cobra.Command, args []string) {
		err := config.Validate()
		if err == nil {
			fmt.Printf("%s configuration is valid\n", style.Fg(color.Green)(icon.Get(icon.Success)))
		} else {
			printProblems(err)
		}

		if auth.ResolveAPIKey(viper.GetString(key.ServerYouTubeAPIKey)) == "" {
			fmt.Printf("%s %s\n", icon.Get(icon.Warn), style.Faint(key.ServerYouTubeAPIKey+" is not set, \"serve\" cannot resolve YouTube links"))
		}

		if err != nil {
			os.Exit(1)
		}
	},
}

func printProblems(err error) {
	var problems []string
	if merr, ok := err.(*multierror.Error); ok {
		for _, e := range merr.Errors {
			problems = append(problems, "• "+e.Error())
		}
	} else {
		problems = append(problems, "• "+err.Error())
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Invalid configuration", icon.Get(icon.Fail)))
	hint := style.Faint(`Fix with "vidresolve config set <key> <value>"`)

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			strings.Join(problems, "\n"),
			"",
			hint,
		),
	))
}
