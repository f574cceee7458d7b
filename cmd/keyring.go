package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidresolve/vidresolve/auth"
	"github.com/vidresolve/vidresolve/color"
	"github.com/vidresolve/vidresolve/icon"
	"github.com/vidresolve/vidresolve/style"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keySetCmd, keyGetCmd, keyDeleteCmd)
	keyGetCmd.Flags().BoolP("reveal", "r", false, "Print the whole key instead of a masked form")
}

// keyCmd manages the server API key stored in the system keyring.
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the server API key stored in the system keyring",
}

var keySetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store the API key (prompted when omitted)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var apiKey string
		if len(args) == 1 {
			apiKey = args[0]
		} else {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				handleErr(errors.New("key is required"))
			}
			handleErr(survey.AskOne(&survey.Password{Message: "API key"}, &apiKey, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetAPIKey(apiKey))
		fmt.Printf("%s API key saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var keyGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored API key",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey, err := auth.GetAPIKey()
		if errors.Is(err, auth.ErrNotFound) {
			handleErr(errors.New("no API key stored"))
		}
		handleErr(err)

		if !lo.Must(cmd.Flags().GetBool("reveal")) {
			apiKey = mask(apiKey)
		}
		fmt.Println(apiKey)
	},
}

var keyDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the stored API key",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteAPIKey())
		fmt.Printf("%s API key deleted\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

// mask keeps the last four characters visible.
func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
