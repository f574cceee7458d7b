package cmd

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vidresolve/vidresolve/proxy"
	"github.com/vidresolve/vidresolve/source"
)

var schemaTargets = map[string]any{
	"result": &source.Result{},
	"reply":  &proxy.Reply{},
	"stream": &source.StreamInfo{},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringP("type", "t", "result", "Which document to describe (result, reply, stream)")
	lo.Must0(schemaCmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Keys(schemaTargets), cobra.ShellCompDirectiveNoFileComp
	}))
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON schema of the documents produced by --json and by the server.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of resolution output",
	Run: func(cmd *cobra.Command, args []string) {
		name := lo.Must(cmd.Flags().GetString("type"))
		target, ok := schemaTargets[name]
		if !ok {
			handleErr(errUnknownSchema(name))
		}

		reflector := &jsonschema.Reflector{
			DoNotReference: true,
			Mapper:         optionSchema,
		}

		handleErr(printJSON(cmd.OutOrStdout(), reflector.Reflect(target)))
	},
}

func errUnknownSchema(name string) error {
	names := lo.Keys(schemaTargets)
	sort.Strings(names)
	return fmt.Errorf("unknown type %q, available: %s", name, strings.Join(names, ", "))
}

// optionSchema describes optional values as nullable scalars.
func optionSchema(t reflect.Type) *jsonschema.Schema {
	nullable := func(kind string) *jsonschema.Schema {
		return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{{Type: kind}, {Type: "null"}}}
	}

	switch t {
	case reflect.TypeOf(mo.Option[string]{}):
		return nullable("string")
	case reflect.TypeOf(mo.Option[int64]{}):
		return nullable("integer")
	default:
		return nil
	}
}
