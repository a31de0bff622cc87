// Package main provides the CLI entrypoint for unifaq.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unifaq/core/internal/config"
	"github.com/unifaq/core/internal/library"
	"github.com/unifaq/core/internal/models"
)

type options struct {
	configPath   string
	groups       string
	interactions string
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "unifaq",
		Short:         "Look up UNIFAQ group and interaction parameters",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	defaultConfig := os.Getenv(config.EnvConfig)
	if defaultConfig == "" {
		defaultConfig = config.DefaultConfigPath()
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfig, "path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&opts.groups, "groups", "", "path to the group table (JSON)")
	rootCmd.PersistentFlags().StringVar(&opts.interactions, "interactions", "", "path to the interaction table (JSON)")

	rootCmd.AddCommand(newGroupCmd(opts))
	rootCmd.AddCommand(newInteractionCmd(opts))
	rootCmd.AddCommand(newComponentCmd(opts))
	rootCmd.AddCommand(newValidateCmd(opts))

	return rootCmd
}

func newGroupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "group <sgi>",
		Short: "Show the constants of a sub group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sgi, err := parseIndex("sgi", args[0])
			if err != nil {
				return err
			}
			lib, err := opts.load(cmd)
			if err != nil {
				return err
			}
			group, err := lib.GetGroup(sgi)
			if err != nil {
				return err
			}
			return printJSON(cmd, group)
		},
	}
}

func newInteractionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "interaction <mgi1> <mgi2>",
		Short: "Show the interaction parameters between two main groups",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgi1, err := parseIndex("mgi1", args[0])
			if err != nil {
				return err
			}
			mgi2, err := parseIndex("mgi2", args[1])
			if err != nil {
				return err
			}
			lib, err := opts.load(cmd)
			if err != nil {
				return err
			}
			params, err := lib.GetInteractionParameters(mgi1, mgi2)
			if err != nil {
				return err
			}
			return printJSON(cmd, params)
		},
	}
}

func newComponentCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "component <sgi>...",
		Short: "Assemble a component from sub group indices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sgis := make([]int, 0, len(args))
			for _, arg := range args {
				sgi, err := parseIndex("sgi", arg)
				if err != nil {
					return err
				}
				sgis = append(sgis, sgi)
			}
			lib, err := opts.load(cmd)
			if err != nil {
				return err
			}
			component, err := lib.Component(sgis...)
			if err != nil {
				return err
			}
			return printJSON(cmd, struct {
				models.Component
				MainGroups []int `json:"main_groups"`
			}{component, component.MainGroups()})
		},
	}
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that both parameter tables load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return printJSON(cmd, lib.Stats())
		},
	}
}

// load resolves the table paths and populates a library from them. Flags set
// on the command line win over the config file and environment.
func (o *options) load(cmd *cobra.Command) (*library.ParameterLibrary, error) {
	fileCfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	settings := config.Resolve(fileCfg)

	applyStringSetting(cmd, "groups", &o.groups, settings.GroupsPath)
	applyStringSetting(cmd, "interactions", &o.interactions, settings.InteractionsPath)

	return library.LoadFiles(o.groups, o.interactions)
}

func applyStringSetting(cmd *cobra.Command, name string, target *string, value string) {
	if cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func parseIndex(name, arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, arg)
	}
	return v, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
