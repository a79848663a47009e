// FILE: lixenwraith/optconfig/cmd/optconfig/main.go
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/optconfig"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.StandardLogger()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("optconfig failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := optconfig.DefaultOptions()

	var (
		configFile  string
		showConfig  bool
		showSources bool
	)

	cmd := &cobra.Command{
		Use:           "optconfig",
		Short:         "Resolve diff pager options from flags, presets and git config",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}

	binding := optconfig.BindFlags(cmd.Flags(), &opts)
	cmd.Flags().StringVar(&configFile, "config", "", "Store file (default: $OPTCONFIG_CONFIG, else $XDG_CONFIG_HOME/git/config merged with ~/.gitconfig)")
	cmd.Flags().BoolVar(&showConfig, "show-config", false, "Print the resolved options as TOML")
	cmd.Flags().BoolVar(&showSources, "show-sources", false, "Print where every option value came from")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		binding.Apply()

		b := optconfig.NewBuilder().
			WithDefaults(opts).
			WithSupplied(binding.Supplied())
		if configFile != "" {
			b.WithFile(configFile)
		} else {
			b.WithArgs(nil).WithFileDiscovery(optconfig.DefaultDiscoveryOptions())
		}
		if binding.PresetsSupplied() {
			b.WithPresets(opts.Presets)
		}

		res, err := b.Build()
		if err != nil {
			return oops.In("cli").Wrapf(err, "cannot resolve options")
		}

		out := cmd.OutOrStdout()
		if showSources {
			fmt.Fprint(out, res.Debug())
		}
		if showConfig || !showSources {
			if err := res.Dump(out); err != nil {
				return oops.In("cli").Wrapf(err, "failed to write options")
			}
		}
		return nil
	}

	return cmd
}
