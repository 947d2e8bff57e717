package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitlab.com/nunet/vkinfo/cmd/backend"
	"gitlab.com/nunet/vkinfo/collector"
	"gitlab.com/nunet/vkinfo/formatter"
	"gitlab.com/nunet/vkinfo/internal/config"
	"gitlab.com/nunet/vkinfo/internal/logger"
)

func NewRootCmd(loader backend.DriverLoader, resolver backend.NameResolver, fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "vkinfo",
		Short: "Report the capabilities of the Vulkan driver stack",
		Long: `Query the Vulkan loader for instance and device extensions, layers,
physical device properties, memory heaps and queue families, and print
them as an indented report.

Settings are read from vkinfo_config.json in the working directory or
in /etc/vkinfo.`,
		Args: cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// an unreadable config file leaves the defaults in place
			cfg, _ := config.Load(fsys)

			log := logger.New("cmd", cfg.General.Debug)
			defer log.Sync()

			driver, err := loader.Load(cfg.Vulkan.Library)
			if err != nil {
				return err
			}
			log.Debug("vulkan loader opened", zap.String("library", cfg.Vulkan.Library))

			c := collector.New(driver, logger.New("collector", cfg.General.Debug))
			if cfg.General.Debug && resolver != nil {
				names, err := resolver.PCINames()
				if err != nil {
					log.Debug("pci database unavailable", zap.Error(err))
				}
				c.WithPCINames(names)
			}

			report, err := c.Collect()
			if err != nil {
				return err
			}

			return formatter.Print(cmd.OutOrStdout(), report)
		},
	}
}

// run executes rootCmd with args and returns the exit status. A failure is
// reported on stderr as a single line.
func run(rootCmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func Execute() {
	rootCmd := NewRootCmd(&backend.Vulkan{}, &backend.PCIDB{}, afero.NewOsFs())
	os.Exit(run(rootCmd, os.Args[1:], os.Stdout, os.Stderr))
}
