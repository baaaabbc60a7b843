// Package main provides the sysfetch command-line tool for displaying a
// snapshot of the host's identity, resources and network next to an ASCII
// art logo of its operating system.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"sysfetch/config"
	"sysfetch/display"
	"sysfetch/logging"
	"sysfetch/sysinfo"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type options struct {
	configPath string
	noLogo     bool
	noColor    bool
	noNetwork  bool
	compact    bool
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sysfetch: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "sysfetch",
		Short:         "Show system information next to an OS logo",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to configuration file")
	f.BoolVar(&opts.noLogo, "no-logo", false, "hide the ASCII logo")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	f.BoolVar(&opts.noNetwork, "no-network", false, "hide the network section")
	f.BoolVar(&opts.compact, "compact", false, "omit spacer lines, interfaces and the color palette")
	f.BoolVar(&opts.debug, "debug", os.Getenv("SYSFETCH_DEBUG") != "", "write diagnostics to stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfgPath, optional := opts.configPath, false
	if cfgPath == "" {
		cfgPath, optional = config.DefaultPath(), true
	}
	cfg, err := config.Load(cfgPath, optional)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, opts.debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	dcfg := displayConfig(cfg, opts)
	log.Debug("display config",
		zap.Bool("color", dcfg.Color),
		zap.Bool("logo", dcfg.Logo),
		zap.Bool("network", dcfg.Network),
		zap.Bool("compact", dcfg.Compact),
	)

	src := sysinfo.NewSource(log)
	sys := sysinfo.GetSystemInfo(src)

	var net *sysinfo.NetworkInfo
	if dcfg.Network {
		probe := sysinfo.NewNetworkProbe(runtime.GOOS, src)
		probe.PublicIPURL = cfg.Network.PublicIPURL
		probe.PublicIPTimeout = cfg.Network.PublicIPTimeout
		probe.SkipPublicIP = !cfg.Network.PublicIP
		net = probe.Collect()
	}

	return display.Render(cmd.OutOrStdout(), dcfg, sys, net)
}

// displayConfig merges file defaults with flags. Color is also dropped when
// NO_COLOR is set or stdout is not a terminal.
func displayConfig(cfg *config.Config, opts *options) display.Config {
	d := display.Config{
		Color:   cfg.Display.Color && !opts.noColor,
		Logo:    cfg.Display.Logo && !opts.noLogo,
		Network: cfg.Display.Network && !opts.noNetwork,
		Compact: cfg.Display.Compact || opts.compact,
	}
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		d.Color = false
	}
	return d
}
