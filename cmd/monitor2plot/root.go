package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/srodi/monitor2plot/pkg/chart"
	"github.com/srodi/monitor2plot/pkg/collector/memory"
	"github.com/srodi/monitor2plot/pkg/collector/sampler"
	"github.com/srodi/monitor2plot/pkg/launcher"
	"github.com/srodi/monitor2plot/pkg/types"
	"github.com/srodi/monitor2plot/pkg/ui"
)

const version = "1.0.0"

const noSamplesMessage = "no samples collected: interval too large relative to process lifetime\n" +
	"Please try smaller interval for accessing CPU time"

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "monitor2plot",
		Short: "Plot CPU and memory usage of a process over its lifetime",
		Long: `monitor2plot samples CPU and memory usage of a process until it exits,
then draws both as a two-panel chart.

Quick start:
  1. Run the program with your command (e.g. ls)
       monitor2plot -c "ls"
  2. Or follow a process that is already running
       monitor2plot -p 1234

Notes: if the job takes a long time to run, you can specify a greater interval.`,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.cmdline == "" && !cmd.Flags().Changed("pid") {
				return cmd.Help()
			}
			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			cfg.normalize(log)
			return run(cmd.Context(), cfg, log, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.cmdline, "cmd", "c", "", "the command you would like to monitor")
	flags.IntVarP(&cfg.pid, "pid", "p", 0, "PID to monitor instead of launching a command")
	flags.StringVarP(&cfg.output, "output", "o", cfg.output, "output plot path; format follows the extension")
	flags.Float64VarP(&cfg.interval, "interval", "i", cfg.interval, "time interval in seconds for accessing CPU time")
	flags.VarP(&cfg.theme, "theme", "t", "theme for the plot: dark/light")
	flags.BoolVarP(&cfg.quiet, "quiet", "q", false, "suppress diagnostics on stderr")
	flags.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "Log level. One of debug, info, warn, error.")
	flags.BoolP("version", "V", false, "print version and exit")
	cmd.MarkFlagsMutuallyExclusive("cmd", "pid")

	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		fmt.Fprint(c.OutOrStdout(), ui.Banner(isTerminal(c.OutOrStdout())))
		defaultHelp(c, args)
	})

	return cmd
}

func run(ctx context.Context, cfg runConfig, log *logrus.Logger, stdout io.Writer) error {
	if cfg.cmdline != "" {
		log.Infof("cmd: [%s]", cfg.cmdline)
	} else {
		log.Infof("PID id: [%d]", cfg.pid)
	}
	log.Infof("theme: [%s]", cfg.theme)
	log.Infof("interval: [%v]", cfg.interval)
	log.Infof("output: [%s]", cfg.output)

	target, err := launch(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer target.Close()

	series, err := sampler.New(cfg.intervalDuration(), log).Run(ctx, target)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("sampling pid %d: %w", target.PID(), err)
	}

	cpuTime, err := series.CPUUserTime()
	if errors.Is(err, types.ErrNoSamples) {
		fmt.Fprintln(stdout, noSamplesMessage)
		return nil
	}

	// An interrupted run still gets its chart.
	ctx = context.WithoutCancel(ctx)
	totalMem, err := memory.TotalMemoryBytes(ctx)
	if err != nil {
		return err
	}

	in := chart.Input{
		PID:         target.PID(),
		Label:       target.Label(),
		Interval:    cfg.intervalDuration(),
		CPUTime:     cpuTime,
		Series:      series,
		Theme:       cfg.theme,
		TotalMemory: totalMem,
	}
	if err := chart.Render(in, cfg.output, log); err != nil {
		return fmt.Errorf("rendering %s: %w", cfg.output, err)
	}

	log.WithFields(logrus.Fields{
		"samples":  series.Len(),
		"peak_rss": humanize.IBytes(series.PeakRSS()),
	}).Infof("PID [%d] finished", target.PID())
	return nil
}

func launch(ctx context.Context, cfg runConfig, log logrus.FieldLogger) (launcher.Target, error) {
	if cfg.cmdline != "" {
		return launcher.Spawn(cfg.cmdline, log)
	}
	return launcher.Attach(ctx, cfg.pid)
}
