package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/srodi/monitor2plot/pkg/chart"
	"github.com/srodi/monitor2plot/pkg/types"
	"github.com/srodi/monitor2plot/pkg/ui"
)

const defaultOutputName = "monitor2plot.png"

type runConfig struct {
	cmdline  string
	pid      int
	output   string
	interval float64 // seconds
	theme    chart.Theme
	quiet    bool
	logLevel string
}

func defaultConfig() runConfig {
	output := defaultOutputName
	if wd, err := os.Getwd(); err == nil {
		output = filepath.Join(wd, defaultOutputName)
	}
	return runConfig{
		output:   output,
		interval: types.DefaultInterval,
		theme:    chart.Dark,
		logLevel: "info",
	}
}

// normalize clamps values the sampler cannot work with.
func (c *runConfig) normalize(log logrus.FieldLogger) {
	if c.interval <= 0 {
		log.Warnf("interval %v is not positive, using %v", c.interval, types.DefaultInterval)
		c.interval = types.DefaultInterval
	}
	if c.output == "" {
		c.output = defaultOutputName
	}
}

func (c runConfig) intervalDuration() time.Duration {
	return time.Duration(c.interval * float64(time.Second))
}

// newLogger sends diagnostics to w, or nowhere when quiet.
func newLogger(cfg runConfig, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&ui.LevelFormatter{Color: isTerminal(w)})
	if cfg.quiet {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(w)
	}
	return log, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
