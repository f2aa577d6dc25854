package main

import (
	"flag"
	"os"

	"tmprobe/internal/batch"
	"tmprobe/internal/cases"
	appLog "tmprobe/internal/log"
	"tmprobe/internal/strptime"
)

// flagConfig holds CLI flag values.
type flagConfig struct {
	casesPath string
	init      bool
	verbose   bool
	logLevel  string
}

func main() {
	flags := parseFlags()

	level, err := appLog.ParseLevel(flags.logLevel)
	if err != nil {
		appLog.Error("invalid -log-level", err)
		os.Exit(1)
	}
	if flags.verbose {
		level = appLog.LevelDebug
	}
	appLog.SetLevel(level)

	if flags.init {
		if err := cases.Save(flags.casesPath, cases.Default()); err != nil {
			appLog.Error("failed to write case file", err, "path", flags.casesPath)
			os.Exit(1)
		}
		appLog.Info("wrote starter case file", "path", flags.casesPath)
		return
	}

	if !strptime.Available {
		appLog.Info("built without cgo; every case will report a parse failure")
	}

	file, err := cases.Load(flags.casesPath)
	if err != nil {
		appLog.Error("failed to load case file", err, "path", flags.casesPath)
		os.Exit(1)
	}

	sum := batch.Run(file, os.Stdout, strptime.Libc{}, batch.Options{Verbose: flags.verbose})
	appLog.Info("batch finished", "summary", sum.String())

	if sum.Mismatches > 0 {
		os.Exit(1)
	}
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.casesPath, "cases", "tmprobe-cases.yaml", "Path to YAML case file")
	flag.BoolVar(&cfg.init, "init", false, "Write a starter case file to -cases and exit")
	flag.BoolVar(&cfg.verbose, "v", false, "Debug logging and list untouched fields per case")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "Log level: debug, info or error")

	flag.Parse()

	return cfg
}
