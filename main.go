package main

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/jmccarv/quadcrack/config"
	"github.com/jmccarv/quadcrack/dict"
	"github.com/jmccarv/quadcrack/quadgram"

	"github.com/logrusorgru/aurora"
	E "github.com/sagernet/sing/common/exceptions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath     string
	quadgramPath   string
	dictionaryPath string
	seed           uint64
	logLevel       string
	noColor        bool
	saveConfigPath string
)

var (
	cfg    = config.DefaultConfig()
	logger = logrus.New()
	au     = aurora.NewAurora(true)
)

var mainCommand = &cobra.Command{
	Use:   "quadcrack",
	Short: "Break substitution ciphers with quadgram statistics",
	Long: "quadcrack recovers the plaintext of a monoalphabetic substitution cipher\n" +
		"by hill climbing over keys, scored against a table of English quadgrams.",
	PersistentPreRunE: preRun,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func init() {
	flags := mainCommand.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "set configuration file path")
	flags.StringVarP(&quadgramPath, "quadgrams", "q", cfg.Quadgrams, "quadgram frequency table, one QUAD,count per line")
	flags.StringVarP(&dictionaryPath, "dictionary", "d", cfg.Dictionary, "word list used by caesar decrypt")
	flags.Uint64Var(&seed, "seed", 0, "seed for the random source, 0 seeds from the clock")
	flags.StringVar(&logLevel, "log-level", cfg.Log.Level, "log level: trace, debug, info, warn, error")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.StringVar(&saveConfigPath, "save-config", "", "write the merged configuration to file")
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func preRun(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("quadgrams") {
		cfg.Quadgrams = quadgramPath
	}
	if flags.Changed("dictionary") {
		cfg.Dictionary = dictionaryPath
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("no-color") {
		cfg.Log.NoColor = noColor
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    cfg.Log.NoColor,
		DisableTimestamp: true,
	})
	au = aurora.NewAurora(!cfg.Log.NoColor)

	if saveConfigPath != "" {
		if err := config.SaveConfig(cfg, saveConfigPath); err != nil {
			return err
		}
		logger.WithField("file", saveConfigPath).Info("saved configuration")
	}
	return nil
}

// newRand returns the random source for this run. The seed is logged so a
// run can be repeated with --seed.
func newRand() *rand.Rand {
	s := cfg.Seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	logger.WithField("seed", s).Debug("random source")
	return seededRand(s)
}

func loadScorer() (*quadgram.Scorer, error) {
	start := time.Now()
	s, err := quadgram.LoadFile(cfg.Quadgrams)
	if err != nil {
		return nil, E.Cause(err, "quadgrams")
	}
	logger.WithFields(logrus.Fields{
		"file":      cfg.Quadgrams,
		"quadgrams": s.Len(),
		"total":     s.Total(),
		"elapsed":   time.Since(start),
	}).Debug("loaded quadgram table")
	return s, nil
}

func loadDictionary() (*dict.Dictionary, error) {
	d, err := dict.LoadFile(cfg.Dictionary)
	if err != nil {
		return nil, E.Cause(err, "dictionary")
	}
	logger.WithFields(logrus.Fields{
		"file":  cfg.Dictionary,
		"words": d.Len(),
	}).Debug("loaded dictionary")
	return d, nil
}
