package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmccarv/quadcrack/cipher"
	"github.com/jmccarv/quadcrack/crack"

	E "github.com/sagernet/sing/common/exceptions"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	crackIn         string
	crackOut        string
	crackRestarts   int
	crackPatience   int
	crackParallel   int
	crackTopN       int
	crackMaxRuntime time.Duration
	crackShowKey    bool
	crackProgress   bool
	cpuprofile      string
	memprofile      string
)

var commandCrack = &cobra.Command{
	Use:   "crack [TEXT...]",
	Short: "Recover the plaintext of a substitution cipher",
	Long: "Recover the plaintext of a substitution cipher.\n\n" +
		"The ciphertext is read from --in, from the arguments, or from stdin.",
	RunE: runCrack,
}

func init() {
	flags := commandCrack.Flags()
	flags.StringVarP(&crackIn, "in", "i", "", "read ciphertext from file")
	flags.StringVarP(&crackOut, "out", "o", "", "write plaintext to file instead of stdout")
	flags.IntVarP(&crackRestarts, "restarts", "n", cfg.Crack.Restarts, "number of random restarts")
	flags.IntVar(&crackPatience, "patience", cfg.Crack.Patience, "non-improving swaps before a restart gives up")
	flags.IntVarP(&crackParallel, "parallel", "p", cfg.Crack.Parallel, "restarts to run at once, -1 for one per CPU")
	flags.IntVar(&crackTopN, "topn", cfg.Crack.TopN, "display the top N keys found")
	flags.DurationVarP(&crackMaxRuntime, "max-runtime", "r", 0, "quit after this amount of time. Ex: 30s or 1m")
	flags.BoolVarP(&crackShowKey, "show-key", "k", false, "print the recovered key")
	flags.BoolVar(&crackProgress, "progress", false, "show a progress bar over restarts")
	flags.StringVar(&cpuprofile, "cpuprofile", "", "write cpu profile to 'file'")
	flags.StringVar(&memprofile, "memprofile", "", "write memory profile to 'file'")
	mainCommand.AddCommand(commandCrack)
}

func applyCrackFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("restarts") {
		cfg.Crack.Restarts = crackRestarts
	}
	if flags.Changed("patience") {
		cfg.Crack.Patience = crackPatience
	}
	if flags.Changed("parallel") {
		cfg.Crack.Parallel = crackParallel
	}
	if flags.Changed("topn") {
		cfg.Crack.TopN = crackTopN
	}
	if flags.Changed("max-runtime") {
		cfg.Crack.MaxRuntime = crackMaxRuntime
	}
	if flags.Changed("show-key") {
		cfg.Crack.ShowKey = crackShowKey
	}
	if flags.Changed("progress") {
		cfg.Crack.Progress = crackProgress
	}
	return cfg.Validate()
}

func runCrack(cmd *cobra.Command, args []string) error {
	if err := applyCrackFlags(cmd); err != nil {
		return err
	}

	stopProfile, err := startCPUProfile(cpuprofile)
	if err != nil {
		return err
	}
	defer stopProfile()

	scorer, err := loadScorer()
	if err != nil {
		return err
	}
	text, err := readText(args, crackIn)
	if err != nil {
		return E.Cause(err, "read ciphertext")
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	if cfg.Crack.MaxRuntime > 0 {
		ctx, cancelFunc = context.WithTimeout(ctx, cfg.Crack.MaxRuntime)
	}
	defer cancelFunc()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
			return
		}
	}()

	options := crack.Options{
		Restarts: cfg.Crack.Restarts,
		Patience: cfg.Crack.Patience,
		Parallel: cfg.Crack.Parallel,
		TopN:     cfg.Crack.TopN,
		Logger:   logger,
	}
	if cfg.Crack.Progress {
		bar := newRestartBar(cfg.Crack.Restarts)
		defer bar.Finish()
		options.OnTrajectory = func(crack.Candidate) {
			bar.Add(1)
		}
	}

	res, err := crack.NewCracker(scorer, options).Crack(ctx, newRand(), text)
	if err != nil {
		if len(res.Top) == 0 {
			return err
		}
		logger.WithField("completed", res.Restarts).Warn("search stopped early: ", err)
	}

	logger.WithFields(logrus.Fields{
		"restarts": res.Restarts,
		"score":    res.Score,
	}).Info("Evaluated ", res.Restarts, " restarts in ", res.Elapsed.Round(time.Millisecond))

	if crackOut != "" {
		if err := os.WriteFile(crackOut, []byte(res.Plaintext), 0o644); err != nil {
			return E.Cause(err, "write plaintext")
		}
		logger.WithField("file", crackOut).Info("wrote plaintext")
		if cfg.Crack.ShowKey {
			dumpKey(os.Stdout, res.Key)
		}
	} else {
		dumpResult(os.Stdout, res, text, cfg.Crack.ShowKey)
	}

	return writeMemProfile(memprofile)
}

func newRestartBar(n int) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(!cfg.Log.NoColor),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("restarts"),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan]Cracking[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionClearOnFinish(),
	)
}

// dumpKey prints a decryption key under the alphabet it decrypts.
func dumpKey(w io.Writer, key cipher.Key) {
	fmt.Fprintln(w, au.Cyan("encoded"), cipher.Alphabet)
	fmt.Fprintln(w, au.Cyan("decoded"), key)
	fmt.Fprintln(w, au.Cyan("mapping"), key.Pairs())
}

func dumpResult(w io.Writer, res crack.Result, ciphertext string, showKey bool) {
	if len(res.Top) <= 1 {
		if showKey {
			dumpKey(w, res.Key)
		}
		fmt.Fprintln(w, res.Plaintext)
		return
	}

	for i, c := range res.Top {
		fmt.Fprintf(w, "%s  %v\n", au.Bold(fmt.Sprintf("#%d", i+1)), c)
		if showKey {
			dumpKey(w, c.Key)
		}
		fmt.Fprintln(w, c.Decrypt(ciphertext))
	}
}
