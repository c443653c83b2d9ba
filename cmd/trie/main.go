package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/sysd/exercises/compressed-trie/internal/config"
	"github.com/kumarlokesh/sysd/exercises/compressed-trie/internal/logging"
	"github.com/kumarlokesh/sysd/exercises/compressed-trie/internal/subsetsum"
	"github.com/kumarlokesh/sysd/exercises/compressed-trie/internal/trie"
)

const version = "v0.1.0"

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr)
			showHelp(os.Stderr)
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("Command failed")
	}
}

// run parses global flags, sets up logging and dispatches to a subcommand
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("trie", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to config file")
	wordsFile := fs.String("words-file", "", "File with one word per line to insert before the command runs")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	help := fs.Bool("help", false, "Show help message")
	showVer := fs.Bool("version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *help {
		showHelp(stdout)
		return nil
	}
	if *showVer {
		fmt.Fprintf(stdout, "trie %s\n", version)
		return nil
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	if *configPath == "" {
		*configPath = config.GetConfigPath()
	}
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *wordsFile == "" {
		*wordsFile = cfg.Trie.SeedFile
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	log.Logger = logger

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	logger.Debug().Str("command", cmd).Strs("args", cmdArgs).Msg("Running command")

	switch cmd {
	case "build":
		return handleBuild(logger, *wordsFile, cmdArgs, stdout)
	case "lookup":
		return handleQuery(logger, *wordsFile, cmdArgs, stdout, (*trie.Trie).Lookup)
	case "prefix":
		return handleQuery(logger, *wordsFile, cmdArgs, stdout, (*trie.Trie).HasPrefix)
	case "words":
		return handleWords(logger, *wordsFile, cmdArgs, stdout, stderr)
	case "parse":
		return handleParse(cmdArgs, stdout)
	case "subsetsum":
		return handleSubsetSum(logger, cmdArgs, stdout, stderr)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func showHelp(w io.Writer) {
	helpText := `Compressed trie CLI

Usage:
  trie [flags] <command> [arguments]

Flags:
  --config string       Path to config file
  --words-file string   File with one word per line ('#' starts a comment)
  --log-level string    Log level (debug, info, warn, error)
  --help                Show this help message
  --version             Show version information

Commands:
  build <words...>                      Insert words and print the canonical form
  lookup <word> <words...>              Report whether word was inserted
  prefix <prefix> <words...>            Report whether any word starts with prefix
  words [-prefix p] <words...>          List stored words in order
  parse <canonical>                     Parse a canonical form, list its words and re-render it
  subsetsum [-method m] <target> <n...> Find values adding up to target
                                        (methods: bottom-up, top-down)
`
	fmt.Fprint(w, helpText)
}

// loadTrie builds a trie from the words file and positional words
func loadTrie(logger zerolog.Logger, wordsFile string, words []string) (*trie.Trie, error) {
	dict := trie.New()

	if wordsFile != "" {
		f, err := os.Open(wordsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open words file: %w", err)
		}
		defer f.Close()

		n, err := dict.InsertFrom(f)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", wordsFile, err)
		}
		logger.Debug().Str("file", wordsFile).Int("words", n).Msg("Loaded words file")
	}

	for _, w := range words {
		if err := dict.Insert(w); err != nil {
			return nil, err
		}
	}

	logger.Debug().Int("words", dict.Len()).Msg("Trie ready")
	return dict, nil
}

func handleBuild(logger zerolog.Logger, wordsFile string, args []string, stdout io.Writer) error {
	dict, err := loadTrie(logger, wordsFile, args)
	if err != nil {
		return err
	}
	if _, err := dict.WriteTo(stdout); err != nil {
		return fmt.Errorf("failed to write trie: %w", err)
	}
	fmt.Fprintln(stdout)
	return nil
}

func handleQuery(logger zerolog.Logger, wordsFile string, args []string, stdout io.Writer, query func(*trie.Trie, string) bool) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing query", errUsage)
	}
	dict, err := loadTrie(logger, wordsFile, args[1:])
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, query(dict, args[0]))
	return nil
}

func handleWords(logger zerolog.Logger, wordsFile string, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("words", flag.ContinueOnError)
	fs.SetOutput(stderr)
	prefix := fs.String("prefix", "", "Only list words starting with prefix")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	dict, err := loadTrie(logger, wordsFile, fs.Args())
	if err != nil {
		return err
	}
	dict.Walk(*prefix, func(word string) bool {
		fmt.Fprintln(stdout, word)
		return true
	})
	return nil
}

func handleParse(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: parse takes exactly one argument", errUsage)
	}
	dict, err := trie.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse trie: %w", err)
	}
	for _, w := range dict.Words("") {
		fmt.Fprintln(stdout, w)
	}
	fmt.Fprintln(stdout, dict.String())
	return nil
}

func handleSubsetSum(logger zerolog.Logger, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("subsetsum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	method := fs.String("method", string(subsetsum.MethodBottomUp), "Solver method (bottom-up, top-down)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: missing target", errUsage)
	}

	values := make([]int, fs.NArg())
	for i, arg := range fs.Args() {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", errUsage, arg)
		}
		values[i] = v
	}
	target, sequence := values[0], values[1:]

	solver, err := subsetsum.NewSolver(subsetsum.Method(*method), sequence)
	if err != nil {
		return fmt.Errorf("failed to create solver: %w", err)
	}

	subset, ok := solver.CheckSum(target)
	logger.Debug().Str("method", *method).Int("target", target).Bool("found", ok).Msg("Solved subset sum")
	if !ok {
		fmt.Fprintln(stdout, "no subset")
		return nil
	}
	fmt.Fprintln(stdout, subset)
	return nil
}
