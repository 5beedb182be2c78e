// Copyright 2025 The Spelchk Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spelchk spell checker and suggestion server.

Spelchk checks words against a builtin English dictionary and ranks
corrections for the misses using gestalt pattern matching, the same
similarity measure difflib uses. It can check words given on the command
line, scan whole files, run an interactive prompt, or serve requests as
a MessagePack IPC server for integration with text editors.

# Usage

Check a handful of words:

	spelchk recieve tommorow

Check files and report unknown words with line numbers:

	spelchk -file README.md docs/notes.txt

Scan a directory tree:

	spelchk -file -r docs/

Run the interactive prompt:

	spelchk -c

List dictionary words under a prefix:

	spelchk -prefix mon

Word mode prints the ranked suggestions one per line, best match first.
Multiple query words are separated by a "-----" line. Debug mode appends
the similarity ratio to each suggestion.

# Dictionary

The English wordlist is compiled into the binary, one lowercase word per
line. A custom list can replace it at runtime:

	spelchk -wordlist /path/to/words.txt recieve

Words from the -ignore flag and the ignore file (one word per line,
default ~/.spelchk_ignore) are treated as correct everywhere.

# Configuration

Runtime configuration is managed through a TOML file that covers checker
defaults, tokenizer behavior and server limits:

	[check]
	top = 5
	ignore_file = "~/.spelchk_ignore"
	recursive = false

	[tokens]
	digits = true

	[server]
	max_limit = 64
	max_word_len = 60
	cache_size = 256

The config file is automatically created with defaults if it doesn't
exist. Flags given on the command line take priority over file values.

# IPC Protocol

Server mode communicates via MessagePack over stdin/stdout. Check
requests are processed synchronously with microsecond timing information
included in responses.

Send a check request:

	{"id": "req1", "w": "recieve", "l": 5}

A known word comes back confirmed:

	{"id": "req1", "ok": true, "c": 0, "t": 2}

An unknown word carries ranked suggestions:

	{"id": "req1", "ok": false, "s": [{"w": "receive", "r": 1}], "c": 1, "t": 812}

Info requests report dictionary sizes:

	{"id": "info1", "action": "get_info"}

Repeated misses are served from an LRU cache, so editors polling the
same word as the user types do not pay for a full dictionary scan each
keystroke.

# Command Line Flags

The following flags control application behavior:

	-file
	    Treat positional arguments as files or directories to check
	-r  Descend into directories in file mode
	-c  Run the interactive prompt instead of a one-shot check
	-serve
	    Run as a MessagePack IPC server on stdin/stdout
	-prefix
	    List dictionary words starting with the positional argument
	-top int
	    Number of suggestions to return (default from config)
	-ignore string
	    Comma separated words to treat as correct
	-ignore-file string
	    Newline delimited ignore file (default from config)
	-wordlist string
	    Custom dictionary file replacing the builtin wordlist
	-config string
	    Custom config.toml path
	-d  Enable debug mode with detailed logging
	-version
	    Show current version

Unreadable input files are reported and skipped rather than aborting the
whole run. A dictionary that fails to load is fatal.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spelchk/spelchk/internal/assets"
	"github.com/spelchk/spelchk/internal/cli"
	"github.com/spelchk/spelchk/internal/ignore"
	"github.com/spelchk/spelchk/internal/logger"
	"github.com/spelchk/spelchk/internal/utils"
	"github.com/spelchk/spelchk/pkg/checker"
	"github.com/spelchk/spelchk/pkg/config"
	"github.com/spelchk/spelchk/pkg/dictionary"
	"github.com/spelchk/spelchk/pkg/server"
	"github.com/spelchk/spelchk/pkg/suggest"
	"github.com/spelchk/spelchk/pkg/tokenizer"
)

const (
	Version = "0.4.0"
	AppName = "spelchk"
	gh      = "https://github.com/spelchk/spelchk"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to run the selected mode.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive prompt -- useful for testing and debugging")
	serveMode := flag.Bool("serve", false, "Run as a MessagePack IPC server on stdin/stdout")
	fileMode := flag.Bool("file", false, "Treat positional arguments as files or directories to check")
	prefixMode := flag.Bool("prefix", false, "List dictionary words starting with the given prefix")
	recursive := flag.Bool("r", defaults.Check.Recursive, "Descend into directories in file mode")
	top := flag.Int("top", defaults.Check.Top, "Number of suggestions to return")
	ignoreList := flag.String("ignore", "", "Comma separated words to treat as correct")
	ignoreFile := flag.String("ignore-file", defaults.Check.IgnoreFile, "Newline delimited ignore file")
	wordlist := flag.String("wordlist", "", "Custom dictionary file replacing the builtin wordlist")
	configPath := flag.String("config", "", "Custom config.toml path")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Warnf("Failed to load config: %v. Using built-in defaults...", err)
		appConfig = config.DefaultConfig()
	}
	if activePath != "" {
		log.Debugf("Using config file: (%s)", activePath)
	}

	// flags win over file values, file values over builtins
	flagsSet := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { flagsSet[f.Name] = true })
	if !flagsSet["top"] {
		*top = appConfig.Check.Top
	}
	if !flagsSet["ignore-file"] {
		*ignoreFile = appConfig.Check.IgnoreFile
	}
	if !flagsSet["r"] {
		*recursive = appConfig.Check.Recursive
	}
	tokCfg := tokenizer.Config{Digits: appConfig.Tokens.Digits}

	words, err := loadWordlist(*wordlist)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debugf("Dictionary loaded: %d entries", len(words))

	wordSet := dictionary.NewSet(words)
	ignored := ignore.Build(*ignoreList, *ignoreFile)

	if *serveMode {
		ranker, err := suggest.NewRanker(words)
		if err != nil {
			log.Fatalf("Failed to init ranker: %v", err)
		}
		srv := server.NewServer(wordSet, ignored, ranker, appConfig.Server)
		showStartupInfo(wordSet.Len(), ignored.Len())
		if err := srv.Start(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
		return
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		ranker, err := suggest.NewRanker(words)
		if err != nil {
			log.Fatalf("Failed to init ranker: %v", err)
		}
		index := suggest.NewPrefixIndex(words)
		log.Debug("Input info:",
			"top", *top,
			"maxWordLen", appConfig.Server.MaxWordLen,
			"digits", tokCfg.Digits)

		handler := cli.NewInputHandler(wordSet, ignored, ranker, index, tokCfg, *top, appConfig.Server.MaxWordLen)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *prefixMode {
		if flag.NArg() == 0 {
			log.Error("No prefix given")
			flag.Usage()
			os.Exit(1)
		}
		index := suggest.NewPrefixIndex(words)
		runPrefixes(index, flag.Args(), *top)
		return
	}

	if *fileMode {
		if flag.NArg() == 0 {
			log.Error("No files given")
			flag.Usage()
			os.Exit(1)
		}
		chk := checker.New(wordSet, ignored, tokCfg)
		paths := checker.ExpandPaths(flag.Args(), *recursive)
		chk.CheckFiles(paths, os.Stdout)
		return
	}

	if flag.NArg() == 0 {
		log.Error("No words given")
		flag.Usage()
		os.Exit(1)
	}
	ranker, err := suggest.NewRanker(words)
	if err != nil {
		log.Fatalf("Failed to init ranker: %v", err)
	}
	runWords(ranker, flag.Args(), *top, *debugMode)
}

// loadWordlist reads the custom dictionary when given, the builtin otherwise
func loadWordlist(path string) ([]string, error) {
	if path == "" {
		return dictionary.Words(assets.English), nil
	}
	expanded := utils.ExpandPath(path)
	log.Debugf("Using custom wordlist: %s", expanded)
	return dictionary.LoadFile(expanded)
}

// runWords ranks each query word and prints suggestions one per line,
// with a separator line between queries
func runWords(ranker *suggest.Ranker, queries []string, top int, debug bool) {
	for i, query := range queries {
		if i > 0 {
			fmt.Println("-----")
		}
		word := strings.ToLower(query)
		ranked, err := ranker.Top(word, top)
		if err != nil {
			log.Errorf("Cannot rank '%s': %v", query, err)
			continue
		}
		for _, c := range ranked {
			if debug {
				fmt.Printf("%s: %.3f\n", c.Word, c.Ratio)
			} else {
				fmt.Println(c.Word)
			}
		}
	}
}

// runPrefixes lists dictionary words under each given prefix
func runPrefixes(index *suggest.PrefixIndex, prefixes []string, limit int) {
	for i, prefix := range prefixes {
		if i > 0 {
			fmt.Println("-----")
		}
		matches := index.Complete(strings.ToLower(prefix), limit)
		if len(matches) == 0 {
			log.Warnf("No words start with '%s'", prefix)
			continue
		}
		for _, w := range matches {
			fmt.Println(w)
		}
	}
}

// showVersionInfo prints the styled version banner.
func showVersionInfo() {
	banner := logger.Bare()

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ Spelchk ] Spell checking with ranked corrections!")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(words, ignored int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println("  spelchk  ")
	println("===========")
	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("dictionary: [ %d ] words", words)
	if ignored > 0 {
		log.Infof("ignoring: [ %d ] words", ignored)
	}
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
