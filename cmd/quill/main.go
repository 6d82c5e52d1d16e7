package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/quill/internal/config"
	"github.com/xonecas/quill/internal/notestore"
	"github.com/xonecas/quill/internal/tui"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: <data dir>/config.toml)")
	showVersion := flag.Bool("version", false, "print version and exit")
	showRecent := flag.Bool("recent", false, "list recently opened notes and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: quill [flags] <note>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("quill " + version)
		return
	}
	if *showRecent {
		listRecent()
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	notePath, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}

	dataDir, err := config.EnsureDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}
	setupLogging(dataDir)

	// A broken state store degrades to no persistence; the editor still runs.
	st, err := notestore.Open(filepath.Join(dataDir, "notes.db"))
	if err != nil {
		log.Warn().Err(err).Msg("note state store unavailable")
		st = nil
	}
	defer st.Close()

	text, err := os.ReadFile(notePath)
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		tui.New(cfg, st, notePath, string(text)),
		tea.WithFilter(tui.MouseEventFilter),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}
}

// listRecent prints the recently opened notes, newest first.
func listRecent() {
	dataDir, err := config.DataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}
	st, err := notestore.Open(filepath.Join(dataDir, "notes.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()
	for _, path := range st.Recents(20) {
		fmt.Println(path)
	}
}

// setupLogging routes the global logger to a file in the data dir so log
// lines never corrupt the terminal UI.
func setupLogging(dataDir string) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	path := filepath.Join(dataDir, "quill.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		log.Logger = zerolog.Nop()
		return
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
}
