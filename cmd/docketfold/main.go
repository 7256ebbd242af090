package main

import (
	"fmt"
	"os"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   _         _        _    __     _    _
  | |___ ___| |_ ___ | |_ / _|___| |__| |
  | / _ / _|| / // -_||  _|  _/ _ \ / _\ |
  |_\___\__||_\_\\___| \__|_| \___/_\__,_|

  Case-folder normalization and dedup engine

  Usage: docketfold run [slug...]
         docketfold --help`)
}

func main() {
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
