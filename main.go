package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	seed := flag.Int64("seed", 0, "fixed piece sequence seed (0 = clock)")
	flag.Parse()
	EnableDebugLogging(*debug)
	DebugLogf("tetris start debug=%v seed=%d", *debug, *seed)
	program := tea.NewProgram(NewModel(*seed), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		DebugLogf("program error: %v", err)
		os.Exit(1)
	}
}
