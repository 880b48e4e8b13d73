package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"blockfall/client"

	"github.com/eiannone/keyboard"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[26;0H\n\r\033[?25h"
)

func main() {
	var o client.Options
	flag.StringVar(&o.Address, "addr", "localhost:9000", "relay server address for online play")
	flag.StringVar(&o.Name, "name", "anonymous", "name shown to the opponent")
	flag.BoolVar(&o.NoGhost, "noghost", false, "disable the ghost piece")
	debug := flag.Bool("debug", false, "log debug messages")
	flag.Parse()

	// stdout belongs to the renderer, logs go to a file.
	logFile, err := os.OpenFile("blockfall.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("unable to open log file: %v", err)
	}
	defer logFile.Close()
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: level}))

	c, err := client.New(logger, &o)
	if err != nil {
		log.Fatalf("unable to start client: %v", err)
	}
	defer keyboard.Close() //nolint: errcheck

	fmt.Print(hideCursor)
	defer fmt.Print(showCursor)
	c.Start()
}
