package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/luxa-club/luxa/internal/config"
	"github.com/luxa-club/luxa/internal/game"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	tuning := config.Shooter()
	if len(os.Args) > 1 && os.Args[1] == "runner" {
		tuning = config.Runner()
	}

	reader := bufio.NewReader(os.Stdin)
	opts := game.PlayOptions{Tuning: tuning}
	if err := game.Play(context.Background(), reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
