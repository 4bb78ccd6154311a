package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	ytpickcmd "ytpick/internal/cli/cmd"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Unexpected failures are reported, not turned into a crash exit.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "An error occurred: %v\n%s", r, debug.Stack())
			code = ytpickcmd.ExitOK
		}
	}()

	if err := ytpickcmd.Execute(ctx); err != nil {
		var ee *ytpickcmd.ExitError
		if errors.As(err, &ee) {
			if ee.Err != nil {
				fmt.Fprintln(os.Stderr, ee.Err)
			}
			return ee.Code
		}
		fmt.Fprintln(os.Stderr, err)
		return ytpickcmd.ExitCLIError
	}
	return ytpickcmd.ExitOK
}
