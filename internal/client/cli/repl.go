package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Navigate(ctx context.Context, path string) error
	Back(ctx context.Context) error
	More(ctx context.Context) error
	Refresh(ctx context.Context) error
	Comment(ctx context.Context, text string) error
	Delete(ctx context.Context) error
	ToggleDarkMode(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: login (/auth), darkmode, exit"
	helpSignedIn  = "Available commands: / (workouts), /motivation, /ranking, /workout/<id>, " +
		"/add-workout, /add-post, /edit-profile, more, refresh, back, comment <text>, delete, " +
		"darkmode, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the GymFeed client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. A token starting with "/" is a route and is
// opened with Navigate. The loop exits on EOF or when the user types "exit"
// or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	printLine := func(args ...any) { fmt.Fprintln(out, args...) }

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "%s > ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if strings.HasPrefix(cmd, "/") {
			_ = a.Navigate(ctx, cmd)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printLine(helpSignedIn)
			} else {
				printLine(helpSignedOut)
			}

		case "login":
			_ = a.Navigate(ctx, "/auth")

		case "logout":
			_ = a.Navigate(ctx, "/logout")

		case "more", "m":
			_ = a.More(ctx)

		case "refresh", "r":
			_ = a.Refresh(ctx)

		case "back", "b":
			_ = a.Back(ctx)

		case "comment":
			_ = a.Comment(ctx, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd)))

		case "delete":
			_ = a.Delete(ctx)

		case "darkmode":
			_ = a.ToggleDarkMode(ctx)

		case "exit", "quit":
			printLine("Bye!")
			return

		default:
			printLine("Unknown command:", cmd)
		}
	}
}
