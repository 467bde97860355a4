package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Ask(ctx context.Context, question string) error
	History(ctx context.Context) error
	Stats(ctx context.Context) error
	Sync(ctx context.Context) error
	Load(ctx context.Context, code string) error
	Reset(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the legalassist CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit". When interactive is false (stdin is piped), the prompt
// is suppressed.
//
// Commands:
//
//	ask <question>   — submit a legal question (prompts when no text given)
//	history          — show prior successful exchanges, newest first
//	stats            — show per-code corpus statistics
//	sync             — force a corpus refresh now
//	load <code>      — refresh one legal code (GK, TK, UK, KoAP, SK, ZPP)
//	reset            — wipe local state (history, sync timestamp, client id)
//	help             — show available commands
//	exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, interactive bool) {
	for {
		if interactive {
			printlnFn(fmt.Sprintf("legal %s> ", statusFn()))
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: ask <question>, history, stats, sync, load <code>, reset, exit")

		case "ask":
			_ = a.Ask(ctx, strings.Join(args, " "))
		case "history":
			_ = a.History(ctx)
		case "stats":
			_ = a.Stats(ctx)
		case "sync":
			_ = a.Sync(ctx)
		case "load":
			if len(args) == 0 {
				printlnFn("Usage: load <code>")
				continue
			}
			_ = a.Load(ctx, args[0])
		case "reset":
			_ = a.Reset(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
