package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

type command func(ctx context.Context, args []string) error

// execIface is the command surface the REPL dispatches to. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Post(ctx context.Context, args []string) error
	Get(ctx context.Context, args []string) error
	Put(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Latest(ctx context.Context, args []string) error
	Trace(ctx context.Context, args []string) error
	Grant(ctx context.Context, args []string) error
	Revoke(ctx context.Context, args []string) error
	Access(ctx context.Context, args []string) error
	Publish(ctx context.Context, args []string) error
	Published(ctx context.Context, args []string) error
}

var usage = map[string]string{
	"get":    "get <guid>",
	"put":    "put <guid>",
	"latest": "latest <guid>",
	"trace":  "trace <guid>",
	"grant":  "grant <guid> <user>...",
	"revoke": "revoke <guid> <user>",
	"access": "access <guid>",
}

// runREPL reads commands from scanner until EOF, "exit" or "quit".
// Commands other than help, register, login and exit need a logged-in
// user. Command errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	public := map[string]command{
		"register": a.Register,
		"login":    a.Login,
	}
	private := map[string]command{
		"logout":    a.Logout,
		"post":      a.Post,
		"get":       a.Get,
		"put":       a.Put,
		"l":         a.List,
		"list":      a.List,
		"latest":    a.Latest,
		"trace":     a.Trace,
		"grant":     a.Grant,
		"revoke":    a.Revoke,
		"access":    a.Access,
		"publish":   a.Publish,
		"published": a.Published,
	}

	for {
		printlnFn(fmt.Sprintf("dl %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: post, get, put, (l)ist, latest, trace, grant, revoke, access, publish, published [mine], logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		fn, ok := public[cmd]
		if !ok {
			fn, ok = private[cmd]
			if ok && !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
		}
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err := fn(ctx, args); err != nil {
			if errors.Is(err, errUsage) {
				printlnFn("Usage:", usage[cmd])
				continue
			}
			printlnFn("Error:", err)
		}
	}
}
