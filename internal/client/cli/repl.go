package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Confirm(ctx context.Context, yes bool) error
	Back(ctx context.Context) error
	Profile(ctx context.Context) error
	SetField(ctx context.Context, field, value string) error
	SaveProfile(ctx context.Context) error
	Search(ctx context.Context) error
	Favorites(ctx context.Context) error
	Favorite(ctx context.Context, id string) error
	Unfavorite(ctx context.Context, id string) error
	Call(ctx context.Context, id string) error
	Book(ctx context.Context, id string) error
	DismissDialog(ctx context.Context) error
	Income(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the jobapp CLI.
//
// It reads a line from in, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                      — show available commands
//	  - login                     — authenticate
//	  - exit | quit               — leave the program
//
//	Logged in:
//	  - search | list             — list all postings
//	  - favorites                 — list favorite postings
//	  - fav <id> / unfav <id>     — toggle / remove a favorite
//	  - call <id>                 — show the employer's phone
//	  - book <id>                 — book the shift
//	  - ok                        — close the current dialog
//	  - profile                   — open the profile screen
//	  - set name|email|phone <v>  — edit the profile draft
//	  - save                      — save the profile draft
//	  - income                    — show balance and transactions
//	  - back                      — previous screen
//	  - logout, then yes | no     — log out after confirmation
//	  - exit | quit               — leave the program
//
// Errors returned by handlers are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("jobapp%s> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: search, favorites, fav <id>, unfav <id>, call <id>, book <id>, ok, " +
					"profile, set name|email|phone <value>, save, income, back, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "yes", "y":
			cmdErr = a.Confirm(ctx, true)

		case "no", "n":
			cmdErr = a.Confirm(ctx, false)

		case "back":
			cmdErr = a.Back(ctx)

		case "profile":
			cmdErr = a.Profile(ctx)

		case "set":
			if len(args) < 2 {
				printlnFn("Usage: set name|email|phone <value>")
				continue
			}
			cmdErr = a.SetField(ctx, args[0], strings.Join(args[1:], " "))

		case "save":
			cmdErr = a.SaveProfile(ctx)

		case "search", "list", "l":
			cmdErr = a.Search(ctx)

		case "favorites":
			cmdErr = a.Favorites(ctx)

		case "fav", "unfav", "call", "book":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			cmdErr = dispatchByID(ctx, a, cmd, args[0])

		case "ok":
			cmdErr = a.DismissDialog(ctx)

		case "income":
			cmdErr = a.Income(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", userMessage(cmdErr))
		}
	}
}

func dispatchByID(ctx context.Context, a execIface, cmd, id string) error {
	switch cmd {
	case "fav":
		return a.Favorite(ctx, id)
	case "unfav":
		return a.Unfavorite(ctx, id)
	case "call":
		return a.Call(ctx, id)
	default:
		return a.Book(ctx, id)
	}
}
