package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/loankeeper/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Pay(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Achievements(ctx context.Context, args []string) error
	Suggest(ctx context.Context) error
	Report(ctx context.Context, args []string) error
	Timeline(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: (l)ist, add, edit <loan>, pay <loan> [amount], delete <loan>, " +
		"stats, achievements [rebuild], suggest, report [YYYY-MM], timeline, logout, help, exit"
)

// runREPL starts a simple read–eval–print loop for the LoanKeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help               show available commands
//	  - register           create an account
//	  - login              authenticate
//	  - exit | quit        leave the program
//
//	Logged in:
//	  - l | list           list loans
//	  - add                add a loan
//	  - edit <loan>        change a loan's fields
//	  - pay <loan> [amt]   record a payment
//	  - delete <loan>      remove a loan and its payments
//	  - stats              totals and overall progress
//	  - achievements       earned achievements ("rebuild" re-derives them)
//	  - suggest            payoff suggestions
//	  - report [YYYY-MM]   monthly report
//	  - timeline           every payment, newest first
//	  - logout             log out
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("lk> %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "register":
			reportErr(a.Register(ctx))
			continue
		case "login":
			reportErr(a.Login(ctx))
			continue
		}

		if !a.isLoggedIn() {
			if isLoggedInCommand(cmd) {
				reportErr(common.ErrNotLoggedIn)
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "l", "list":
			reportErr(a.List(ctx))
		case "add":
			reportErr(a.Add(ctx))
		case "edit":
			reportErr(a.Edit(ctx, args))
		case "pay":
			reportErr(a.Pay(ctx, args))
		case "delete":
			reportErr(a.Delete(ctx, args))
		case "stats":
			reportErr(a.Stats(ctx))
		case "achievements":
			reportErr(a.Achievements(ctx, args))
		case "suggest":
			reportErr(a.Suggest(ctx))
		case "report":
			reportErr(a.Report(ctx, args))
		case "timeline":
			reportErr(a.Timeline(ctx))
		case "logout":
			reportErr(a.Logout(ctx))
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isLoggedInCommand(cmd string) bool {
	switch cmd {
	case "l", "list", "add", "edit", "pay", "delete", "stats", "achievements",
		"suggest", "report", "timeline", "logout":
		return true
	}
	return false
}

// reportErr prints a user-facing message for err, if any.
func reportErr(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, common.ErrNotLoggedIn) {
		printlnFn("Please login first (type 'login' or 'register').")
		return
	}
	printlnFn("Error:", err.Error())
}
