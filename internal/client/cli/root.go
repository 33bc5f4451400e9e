package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// getSimpleText, getPassword, getMultiline and confirm are indirections used
// to facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline
var confirm = Confirm

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Nickname)
}

// Root runs the command loop until EOF or "exit".
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to amumal (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "amumal %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: feed, more, open <id>, write, edit <id>, profile, password, logout, unregister, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, signup, exit")
			}

		case "login":
			a.submitLogin(ctx)
		case "signup":
			a.submitSignup(ctx)
		case "feed":
			a.showFeed(ctx)
		case "more":
			a.moreFeed(ctx)
		case "open":
			id, ok := parseID(a, args, "open <id>")
			if ok {
				a.openPost(ctx, id)
			}
		case "write":
			a.writePost(ctx)
		case "edit":
			id, ok := parseID(a, args, "edit <id>")
			if ok {
				a.editPost(ctx, id)
			}
		case "profile":
			a.editProfile(ctx)
		case "password":
			a.editPassword(ctx)
		case "logout":
			a.logout(ctx)
		case "unregister":
			a.unregister(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func parseID(a *App, args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(a.out, "Invalid id:", args[0])
		return 0, false
	}
	return id, true
}

// requireLogin announces the login requirement for authenticated commands.
func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return false
	}
	return true
}
