package cli

import (
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

func (a *App) getStatus() string {
	cred, ok := a.session.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s)", cred.Email)
}

// Root runs the command loop. Commands that require authentication are
// rejected while logged out, and login/signup are rejected while logged
// in, mirroring the routing policy of the web client.
func (a *App) Root(ctx context.Context) {
	printlnFn("Dating-app CLI (type 'help' for commands)")

	for {
		fmt.Printf("dating %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: swipe, matches, chat <n>, profile, createprofile, editprofile, mystats, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, waitlist, join, exit")
			}

		case "exit", "quit":
			return

		case "login", "signup", "waitlist", "join":
			if a.isLoggedIn() && (cmd == "login" || cmd == "signup") {
				printlnFn("Already logged in. Use 'logout' first.")
				continue
			}
			a.dispatchPublic(ctx, cmd)

		case "swipe", "matches", "chat", "profile", "createprofile", "editprofile", "mystats", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
			a.dispatchAuthenticated(ctx, cmd, args)

		default:
			printlnFn("Unknown command (type 'help' for commands)")
		}
	}
}

func (a *App) dispatchPublic(ctx context.Context, cmd string) {
	var err error
	switch cmd {
	case "login":
		err = a.Login(ctx)
	case "signup":
		err = a.Signup(ctx)
	case "waitlist":
		err = a.WaitlistStats(ctx)
	case "join":
		err = a.JoinWaitlist(ctx)
	}
	if err != nil {
		printlnFn("Error:", err.Error())
	}
}

func (a *App) dispatchAuthenticated(ctx context.Context, cmd string, args []string) {
	var err error
	switch cmd {
	case "swipe":
		err = a.Swipe(ctx)
	case "matches":
		err = a.Matches(ctx)
	case "chat":
		err = a.Chat(ctx, args)
	case "profile":
		err = a.ShowProfile(ctx)
	case "createprofile":
		err = a.CreateProfile(ctx)
	case "editprofile":
		err = a.EditProfile(ctx)
	case "mystats":
		err = a.MyStats(ctx)
	case "logout":
		a.session.Logout(ctx)
		printlnFn("Logged out.")
	}
	if err != nil {
		printlnFn("Error:", err.Error())
	}
}
