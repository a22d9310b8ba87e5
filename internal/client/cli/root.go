package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to authctl (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("authctl %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: whoami, token, logout, exit")
			} else {
				fmt.Println("Available commands: signup, signin, exit")
			}
		case "signup":
			a.SignUp(ctx)
		case "signin", "login":
			a.SignIn(ctx)
		case "whoami":
			a.WhoAmI(ctx)
		case "token":
			if a.isLoggedIn() {
				fmt.Println(a.accessToken)
			} else {
				fmt.Println("Not signed in")
			}
		case "logout":
			a.accessToken = ""
			a.userName = ""
			fmt.Println("Signed out")
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
