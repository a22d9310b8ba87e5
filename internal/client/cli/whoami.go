package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) WhoAmI(ctx context.Context) {

	if !a.isLoggedIn() {
		fmt.Println("Not signed in.")
		return
	}

	user, err := a.api.Me(ctx, a.accessToken)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Printf("id:       %d\n", user.ID)
	fmt.Printf("email:    %s\n", user.Email)
	fmt.Printf("username: %s\n", user.Username)
	if user.FirstName != nil || user.LastName != nil {
		fmt.Printf("name:     %s %s\n", strOrEmpty(user.FirstName), strOrEmpty(user.LastName))
	}
	if user.Company != nil {
		fmt.Printf("company:  %s\n", *user.Company)
	}
	if user.Industry != nil {
		fmt.Printf("industry: %s\n", *user.Industry)
	}
	fmt.Printf("created:  %s\n", user.CreatedAt.Format("2006-01-02 15:04:05"))
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
