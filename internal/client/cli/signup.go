package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/zarclabs/zarc-auth/internal/client/client"
	"github.com/zarclabs/zarc-auth/internal/common"
)

func (a *App) SignUp(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	resp, err := a.api.SignUp(ctx, client.SignUpRequest{
		Email:    email,
		Username: username,
		Password: string(password),
	})
	if err != nil {
		log.Printf("Signup failed: %v", err)
		return
	}

	a.accessToken = resp.AccessToken
	a.userName = resp.User.Username

	fmt.Printf("Registered as %s (id=%d)\n", resp.User.Username, resp.User.ID)
}
