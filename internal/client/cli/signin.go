package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/zarclabs/zarc-auth/internal/common"
)

func (a *App) SignIn(ctx context.Context) {

	login, err := GetSimpleText(a.reader, "Enter email or username", os.Stdout)
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

	resp, err := a.api.SignIn(ctx, login, string(password))
	if err != nil {
		log.Printf("Signin failed: %v", err)
		return
	}

	a.accessToken = resp.AccessToken
	a.userName = resp.User.Username

	fmt.Printf("Signed in as %s\n", resp.User.Username)
}
