package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/loankeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirmation = GetConfirmation

// Register prompts for a username, display name and password, creates the
// account and logs the new user in.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Register(ctx, userName, string(password), name)
	if err != nil {
		return err
	}

	a.session = s
	a.lastList = nil
	fmt.Fprintf(a.out, "Welcome, %s! Your account has been created.\n", s.Name)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, userName, string(password))
	if err != nil {
		return err
	}

	a.session = s
	a.lastList = nil
	fmt.Fprintf(a.out, "Welcome back, %s!\n", s.Name)
	return nil
}

// Logout ends the session. It is safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.session = nil
	a.lastList = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
