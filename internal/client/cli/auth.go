package cli

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/gymfeed/internal/client/guard"
)

// getSimpleText, getPassword and getConfirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getConfirm    = GetConfirm
	getMultiline  = GetMultiline
	getList       = GetList
)

// authScreen asks for credentials and signs in. On success the user is sent
// to the route the guard recorded, or to the workout feed.
func (a *App) authScreen(ctx context.Context, _ map[string]string, loc guard.Location) error {
	a.println(a.theme.Title.Render("Sign in to GymFeed"))

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	if username == "" || password == "" {
		a.println(a.theme.Error.Render("Username and password are required."))
		return errors.New("missing credentials")
	}

	if err := a.auth.Login(ctx, username, password); err != nil {
		a.log.Warn(ctx, "login failed", "err", err)
		a.printErr(err, "Login failed")
		return err
	}

	a.println(a.theme.OK.Render("Welcome, " + a.session.State().User.Username + "!"))
	return a.redirect(ctx, guard.FromState(loc.State))
}

// logoutScreen asks for confirmation, signs out and goes to /auth.
func (a *App) logoutScreen(ctx context.Context, _ map[string]string, _ guard.Location) error {
	if a.session.State().Token != "" {
		ok, err := getConfirm(a.reader, "Do you really want to sign out?", a.out)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !ok {
			return a.Back(ctx)
		}
		a.auth.Logout(ctx)
	}
	a.println(a.theme.Muted.Render("Signed out."))
	return a.redirect(ctx, guard.LoginPath)
}
