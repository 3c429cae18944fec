package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/gymfeed/internal/client/client"
	"github.com/dmitrijs2005/gymfeed/internal/client/guard"
	"github.com/dmitrijs2005/gymfeed/internal/client/models"
	"github.com/dmitrijs2005/gymfeed/internal/client/services"
)

// ErrPasswordMismatch is returned when the two password entries differ.
var ErrPasswordMismatch = errors.New("passwords do not match")

func (a *App) editProfileScreen(ctx context.Context, _ map[string]string, _ guard.Location) error {
	a.println(a.theme.Title.Render("Edit profile"))

	var upd models.ProfileUpdate

	username, err := getSimpleText(a.reader, "New username (empty to keep "+a.session.State().User.Username+")", a.out)
	if err != nil {
		return err
	}
	upd.Username = username

	change, err := getConfirm(a.reader, "Change password?", a.out)
	if err != nil {
		return err
	}
	if change {
		pw, err := getPassword(a.reader, "New password", a.out)
		if err != nil {
			return err
		}
		again, err := getPassword(a.reader, "Confirm password", a.out)
		if err != nil {
			return err
		}
		if pw != again {
			a.println(a.theme.Error.Render("Passwords do not match."))
			return ErrPasswordMismatch
		}
		upd.Password = pw
	}

	picPath, err := getSimpleText(a.reader, "Profile picture file (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var pic *services.Upload
	if picPath != "" {
		f, err := openFile(picPath)
		if err != nil {
			a.println(a.theme.Error.Render("Cannot open " + picPath))
			return fmt.Errorf("open %s: %w", picPath, err)
		}
		defer f.Close()
		pic = &services.Upload{Name: filepath.Base(picPath), Body: f}
	}

	if upd == (models.ProfileUpdate{}) && pic == nil {
		a.println(a.theme.Muted.Render("Nothing to change."))
		return a.Back(ctx)
	}

	if err := a.auth.UpdateProfile(ctx, upd, pic); err != nil {
		return a.fail(ctx, err, client.GenericErrorMessage)
	}

	a.println(a.theme.OK.Render("Profile updated."))
	return a.redirect(ctx, "/")
}
