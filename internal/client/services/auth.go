package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gymfeed/internal/client/client"
	"github.com/dmitrijs2005/gymfeed/internal/client/models"
	"github.com/dmitrijs2005/gymfeed/internal/client/session"
	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: obtain a token, then fetch and cache the profile; the session
//     ends up either fully signed in or signed out.
//   - Restore: validate a persisted session by re-fetching the profile.
//   - UpdateProfile: change username/password and/or the profile picture,
//     then refresh the cached profile.
//   - Logout: clear the session.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Restore(ctx context.Context) error
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate, pic *Upload) error
	Logout(ctx context.Context)
}

type authService struct {
	client      client.Client
	session     *session.Store
	deviceToken string
	log         logging.Logger
}

// NewAuthService constructs an AuthService bound to the API client and the
// session store. A non-empty deviceToken is registered after every login.
func NewAuthService(c client.Client, s *session.Store, deviceToken string, log logging.Logger) AuthService {
	return &authService{client: c, session: s, deviceToken: deviceToken, log: log.With("component", "auth")}
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	a.session.SetToken(ctx, token)

	if err := a.session.RefreshProfile(ctx, a.client); err != nil {
		if !errors.Is(err, session.ErrStaleResponse) && a.session.LogoutIfToken(ctx, token) {
			a.log.Warn(ctx, "profile unavailable after login, signed out", "err", err)
		}
		return fmt.Errorf("profile error: %w", err)
	}

	a.log.Info(ctx, "signed in", "username", username)
	a.registerDevice(ctx, token)
	return nil
}

// registerDevice is best effort: failures are logged and dropped.
func (a *authService) registerDevice(ctx context.Context, token string) {
	if a.deviceToken == "" {
		return
	}
	if err := a.client.UpdateDeviceToken(ctx, token, a.deviceToken); err != nil {
		a.log.Warn(ctx, "device token registration failed", "err", err)
	}
}

func (a *authService) Restore(ctx context.Context) error {
	return a.session.RefreshProfile(ctx, a.client)
}

func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate, pic *Upload) error {
	token := a.session.State().Token
	if token == "" {
		return session.ErrNoToken
	}
	if upd == (models.ProfileUpdate{}) && pic == nil {
		return nil
	}

	if upd != (models.ProfileUpdate{}) {
		if err := a.client.UpdateProfile(ctx, token, upd); err != nil {
			return fmt.Errorf("update profile error: %w", a.expire(ctx, token, err))
		}
	}
	if pic != nil {
		if err := a.client.UpdateProfilePic(ctx, token, pic.Name, pic.Body); err != nil {
			return fmt.Errorf("update profile picture error: %w", a.expire(ctx, token, err))
		}
	}
	return a.session.RefreshProfile(ctx, a.client)
}

// expire signs out when the backend rejected token and it is still the
// session token.
func (a *authService) expire(ctx context.Context, token string, err error) error {
	if errors.Is(err, client.ErrUnauthorized) && a.session.LogoutIfToken(ctx, token) {
		a.log.Warn(ctx, "request rejected, signed out", "err", err)
	}
	return err
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	a.log.Info(ctx, "signed out")
}
