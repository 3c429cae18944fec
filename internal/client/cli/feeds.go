package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gymfeed/internal/client/feed"
	"github.com/dmitrijs2005/gymfeed/internal/client/format"
	"github.com/dmitrijs2005/gymfeed/internal/client/guard"
	"github.com/dmitrijs2005/gymfeed/internal/client/models"
)

func (a *App) workoutFeedScreen(ctx context.Context, _ map[string]string, _ guard.Location) error {
	a.renderProfileCard()
	a.active = feedWorkouts
	a.shown = 0
	a.workouts.Remount()
	return a.loadWorkouts(ctx)
}

func (a *App) postFeedScreen(ctx context.Context, _ map[string]string, _ guard.Location) error {
	a.println(a.theme.Title.Render("Motivation"))
	a.active = feedPosts
	a.shown = 0
	a.posts.Remount()
	return a.loadPosts(ctx)
}

// More loads the next page of the feed on screen.
func (a *App) More(ctx context.Context) error {
	switch a.active {
	case feedWorkouts:
		if !a.workouts.Snapshot().HasMore {
			a.println(a.theme.Muted.Render("No more workouts."))
			return nil
		}
		return a.loadWorkouts(ctx)
	case feedPosts:
		if !a.posts.Snapshot().HasMore {
			a.println(a.theme.Muted.Render("No more posts."))
			return nil
		}
		return a.loadPosts(ctx)
	}
	a.println("Nothing to load here.")
	return nil
}

// Refresh reloads the current screen.
func (a *App) Refresh(ctx context.Context) error {
	return a.redirect(ctx, a.location().Path)
}

func (a *App) loadWorkouts(ctx context.Context) error {
	err := a.workouts.LoadMore(ctx)
	if errors.Is(err, feed.ErrNotReady) {
		return nil
	}

	snap := a.workouts.Snapshot()
	if err != nil {
		return a.fail(ctx, err, snap.Err)
	}
	if len(snap.Items) == 0 {
		a.println(a.theme.Muted.Render("No workouts found."))
		return nil
	}

	for _, w := range snap.Items[a.shown:] {
		a.renderWorkout(w)
	}
	a.shown = len(snap.Items)
	a.renderFeedFooter(snap.HasMore)
	return nil
}

func (a *App) loadPosts(ctx context.Context) error {
	err := a.posts.LoadMore(ctx)
	if errors.Is(err, feed.ErrNotReady) {
		return nil
	}

	snap := a.posts.Snapshot()
	if err != nil {
		return a.fail(ctx, err, snap.Err)
	}
	if len(snap.Items) == 0 {
		a.println(a.theme.Muted.Render("No posts yet."))
		return nil
	}

	for _, p := range snap.Items[a.shown:] {
		a.renderPost(p)
	}
	a.shown = len(snap.Items)
	a.renderFeedFooter(snap.HasMore)
	return nil
}

func (a *App) renderFeedFooter(hasMore bool) {
	if hasMore {
		a.println(a.theme.Muted.Render("Type 'more' to load more."))
	} else {
		a.println(a.theme.Muted.Render("You're all caught up."))
	}
}

func (a *App) renderProfileCard() {
	u := a.session.State().User
	if u == nil {
		return
	}
	a.println(a.theme.Title.Render(u.Username) + " " + a.theme.Accent.Render(format.Points(u.Points)+" pts"))
	a.println(a.theme.Muted.Render(fmt.Sprintf("%d workouts, %d comments, member since %s",
		u.Count.Workouts, u.Count.Comments, u.CreatedAt.Format("Jan 2006"))))
	a.println()
}

func (a *App) renderWorkout(w models.Workout) {
	head := fmt.Sprintf("#%d %s", w.ID, w.User.Username)
	meta := []string{format.Relative(w.CreatedAt, a.now())}
	if d := format.Duration(w.StartDate, w.EndDate); d != "" {
		meta = append(meta, d)
	}
	meta = append(meta, fmt.Sprintf("%d pts", w.Points), fmt.Sprintf("%d comments", w.Count.Comments))

	a.println(a.theme.Title.Render(head) + "  " + a.theme.Muted.Render(strings.Join(meta, " · ")))
	if w.Notes != "" {
		a.println("  " + w.Notes)
	}
	a.renderMedia(w.Media)
}

func (a *App) renderPost(p models.Post) {
	likes := fmt.Sprintf("♥ %d", len(p.Likes))
	if u := a.session.State().User; u != nil && p.LikedBy(u.ID) {
		likes += " (you)"
	}
	a.println(a.theme.Title.Render("@"+p.User.Username) + "  " +
		a.theme.Muted.Render(format.Relative(p.CreatedAt, a.now())+" · "+likes))
	if p.Text != "" {
		for _, line := range strings.Split(p.Text, "\n") {
			a.println("  " + line)
		}
	}
	a.renderMedia(p.Media)
}

func (a *App) renderMedia(items []models.Media) {
	for _, m := range items {
		a.println("  " + a.theme.Accent.Render(m.URL))
	}
}
