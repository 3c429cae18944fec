package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gymfeed/internal/client/format"
	"github.com/dmitrijs2005/gymfeed/internal/client/guard"
	"github.com/dmitrijs2005/gymfeed/internal/client/models"
)

// ErrNoWorkout is returned by workout commands used outside /workout/{id}.
var ErrNoWorkout = errors.New("no workout on screen")

func (a *App) workoutScreen(ctx context.Context, params map[string]string, _ guard.Location) error {
	id, err := strconv.Atoi(params["id"])
	if err != nil || id <= 0 {
		a.println(a.theme.Error.Render("Invalid workout id: " + params["id"]))
		return fmt.Errorf("invalid workout id %q", params["id"])
	}

	a.workout = nil
	w, err := a.content.Workout(ctx, id)
	if err != nil {
		return a.fail(ctx, err, "Failed to load the workout.")
	}
	a.workout = w
	a.renderWorkoutDetail(w)
	return nil
}

func (a *App) renderWorkoutDetail(w *models.WorkoutDetail) {
	a.renderWorkout(w.Workout)
	if !w.StartDate.IsZero() {
		a.println(a.theme.Muted.Render(fmt.Sprintf("  %s - %s",
			format.Clock(w.StartDate.Local()), format.Clock(w.EndDate.Local()))))
	}

	a.println()
	if len(w.Comments) == 0 {
		a.println(a.theme.Muted.Render("No comments yet. Type 'comment <text>' to add one."))
		return
	}
	a.println(a.theme.Title.Render(fmt.Sprintf("Comments (%d)", len(w.Comments))))
	for _, c := range w.Comments {
		a.println("  " + a.theme.Accent.Render(c.User.Username) + " " +
			a.theme.Muted.Render(format.Relative(c.CreatedAt, a.now())) + ": " + c.Text)
	}
}

// Comment adds text as a comment to the workout on screen.
func (a *App) Comment(ctx context.Context, text string) error {
	if a.workout == nil {
		a.println("Open a workout first, e.g. /workout/1")
		return ErrNoWorkout
	}
	if text == "" {
		a.println("Usage: comment <text>")
		return nil
	}

	w, err := a.content.Comment(ctx, a.workout.ID, text)
	if err != nil {
		return a.fail(ctx, err, "Failed to add the comment.")
	}
	a.workout = w
	a.renderWorkoutDetail(w)
	return nil
}

// Delete removes the workout on screen, if it belongs to the signed-in user.
func (a *App) Delete(ctx context.Context) error {
	if a.workout == nil {
		a.println("Open a workout first, e.g. /workout/1")
		return ErrNoWorkout
	}
	if u := a.session.State().User; u == nil || u.ID != a.workout.User.ID {
		a.println(a.theme.Error.Render("You can only delete your own workouts."))
		return errors.New("not the owner")
	}

	ok, err := getConfirm(a.reader, "Delete this workout?", a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.content.DeleteWorkout(ctx, a.workout.ID); err != nil {
		return a.fail(ctx, err, "Failed to delete the workout.")
	}
	a.workout = nil
	a.println(a.theme.OK.Render("Workout deleted."))
	return a.redirect(ctx, "/")
}
