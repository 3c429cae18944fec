package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/gymfeed/internal/client/guard"
	"github.com/dmitrijs2005/gymfeed/internal/client/models"
	"github.com/dmitrijs2005/gymfeed/internal/client/services"
)

// LongWorkoutMinutes is the duration above which logging a workout needs an
// explicit confirmation.
const LongWorkoutMinutes = 180

// maxMediaFiles is the number of files accepted per workout or post.
const maxMediaFiles = 5

// openFile is a test seam for os.Open.
var openFile = func(name string) (*os.File, error) { return os.Open(name) }

func (a *App) addWorkoutScreen(ctx context.Context, _ map[string]string, _ guard.Location) error {
	a.println(a.theme.Title.Render("Log a workout"))

	raw, err := getSimpleText(a.reader, "Duration (minutes)", a.out)
	if err != nil {
		return err
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		a.println(a.theme.Error.Render("Please enter the duration in minutes."))
		return fmt.Errorf("invalid duration %q", raw)
	}

	if minutes > LongWorkoutMinutes {
		ok, err := getConfirm(a.reader, fmt.Sprintf("%d minutes is more than %d hours. Log it anyway?", minutes, LongWorkoutMinutes/60), a.out)
		if err != nil || !ok {
			a.println(a.theme.Muted.Render("Cancelled."))
			return err
		}
	}

	notes, err := getSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}

	files, closeFiles, err := a.askMedia()
	if err != nil {
		return err
	}
	defer closeFiles()

	w, err := a.content.AddWorkout(ctx, models.WorkoutData{DurationMin: minutes, Notes: notes}, files)
	if err != nil {
		if w == nil {
			return a.fail(ctx, err, "Failed to log the workout.")
		}
		a.printErr(err, "Some media could not be uploaded.")
	}

	a.println(a.theme.OK.Render("Workout logged!"))
	return a.redirect(ctx, "/")
}

func (a *App) addPostScreen(ctx context.Context, _ map[string]string, _ guard.Location) error {
	a.println(a.theme.Title.Render("New post"))

	text, err := getMultiline(a.reader, "Text", a.out)
	if err != nil {
		return err
	}

	files, closeFiles, err := a.askMedia()
	if err != nil {
		return err
	}
	defer closeFiles()

	if text == "" && len(files) == 0 {
		a.println(a.theme.Error.Render("A post needs text or media."))
		return errors.New("empty post")
	}

	ok, err := getConfirm(a.reader, "Publish this post?", a.out)
	if err != nil || !ok {
		a.println(a.theme.Muted.Render("Cancelled."))
		return err
	}

	if _, err := a.content.AddPost(ctx, models.PostData{Text: text}, files); err != nil {
		return a.fail(ctx, err, "Failed to publish the post.")
	}

	a.println(a.theme.OK.Render("Post published!"))
	return a.redirect(ctx, "/motivation")
}

// askMedia reads media file paths and opens them. The returned func closes
// every opened file.
func (a *App) askMedia() ([]services.Upload, func(), error) {
	paths, err := getList(a.reader, fmt.Sprintf("Media files, up to %d", maxMediaFiles), a.out)
	if err != nil {
		return nil, func() {}, err
	}
	if len(paths) > maxMediaFiles {
		a.println(a.theme.Muted.Render(fmt.Sprintf("Only the first %d files are used.", maxMediaFiles)))
		paths = paths[:maxMediaFiles]
	}

	var (
		files  []services.Upload
		opened []*os.File
	)
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, p := range paths {
		f, err := openFile(p)
		if err != nil {
			closeAll()
			a.println(a.theme.Error.Render("Cannot open " + p))
			return nil, func() {}, fmt.Errorf("open %s: %w", p, err)
		}
		opened = append(opened, f)
		files = append(files, services.Upload{Name: filepath.Base(p), Body: f})
	}
	return files, closeAll, nil
}
