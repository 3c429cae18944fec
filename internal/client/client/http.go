package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gymfeed/internal/client/models"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the API rooted at baseURL, e.g.
// "http://localhost:1447/v1".
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(ctx, req, out)
}

// upload posts r as a single multipart file part named field.
func (c *HTTPClient) upload(ctx context.Context, method, path, token, field, name string, r io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	return c.send(ctx, req, nil)
}

func (c *HTTPClient) send(ctx context.Context, req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if json.Unmarshal(b, &payload) == nil && len(payload.Message) > 0 {
		apiErr.Message = messageText(payload.Message)
	}
	return apiErr
}

// messageText accepts the string form and the list form ("message": [..])
// some validation layers produce.
func messageText(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return strings.Join(list, "; ")
	}
	return ""
}

func pageQuery(limit, skip int) string {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))
	return "?" + q.Encode()
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	req := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &APIError{Status: http.StatusUnauthorized, Message: "empty token in login response"}
	}
	return resp.Token, nil
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, upd models.ProfileUpdate) error {
	return c.do(ctx, http.MethodPatch, "/auth/profile", token, upd, nil)
}

func (c *HTTPClient) UpdateProfilePic(ctx context.Context, token, name string, r io.Reader) error {
	return c.upload(ctx, http.MethodPatch, "/auth/profile-pic", token, "file", name, r)
}

func (c *HTTPClient) Workouts(ctx context.Context, token string, limit, skip int) ([]models.Workout, error) {
	var items []models.Workout
	if err := c.do(ctx, http.MethodGet, "/workout"+pageQuery(limit, skip), token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) Workout(ctx context.Context, token string, id int) (*models.WorkoutDetail, error) {
	var w models.WorkoutDetail
	if err := c.do(ctx, http.MethodGet, "/workout/"+strconv.Itoa(id), token, nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *HTTPClient) CreateWorkout(ctx context.Context, token string, data models.WorkoutData) (*models.Workout, error) {
	var w models.Workout
	if err := c.do(ctx, http.MethodPost, "/workout", token, data, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *HTTPClient) DeleteWorkout(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, "/workout/"+strconv.Itoa(id), token, nil, nil)
}

func (c *HTTPClient) CommentWorkout(ctx context.Context, token string, id int, text string) error {
	body := struct {
		Text string `json:"text"`
	}{text}
	return c.do(ctx, http.MethodPost, "/comment/workout/"+strconv.Itoa(id), token, body, nil)
}

func (c *HTTPClient) UploadWorkoutMedia(ctx context.Context, token string, id int, name string, r io.Reader) error {
	return c.upload(ctx, http.MethodPost, "/workout/"+strconv.Itoa(id)+"/media", token, "files", name, r)
}

func (c *HTTPClient) Posts(ctx context.Context, token string, limit, skip int) ([]models.Post, error) {
	var items []models.Post
	if err := c.do(ctx, http.MethodGet, "/post"+pageQuery(limit, skip), token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, token string, data models.PostData) (*models.Post, error) {
	var p models.Post
	if err := c.do(ctx, http.MethodPost, "/post", token, data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, "/post/"+strconv.Itoa(id), token, nil, nil)
}

func (c *HTTPClient) UploadPostMedia(ctx context.Context, token string, id int, name string, r io.Reader) error {
	return c.upload(ctx, http.MethodPost, "/media/post/"+strconv.Itoa(id), token, "file", name, r)
}

func (c *HTTPClient) Ranking(ctx context.Context, token string) ([]models.RankingEntry, error) {
	var rows []models.RankingEntry
	if err := c.do(ctx, http.MethodGet, "/ranking", token, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *HTTPClient) UpdateDeviceToken(ctx context.Context, token, deviceToken string) error {
	body := struct {
		Token string `json:"token"`
	}{deviceToken}
	return c.do(ctx, http.MethodPatch, "/device-token", token, body, nil)
}
