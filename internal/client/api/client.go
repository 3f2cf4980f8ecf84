// Package api is the profile access layer: a stateless façade translating
// domain operations into HTTP calls against the folio server, scoped to the
// signed-in identity.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ntmai/folio-api/pkg/apperror"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Authenticated reports whether an identity is currently resolvable.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *Client) SignIn(ctx context.Context, email, password string) error {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", credentials{Email: email, Password: password}, &resp); err != nil {
		return err
	}
	c.token = resp.AccessToken
	return nil
}

func (c *Client) SignUp(ctx context.Context, email, password string) error {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", credentials{Email: email, Password: password}, &resp); err != nil {
		return err
	}
	c.token = resp.AccessToken
	return nil
}

func (c *Client) SignOut(ctx context.Context) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// LoadComplete fetches the whole aggregate in one call. On any failure the
// caller gets an error and no partial result.
func (c *Client) LoadComplete(ctx context.Context) (*CompleteProfile, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	var cp CompleteProfile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &cp); err != nil {
		return nil, err
	}
	if cp.Projects == nil {
		cp.Projects = []Project{}
	}
	if cp.Experiences == nil {
		cp.Experiences = []Experience{}
	}
	return &cp, nil
}

func (c *Client) UpsertBio(ctx context.Context, bio string) (*Profile, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	var p Profile
	if err := c.do(ctx, http.MethodPut, "/api/profile/bio", map[string]string{"bio": bio}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProject(ctx context.Context, form ProjectForm) (*Project, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	var p Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", form, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*Project, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	var p Project
	if err := c.do(ctx, http.MethodPut, "/api/projects/"+id, patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil)
}

func (c *Client) CreateExperience(ctx context.Context, form ExperienceForm) (*Experience, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	var e Experience
	if err := c.do(ctx, http.MethodPost, "/api/experiences", form, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) UpdateExperience(ctx context.Context, id string, patch ExperiencePatch) (*Experience, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	var e Experience
	if err := c.do(ctx, http.MethodPut, "/api/experiences/"+id, patch, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) DeleteExperience(ctx context.Context, id string) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/api/experiences/"+id, nil, nil)
}

func (c *Client) requireIdentity() error {
	if c.token == "" {
		return apperror.NewUnauthorized("no identity: sign in first", nil)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.NewInternal("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.NewInternal("decode response body", err)
	}
	return nil
}

// errorFromResponse rebuilds the error taxonomy from the response status,
// keeping the server's message as detail.
func (c *Client) errorFromResponse(resp *http.Response) error {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	detail := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			detail = body.Message
		} else if body.Error != "" {
			detail = body.Error
		}
	}
	base := apperror.FromHTTPStatus(resp.StatusCode)
	return apperror.NewAppError(base, detail, fmt.Sprintf("server responded %d", resp.StatusCode), nil)
}
