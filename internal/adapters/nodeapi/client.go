// Package nodeapi implements the core.NodeAPI port against the remote
// job-orchestration HTTP API: cookie-session auth, JSON envelopes with a
// top-level "data" member, and TOML job specifications.
package nodeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"github.com/chainfleet/jobctl/internal/core"
	"github.com/chainfleet/jobctl/internal/domain/model"
)

const (
	// defaultSessionTTL applies when the login cookie carries no expiry.
	defaultSessionTTL = time.Hour

	// maxErrorBody bounds how much of an error response ends up in messages.
	maxErrorBody = 512
)

// Config captures the settings the client needs.
type Config struct {
	BaseURL  string
	Email    string
	Password string
	Timeout  time.Duration
	Client   *http.Client
	Logger   *slog.Logger
}

// Client talks to the remote node API. One instance is safe for the
// sequential use this tool makes of it; no internal state changes after
// construction.
type Client struct {
	baseURL  string
	email    string
	password string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

// Statically assert the port is satisfied.
var _ core.NodeAPI = (*Client)(nil)

// NewClient builds a node API client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("node api base url is required")
	}
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid node api base url %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		hc = &http.Client{Timeout: timeout, Jar: jar}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:  baseURL,
		email:    cfg.Email,
		password: cfg.Password,
		client:   hc,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Login submits the configured credentials to the session endpoint and
// derives the session credential from the first response cookie. When the
// cookie has no expiry of its own, validity defaults to one hour.
func (c *Client) Login(ctx context.Context) (model.Credential, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    c.email,
		"password": c.password,
	})
	if err != nil {
		return model.Credential{}, fmt.Errorf("encode login payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/sessions", bytes.NewReader(payload), nil)
	if err != nil {
		return model.Credential{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return model.Credential{}, &core.AuthError{Err: err}
	}
	defer closeBody(resp, c.logger)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Credential{}, &core.AuthError{
			Status: resp.StatusCode,
			Detail: bodyExcerpt(resp.Body),
		}
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return model.Credential{}, &core.AuthError{Detail: "no cookie was received in the response"}
	}

	// The first cookie is the session cookie.
	cookie := cookies[0]
	expires := cookie.Expires
	if expires.IsZero() {
		expires = c.now().Add(defaultSessionTTL)
	}

	return model.Credential{
		CookieName: cookie.Name,
		Token:      cookie.Value,
		ExpiresAt:  expires,
	}, nil
}

type jobResource struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes"`
}

type jobListEnvelope struct {
	Data []jobResource `json:"data"`
}

// ListJobs returns all jobs known to the node.
func (c *Client) ListJobs(ctx context.Context, cred model.Credential) ([]model.Job, error) {
	const op = "error getting jobs"

	resp, err := c.doJSON(ctx, http.MethodGet, "/v2/jobs", nil, &cred, op)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp, c.logger)

	var envelope jobListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &core.ResponseFormatError{Op: op, Err: err}
	}

	jobs := make([]model.Job, 0, len(envelope.Data))
	for _, r := range envelope.Data {
		jobs = append(jobs, model.Job{ID: r.ID, Type: r.Type, Attributes: r.Attributes})
	}
	return jobs, nil
}

type createEnvelope struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// CreateJob submits a TOML job specification and returns the new job id.
func (c *Client) CreateJob(ctx context.Context, cred model.Credential, tomlSpec string) (string, error) {
	const op = "error creating job"

	payload, err := json.Marshal(map[string]string{"toml": tomlSpec})
	if err != nil {
		return "", fmt.Errorf("encode job payload: %w", err)
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/v2/jobs", bytes.NewReader(payload), &cred, op)
	if err != nil {
		return "", err
	}
	defer closeBody(resp, c.logger)

	var envelope createEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", &core.ResponseFormatError{Op: op, Err: err}
	}
	if envelope.Data.ID == "" {
		return "", &core.ResponseFormatError{Op: op, Detail: "could not extract the created job id"}
	}
	return envelope.Data.ID, nil
}

// DeleteJob deletes a job by id. A 404 counts as success so the operation is
// idempotent from the caller's perspective.
func (c *Client) DeleteJob(ctx context.Context, cred model.Credential, jobID string) error {
	const op = "error deleting job"

	req, err := c.newRequest(ctx, http.MethodDelete, "/v2/jobs/"+url.PathEscape(jobID), nil, &cred)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &core.NetworkError{Op: op, Err: err}
	}
	defer closeBody(resp, c.logger)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		c.logger.Debug("delete of unknown job treated as success", "job_id", jobID)
		return nil
	default:
		return &core.NetworkError{Op: op, Status: resp.StatusCode, Detail: bodyExcerpt(resp.Body)}
	}
}

// TriggerRun starts one execution of the job and returns the run id.
func (c *Client) TriggerRun(ctx context.Context, cred model.Credential, jobID string) (string, error) {
	op := fmt.Sprintf("error executing job %s", jobID)

	path := "/v2/jobs/" + url.PathEscape(jobID) + "/runs"
	resp, err := c.doJSON(ctx, http.MethodPost, path, strings.NewReader("{}"), &cred, op)
	if err != nil {
		return "", err
	}
	defer closeBody(resp, c.logger)

	var envelope createEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", &core.ResponseFormatError{Op: op, Err: err}
	}
	if envelope.Data.ID == "" {
		return "", &core.ResponseFormatError{Op: op, Detail: "could not get job run id from the response"}
	}
	return envelope.Data.ID, nil
}

type runListEnvelope struct {
	Data []model.JobRun `json:"data"`
}

// ListRuns returns the run records for a job.
func (c *Client) ListRuns(ctx context.Context, cred model.Credential, jobID string) ([]model.JobRun, error) {
	const op = "error getting run listing"

	path := "/v2/jobs/" + url.PathEscape(jobID) + "/runs"
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil, &cred, op)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp, c.logger)

	var envelope runListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &core.ResponseFormatError{Op: op, Err: err}
	}
	return envelope.Data, nil
}

// Ping probes the base URL. Callers treat failures as advisory.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/", nil, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &core.NetworkError{Op: "ping", Err: err}
	}
	defer closeBody(resp, c.logger)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &core.NetworkError{Op: "ping", Status: resp.StatusCode, Detail: bodyExcerpt(resp.Body)}
	}
	return nil
}

// doJSON issues a request expecting a 2xx JSON response; non-2xx statuses and
// transport failures are mapped to *core.NetworkError tagged with op.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	body io.Reader,
	cred *model.Credential,
	op string,
) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, path, body, cred)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &core.NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer closeBody(resp, c.logger)
		return nil, &core.NetworkError{Op: op, Status: resp.StatusCode, Detail: bodyExcerpt(resp.Body)}
	}
	return resp, nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	cred *model.Credential,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if cred != nil {
		req.Header.Set("Cookie", cred.CookieHeader())
	}
	return req, nil
}

func bodyExcerpt(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func closeBody(resp *http.Response, logger *slog.Logger) {
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		logger.Debug("drain response body failed", "error", err)
	}
	if err := resp.Body.Close(); err != nil {
		logger.Debug("close response body failed", "error", err)
	}
}
