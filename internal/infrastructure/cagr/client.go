// Package cagr drives an authenticated session against the academic records
// portal: CAS form login, survey-wall bypass, transcript scraping.
package cagr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"GPAConverter/internal/config"
)

const userAgent = "GPAConverter/1.0"

// ErrInvalidCredentials reports a login the portal rejected.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Client holds the portal session. The cookie jar carries the CAS ticket
// between login and the transcript request.
type Client struct {
	cfg    config.PortalConfig
	client *http.Client
	logger *slog.Logger
}

// New wires an HTTP session; a nil client gets a default with the configured
// timeout. The client is given a cookie jar if it has none.
func New(cfg config.PortalConfig, client *http.Client, log *slog.Logger) *Client {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout()}
	}
	if client.Jar == nil {
		jar, _ := cookiejar.New(nil)
		client.Jar = jar
	}
	return &Client{cfg: cfg, client: client, logger: log}
}

// Login authenticates the session. The portal embeds a one-time execution
// token in the login form, which must be echoed back with the credentials.
// A 401 response means the portal rejected the credentials.
func (c *Client) Login(ctx context.Context, username, password string) error {
	token, err := c.executionToken(ctx)
	if err != nil {
		return fmt.Errorf("login token: %w", err)
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("admin", "0")
	form.Set("execution", token)
	form.Set("_eventId", "submit")

	resp, err := c.postForm(ctx, c.cfg.LoginURL, form)
	if err != nil {
		return fmt.Errorf("submit login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidCredentials
	}
	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("login error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	c.debug("login accepted", "user", username)
	return c.bypassSurveyWall(ctx)
}

func (c *Client) executionToken(ctx context.Context) (string, error) {
	doc, err := c.fetchDocument(ctx, c.cfg.LoginURL)
	if err != nil {
		return "", err
	}

	token, ok := doc.Find(`input[name="execution"][type="hidden"]`).First().Attr("value")
	if !ok || token == "" {
		return "", fmt.Errorf("login page has no execution field")
	}
	return token, nil
}

// bypassSurveyWall dismisses the questionnaire frame the portal places in
// front of the student modules after login. The payload is the frame's
// fixed JSF form state; the response content does not matter.
func (c *Client) bypassSurveyWall(ctx context.Context) error {
	form := url.Values{}
	form.Set("j_id20", "j_id20")
	form.Set("j_id20:j_id21", "Clique aqui para voltar para o CAGR")
	form.Set("javax.faces.ViewState", "j_id1")

	resp, err := c.postForm(ctx, c.cfg.WallURL, form)
	if err != nil {
		return fmt.Errorf("bypass survey wall: %w", err)
	}
	resp.Body.Close()

	c.debug("survey wall bypassed")
	return nil
}

func (c *Client) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("portal returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func (c *Client) postForm(ctx context.Context, pageURL string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pageURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.client.Do(req)
}

func (c *Client) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Client) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
