// Package client is a Go consumer of the TrendMatch API: a thin typed HTTP
// wrapper plus the in-memory filter and sort helpers dashboards use over
// fetched collections.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trendmatch/internal/instagram"
	"trendmatch/internal/models"
)

// APIError is the error envelope returned by the server.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Client calls the TrendMatch REST API. The zero value is not usable; use New.
// Client is not safe for concurrent use while SetToken is being called.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8460").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken sets the bearer token attached to subsequent requests. An empty
// token reverts the client to anonymous.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}
		// Non-JSON error bodies keep the default message.
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

// Register creates an account and returns the issued token with the user.
func (c *Client) Register(ctx context.Context, name, email, password string, role models.Role) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     string(role),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token and the user.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCampaignInput is the body for creating a campaign.
type CreateCampaignInput struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Budget       float64   `json:"budget"`
	Requirements string    `json:"requirements"`
	Deadline     time.Time `json:"deadline"`
}

func (c *Client) CreateCampaign(ctx context.Context, in CreateCampaignInput) (*models.Campaign, error) {
	var out models.Campaign
	if err := c.do(ctx, http.MethodPost, "/api/campaigns", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCampaigns returns the role-dependent campaign list: own campaigns for a
// brand token, all active campaigns for an influencer token.
func (c *Client) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	var out []models.Campaign
	if err := c.do(ctx, http.MethodGet, "/api/campaigns", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCampaign(ctx context.Context, id uint) (*models.Campaign, error) {
	var out models.Campaign
	if err := c.do(ctx, http.MethodGet, "/api/campaigns/"+strconv.FormatUint(uint64(id), 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCampaign(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/api/campaigns/"+strconv.FormatUint(uint64(id), 10), nil, nil)
}

// Apply submits an application to a campaign.
func (c *Client) Apply(ctx context.Context, campaignID uint, message string) (*models.Application, error) {
	var out models.Application
	err := c.do(ctx, http.MethodPost, "/api/applications", map[string]any{
		"campaignId": campaignID,
		"message":    message,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MyApplications returns the influencer's applications.
func (c *Client) MyApplications(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	if err := c.do(ctx, http.MethodGet, "/api/applications/my-applications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CampaignApplications returns a campaign's applications (owning brand only).
func (c *Client) CampaignApplications(ctx context.Context, campaignID uint) ([]models.Application, error) {
	var out []models.Application
	path := "/api/applications/campaign/" + strconv.FormatUint(uint64(campaignID), 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateApplicationStatus accepts or rejects an application.
func (c *Client) UpdateApplicationStatus(ctx context.Context, id uint, status models.ApplicationStatus) (*models.Application, error) {
	var out models.Application
	path := "/api/applications/" + strconv.FormatUint(uint64(id), 10) + "/status"
	err := c.do(ctx, http.MethodPut, path, map[string]string{"status": string(status)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertInfluencerProfile creates or updates the caller's influencer profile.
func (c *Client) UpsertInfluencerProfile(ctx context.Context, profile models.InfluencerProfile) (*models.InfluencerProfile, error) {
	var out models.InfluencerProfile
	if err := c.do(ctx, http.MethodPost, "/api/influencer-profile", profile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyInfluencerProfile(ctx context.Context) (*models.InfluencerProfile, error) {
	var out models.InfluencerProfile
	if err := c.do(ctx, http.MethodGet, "/api/influencer-profile/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BrowseQuery holds the server-side influencer browse filters. Zero-valued
// fields are omitted from the query string.
type BrowseQuery struct {
	Niche        string
	MinFollowers int
	MaxFollowers int
	MinPrice     int
	MaxPrice     int
	Location     string
	Tier         models.Tier
}

func (q BrowseQuery) encode() string {
	v := url.Values{}
	if q.Niche != "" {
		v.Set("niche", q.Niche)
	}
	if q.MinFollowers > 0 {
		v.Set("minFollowers", strconv.Itoa(q.MinFollowers))
	}
	if q.MaxFollowers > 0 {
		v.Set("maxFollowers", strconv.Itoa(q.MaxFollowers))
	}
	if q.MinPrice > 0 {
		v.Set("minPrice", strconv.Itoa(q.MinPrice))
	}
	if q.MaxPrice > 0 {
		v.Set("maxPrice", strconv.Itoa(q.MaxPrice))
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	if q.Tier != "" {
		v.Set("tier", string(q.Tier))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// BrowseInfluencers returns profiles matching the query, followers descending.
func (c *Client) BrowseInfluencers(ctx context.Context, q BrowseQuery) ([]models.InfluencerProfile, error) {
	var out []models.InfluencerProfile
	if err := c.do(ctx, http.MethodGet, "/api/influencer-profile/all"+q.encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertBrandProfile creates or updates the caller's brand profile.
func (c *Client) UpsertBrandProfile(ctx context.Context, profile models.BrandProfile) (*models.BrandProfile, error) {
	var out models.BrandProfile
	if err := c.do(ctx, http.MethodPost, "/api/brand-profile", profile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyBrandProfile(ctx context.Context) (*models.BrandProfile, error) {
	var out models.BrandProfile
	if err := c.do(ctx, http.MethodGet, "/api/brand-profile/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InstagramStats looks up audience stats for an Instagram handle.
func (c *Client) InstagramStats(ctx context.Context, username string) (*instagram.Stats, error) {
	var out instagram.Stats
	if err := c.do(ctx, http.MethodGet, "/api/instagram/"+url.PathEscape(username), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
