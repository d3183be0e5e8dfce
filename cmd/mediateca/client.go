package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps HTTP calls to the mediateca server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new mediateca API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return serverError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return serverError(resp)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) do(method, path string) error {
	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return serverError(resp)
	}

	return nil
}

func serverError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("server error %d: %s", resp.StatusCode, errResp.Error)
	}
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
}

// API response types (mirror server types)

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Library struct {
		Movies int `json:"movies"`
		Series int `json:"series"`
		Music  int `json:"music"`
	} `json:"library"`
}

type EntryResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ContentResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Type        string          `json:"type"`
	Genre       string          `json:"genre"`
	Year        int             `json:"year"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	ImageHint   string          `json:"imageHint"`
	Artist      string          `json:"artist,omitempty"`
	URL         string          `json:"url,omitempty"`
	Episodes    []EntryResponse `json:"episodes,omitempty"`
	Tracks      []EntryResponse `json:"tracks,omitempty"`
}

type ListContentResponse struct {
	Items       []ContentResponse `json:"items"`
	Total       int               `json:"total"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

type ResolveResponse struct {
	Kind     string `json:"kind"`
	EmbedID  string `json:"embedId,omitempty"`
	EmbedURL string `json:"embedUrl,omitempty"`
	MIME     string `json:"mime,omitempty"`
}

type ChannelResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Country string `json:"country"`
	URL     string `json:"url"`
}

type ListChannelsResponse struct {
	Items []ChannelResponse `json:"items"`
	Total int               `json:"total"`
}

type FavoriteResponse struct {
	ContentID string `json:"contentId"`
	AddedAt   string `json:"addedAt"`
}

// AddContentRequest is the POST /content body.
type AddContentRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Year        int    `json:"year,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	URL         string `json:"url,omitempty"`

	SeriesID     string `json:"seriesId,omitempty"`
	EpisodeTitle string `json:"episodeTitle,omitempty"`

	AlbumID    string `json:"albumId,omitempty"`
	Artist     string `json:"artist,omitempty"`
	TrackTitle string `json:"trackTitle,omitempty"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListContent(contentType, query string) (*ListContentResponse, error) {
	params := url.Values{}
	if contentType != "" {
		params.Set("type", contentType)
	}
	if query != "" {
		params.Set("q", query)
	}

	path := "/api/v1/content"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp ListContentResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetContent(id string) (*ContentResponse, error) {
	var resp ContentResponse
	if err := c.get("/api/v1/content/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AddContent(req *AddContentRequest) (*ContentResponse, error) {
	var resp ContentResponse
	if err := c.post("/api/v1/content", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteContent(id string) error {
	return c.do(http.MethodDelete, "/api/v1/content/"+url.PathEscape(id))
}

func (c *Client) Resolve(mediaURL string) (*ResolveResponse, error) {
	var resp ResolveResponse
	if err := c.get("/api/v1/resolve?url="+url.QueryEscape(mediaURL), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Channels(country string) (*ListChannelsResponse, error) {
	path := "/api/v1/tv/channels"
	if country != "" {
		path += "?country=" + url.QueryEscape(country)
	}

	var resp ListChannelsResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Countries() ([]string, error) {
	var resp []string
	if err := c.get("/api/v1/tv/countries", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Favorites() ([]FavoriteResponse, error) {
	var resp []FavoriteResponse
	if err := c.get("/api/v1/favorites", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Favorite(id string) error {
	return c.do(http.MethodPut, "/api/v1/content/"+url.PathEscape(id)+"/favorite")
}

func (c *Client) Unfavorite(id string) error {
	return c.do(http.MethodDelete, "/api/v1/content/"+url.PathEscape(id)+"/favorite")
}
