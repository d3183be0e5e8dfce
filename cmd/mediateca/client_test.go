package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Status(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/status").
		ExpectGET().
		RespondJSON(StatusResponse{Status: "ok", Version: "1.2.3"}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Status()
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
}

func TestClient_ListContent(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/content").
		ExpectGET().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "movie", r.URL.Query().Get("type"))
			assert.Equal(t, "galaxy", r.URL.Query().Get("q"))
			respondJSON(t, w, ListContentResponse{
				Items: []ContentResponse{{ID: "mov-abc123def", Title: "Galaxy Quest", Type: "movie"}},
				Total: 1,
			})
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.ListContent("movie", "galaxy")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "mov-abc123def", resp.Items[0].ID)
}

func TestClient_AddContent(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/content").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var req AddContentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "track", req.Type)
			assert.Equal(t, "new", req.AlbumID)
			assert.Equal(t, "The Mezzanines", req.Artist)

			w.WriteHeader(http.StatusCreated)
			respondJSON(t, w, ContentResponse{
				ID:     "mus-0a1b2c3d4",
				Title:  req.Title,
				Type:   "music",
				Artist: req.Artist,
				Tracks: []EntryResponse{{Title: req.TrackTitle, URL: req.URL}},
			})
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.AddContent(&AddContentRequest{
		Type:       "track",
		AlbumID:    "new",
		Title:      "Night Drive",
		Artist:     "The Mezzanines",
		TrackTitle: "Opening",
		URL:        "https://cdn.example/nd-01.mp3",
	})
	require.NoError(t, err)
	assert.Equal(t, "mus-0a1b2c3d4", resp.ID)
	require.Len(t, resp.Tracks, 1)
}

func TestClient_AddContent_ServerError(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/content").
		ExpectPOST().
		RespondError(http.StatusBadRequest, "ARTIST_REQUIRED", "artist is required for a new album").
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.AddContent(&AddContentRequest{Type: "track", AlbumID: "new", Title: "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "artist is required")
}

func TestClient_DeleteContent(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/content/mov-abc123def").
		ExpectDELETE().
		RespondStatus(http.StatusNoContent).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	require.NoError(t, client.DeleteContent("mov-abc123def"))
}

func TestClient_DeleteContent_NotFound(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/content/mov-missing00").
		ExpectDELETE().
		RespondError(http.StatusNotFound, "NOT_FOUND", "Content not found").
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.DeleteContent("mov-missing00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Content not found")
}

func TestClient_Resolve(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/resolve").
		ExpectGET().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", r.URL.Query().Get("url"))
			respondJSON(t, w, ResolveResponse{
				Kind:     "embed",
				EmbedID:  "dQw4w9WgXcQ",
				EmbedURL: "https://www.youtube.com/embed/dQw4w9WgXcQ",
			})
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Resolve("https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "embed", resp.Kind)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", resp.EmbedURL)
}

func TestClient_Channels(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/tv/channels").
		ExpectGET().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ES", r.URL.Query().Get("country"))
			respondJSON(t, w, ListChannelsResponse{
				Items: []ChannelResponse{{ID: "0-Canal Uno", Name: "Canal Uno", Country: "ES"}},
				Total: 1,
			})
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Channels("ES")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Canal Uno", resp.Items[0].Name)
}

func TestClient_Countries(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/tv/countries").
		ExpectGET().
		RespondJSON([]string{"ES", "FR"}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	countries, err := client.Countries()
	require.NoError(t, err)
	assert.Equal(t, []string{"ES", "FR"}, countries)
}

func TestClient_Favorites(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/content/mov-abc123def/favorite").
		ExpectPUT().
		RespondStatus(http.StatusNoContent).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	require.NoError(t, client.Favorite("mov-abc123def"))
}
