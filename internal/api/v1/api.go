// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/mediateca/mediateca/internal/library"
	"github.com/mediateca/mediateca/internal/playback"
	"github.com/mediateca/mediateca/internal/tv"
	"github.com/mediateca/mediateca/internal/watch"
)

// Server is the v1 API server.
type Server struct {
	library *library.Store
	tv      *tv.Source
	watch   *watch.Store
	logger  *slog.Logger
	version string
}

// New creates a new v1 API server.
func New(lib *library.Store, source *tv.Source, watchStore *watch.Store, logger *slog.Logger, version string) *Server {
	return &Server{
		library: lib,
		tv:      source,
		watch:   watchStore,
		logger:  logger.With("component", "api"),
		version: version,
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Content
	mux.HandleFunc("GET /api/v1/content", s.listContent)
	mux.HandleFunc("POST /api/v1/content", s.addContent)
	mux.HandleFunc("GET /api/v1/content/{id}", s.getContent)
	mux.HandleFunc("DELETE /api/v1/content/{id}", s.deleteContent)

	// Playback
	mux.HandleFunc("GET /api/v1/resolve", s.resolve)

	// Live TV
	mux.HandleFunc("GET /api/v1/tv/channels", s.listChannels)
	mux.HandleFunc("GET /api/v1/tv/countries", s.listCountries)

	// Watch state
	mux.HandleFunc("GET /api/v1/favorites", s.listFavorites)
	mux.HandleFunc("PUT /api/v1/content/{id}/favorite", s.addFavorite)
	mux.HandleFunc("DELETE /api/v1/content/{id}/favorite", s.removeFavorite)
	mux.HandleFunc("PUT /api/v1/content/{id}/position", s.setPosition)
	mux.HandleFunc("GET /api/v1/content/{id}/position", s.getPosition)

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// Handlers

func (s *Server) listContent(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := library.Filter{ID: q.Get("id"), Query: q.Get("q")}
	for _, t := range q["type"] {
		for _, part := range strings.Split(t, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			ct := library.ContentType(part)
			switch ct {
			case library.ContentTypeMovie, library.ContentTypeSeries, library.ContentTypeMusic:
				filter.Types = append(filter.Types, ct)
			default:
				writeError(w, http.StatusBadRequest, "INVALID_TYPE", "type must be 'movie', 'series', or 'music'")
				return
			}
		}
	}

	items := s.library.Query(filter)

	resp := listContentResponse{
		Items: items,
		Total: len(items),
	}
	if len(items) == 0 && filter.Query != "" {
		resp.Suggestions = s.library.Suggest(filter.Query, 5)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getContent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	items := s.library.Query(library.Filter{ID: id})
	if len(items) == 0 {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Content not found")
		return
	}

	writeJSON(w, http.StatusOK, items[0])
}

func (s *Server) addContent(w http.ResponseWriter, r *http.Request) {
	var req addContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	var (
		c   *library.Content
		err error
	)

	switch req.Type {
	case "movie":
		if req.Title == "" {
			writeError(w, http.StatusBadRequest, "TITLE_REQUIRED", "title is required")
			return
		}
		c, err = s.library.AddMovie(library.MovieParams{
			Title:       req.Title,
			Description: req.Description,
			Genre:       req.Genre,
			Year:        req.Year,
			ImageURL:    req.ImageURL,
			URL:         req.URL,
		})
	case "episode":
		if req.SeriesID == "" {
			writeError(w, http.StatusBadRequest, "SERIES_REQUIRED", "seriesId is required")
			return
		}
		if req.SeriesID == library.NewCollectionID && req.Title == "" {
			writeError(w, http.StatusBadRequest, "TITLE_REQUIRED", "title is required for a new series")
			return
		}
		c, err = s.library.AddSeriesEpisode(library.EpisodeParams{
			SeriesID:     req.SeriesID,
			Title:        req.Title,
			Description:  req.Description,
			Genre:        req.Genre,
			Year:         req.Year,
			ImageURL:     req.ImageURL,
			EpisodeTitle: req.EpisodeTitle,
			URL:          req.URL,
		})
	case "track":
		if req.AlbumID == "" {
			writeError(w, http.StatusBadRequest, "ALBUM_REQUIRED", "albumId is required")
			return
		}
		if req.AlbumID == library.NewCollectionID && req.Title == "" {
			writeError(w, http.StatusBadRequest, "TITLE_REQUIRED", "title is required for a new album")
			return
		}
		c, err = s.library.AddMusicTrack(library.TrackParams{
			AlbumID:     req.AlbumID,
			Title:       req.Title,
			Artist:      req.Artist,
			Description: req.Description,
			Genre:       req.Genre,
			Year:        req.Year,
			ImageURL:    req.ImageURL,
			TrackTitle:  req.TrackTitle,
			URL:         req.URL,
		})
	default:
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", "type must be 'movie', 'episode', or 'track'")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, library.ErrNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, library.ErrArtistRequired):
			writeError(w, http.StatusBadRequest, "ARTIST_REQUIRED", "artist is required for a new album")
		default:
			writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) deleteContent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	removed, err := s.library.DeleteByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Content not found")
		return
	}

	if s.watch != nil {
		if err := s.watch.DeleteFor(id); err != nil {
			s.logger.Warn("failed to clear watch state", "id", id, "error", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) resolve(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")

	p := playback.Classify(rawURL)
	resp := resolveResponse{Kind: string(p.Kind)}
	switch p.Kind {
	case playback.KindEmbed:
		resp.EmbedID = p.EmbedID
		resp.EmbedURL = playback.EmbedURL(p.EmbedID)
	case playback.KindVideo:
		resp.MIME = playback.StreamMIME(rawURL)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listChannels(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	channels := s.tv.List(country)

	writeJSON(w, http.StatusOK, listChannelsResponse{
		Items: channels,
		Total: len(channels),
	})
}

func (s *Server) listCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tv.Countries())
}

func (s *Server) listFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := s.watch.ListFavorites()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	items := make([]favoriteResponse, len(favorites))
	for i, f := range favorites {
		items[i] = favoriteResponse{ContentID: f.ContentID, AddedAt: f.AddedAt}
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *Server) addFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if len(s.library.Query(library.Filter{ID: id})) == 0 {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Content not found")
		return
	}

	if err := s.watch.Favorite(id); err != nil {
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	removed, err := s.watch.Unfavorite(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Favorite not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setPosition(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.Entry < 0 || req.Seconds < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_POSITION", "entry and seconds must be non-negative")
		return
	}

	if len(s.library.Query(library.Filter{ID: id})) == 0 {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Content not found")
		return
	}

	if err := s.watch.SetPosition(id, req.Entry, req.Seconds); err != nil {
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getPosition(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	entry := 0
	if raw := r.URL.Query().Get("entry"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "INVALID_POSITION", "entry must be a non-negative integer")
			return
		}
		entry = n
	}

	pos, err := s.watch.GetPosition(id, entry)
	if err != nil {
		if errors.Is(err, watch.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Position not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, positionResponse{
		ContentID: pos.ContentID,
		Entry:     pos.Entry,
		Seconds:   pos.Seconds,
		UpdatedAt: pos.UpdatedAt,
	})
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Status:  "ok",
		Version: s.version,
	}
	for _, c := range s.library.Query(library.Filter{}) {
		switch c.Type {
		case library.ContentTypeMovie:
			resp.Library.Movies++
		case library.ContentTypeSeries:
			resp.Library.Series++
		case library.ContentTypeMusic:
			resp.Library.Music++
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
