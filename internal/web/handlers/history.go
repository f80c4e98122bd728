package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/jusunglee/boothko/internal/db"
	"github.com/jusunglee/boothko/internal/metrics"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type HistoryHandler struct {
	repo db.Repository
	log  *slog.Logger
}

func NewHistoryHandler(repo db.Repository, log *slog.Logger) *HistoryHandler {
	return &HistoryHandler{repo: repo, log: log}
}

type historyRequest struct {
	Keyword   string `json:"keyword"`
	Converted string `json:"converted,omitempty"`
}

type historyResponse struct {
	ID         int64   `json:"id"`
	Keyword    string  `json:"keyword"`
	Converted  *string `json:"converted,omitempty"`
	SearchedAt string  `json:"searched_at"`
}

type keywordCountResponse struct {
	Keyword        string `json:"keyword"`
	Count          int64  `json:"count"`
	LastSearchedAt string `json:"last_searched_at"`
}

func toHistoryResponse(h db.SearchHistory, _ int) historyResponse {
	resp := historyResponse{
		ID:         h.ID,
		Keyword:    h.Keyword,
		SearchedAt: h.SearchedAt.UTC().Format(time.RFC3339),
	}
	if h.Converted.Valid {
		resp.Converted = &h.Converted.String
	}
	return resp
}

func (h *HistoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		writeError(w, http.StatusBadRequest, "keyword is required")
		return
	}
	if utf8.RuneCountInString(keyword) > MaxQueryRunes {
		writeError(w, http.StatusBadRequest, "keyword too long")
		return
	}

	converted := strings.TrimSpace(req.Converted)
	entry, err := h.repo.CreateSearchHistory(r.Context(), db.CreateSearchHistoryParams{
		Keyword:   keyword,
		Converted: sql.NullString{String: converted, Valid: converted != ""},
	})
	if errors.Is(err, db.ErrEmptyKeyword) {
		writeError(w, http.StatusBadRequest, "keyword is required")
		return
	}
	if err != nil {
		metrics.HistoryWrites.WithLabelValues("error").Inc()
		h.log.ErrorContext(r.Context(), "saving search history", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	metrics.HistoryWrites.WithLabelValues("success").Inc()

	writeJSON(w, http.StatusCreated, toHistoryResponse(entry, 0))
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, defaultHistoryLimit, maxHistoryLimit)

	entries, err := h.repo.ListSearchHistory(r.Context(), int32(limit))
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing search history", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data": lo.Map(entries, toHistoryResponse),
	})
}

func (h *HistoryHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, defaultHistoryLimit, maxHistoryLimit)

	counts, err := h.repo.TopKeywords(r.Context(), int32(limit))
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing top keywords", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data": lo.Map(counts, func(c db.KeywordCount, _ int) keywordCountResponse {
			return keywordCountResponse{
				Keyword:        c.Keyword,
				Count:          c.Count,
				LastSearchedAt: c.LastSearchedAt.UTC().Format(time.RFC3339),
			}
		}),
	})
}

func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	n, err := h.repo.DeleteSearchHistory(r.Context(), id)
	if err != nil {
		h.log.ErrorContext(r.Context(), "deleting search history", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	n, err := h.repo.ClearSearchHistory(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "clearing search history", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.log.InfoContext(r.Context(), "cleared search history", "deleted", n)

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}
