package handlers

import (
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/jusunglee/boothko/internal/metrics"
	"github.com/jusunglee/boothko/internal/suggest"
	"github.com/jusunglee/boothko/internal/transliteration"
)

// MaxQueryRunes bounds the q parameter of the suggestions endpoint.
const MaxQueryRunes = 200

type SuggestionHandler struct {
	composer *suggest.Composer
	log      *slog.Logger
}

func NewSuggestionHandler(composer *suggest.Composer, log *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{composer: composer, log: log}
}

type suggestionResponse struct {
	Original  string           `json:"original"`
	Converted string           `json:"converted"`
	Category  suggest.Category `json:"category"`
	Romanized string           `json:"romanized"`
}

type suggestionsResponse struct {
	Query       string               `json:"query"`
	Suggestions []suggestionResponse `json:"suggestions"`
}

func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if utf8.RuneCountInString(q) > MaxQueryRunes {
		writeError(w, http.StatusBadRequest, "query too long")
		return
	}

	suggestions := h.composer.Suggest(q)

	metrics.SuggestionsReturned.Observe(float64(len(suggestions)))
	metrics.SuggestionRequests.WithLabelValues(lo.Ternary(len(suggestions) == 0, "empty", "hit")).Inc()
	for _, s := range suggestions {
		metrics.SuggestionCategories.WithLabelValues(string(s.Category)).Inc()
	}
	h.log.DebugContext(r.Context(), "suggestions", "query", q, "count", len(suggestions))

	writeJSON(w, http.StatusOK, suggestionsResponse{
		Query: q,
		Suggestions: lo.Map(suggestions, func(s suggest.Suggestion, _ int) suggestionResponse {
			return suggestionResponse{
				Original:  s.Original,
				Converted: s.Converted,
				Category:  s.Category,
				Romanized: transliteration.Romanize(s.Original),
			}
		}),
	})
}
