// suggest prints BOOTH search suggestions for a Korean query.
//
//	suggest 시나노 전용
//	suggest --json 무료
//	suggest --interactive
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"

	"github.com/jusunglee/boothko/internal/db"
	"github.com/jusunglee/boothko/internal/db/store"
	"github.com/jusunglee/boothko/internal/dictionary"
	"github.com/jusunglee/boothko/internal/logger"
	"github.com/jusunglee/boothko/internal/suggest"
	"github.com/jusunglee/boothko/internal/transliteration"
	"github.com/jusunglee/boothko/internal/tui"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("suggest")

	var (
		asJSON      = fs.BoolLong("json", "print suggestions as JSON")
		interactive = fs.BoolLong("interactive", "pick a suggestion in an interactive prompt")
		databaseURL = fs.StringLong("database-url", "", "record chosen searches in this history database")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("BOOTHKO")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	logger.New()
	ctx := context.Background()
	query := strings.Join(fs.GetArgs(), " ")
	composer := suggest.NewComposer(dictionary.Default())

	if *interactive {
		chosen, ok, err := tui.Run(composer, query)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fmt.Println(chosen.Converted)
		return record(ctx, *databaseURL, chosen)
	}

	if query == "" {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return errors.New("query is required unless --interactive is set")
	}

	suggestions := composer.Suggest(query)
	if *asJSON {
		return writeJSON(os.Stdout, query, suggestions)
	}
	if len(suggestions) == 0 {
		fmt.Fprintln(os.Stderr, "no suggestions: query has no Hangul")
		return nil
	}
	fmt.Println(renderTable(suggestions))
	return nil
}

func writeJSON(w io.Writer, query string, suggestions []suggest.Suggestion) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(struct {
		Query       string               `json:"query"`
		Suggestions []suggest.Suggestion `json:"suggestions"`
	}{query, suggestions})
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderTable(suggestions []suggest.Suggestion) string {
	rows := lo.Map(suggestions, func(s suggest.Suggestion, i int) []string {
		return []string{
			fmt.Sprint(i + 1),
			s.Converted,
			string(s.Category),
			s.Original,
			transliteration.Romanize(s.Original),
		}
	})

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		Headers("#", "BOOTH", "CATEGORY", "KOREAN", "READING").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

// record saves the chosen search when a history database is configured.
func record(ctx context.Context, databaseURL string, s suggest.Suggestion) error {
	if databaseURL == "" {
		return nil
	}
	repo, _, err := store.Open(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()

	if _, err := repo.CreateSearchHistory(ctx, db.CreateSearchHistoryParams{
		Keyword:   s.Original,
		Converted: sql.NullString{String: s.Converted, Valid: s.Converted != ""},
	}); err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}
