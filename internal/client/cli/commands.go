package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/legalassist/internal/client/api"
	"github.com/dmitrijs2005/legalassist/internal/common"
)

// Ask submits one question and renders the outcome. With no inline text the
// user is prompted for a question first.
func (a *App) Ask(ctx context.Context, question string) error {
	if question == "" {
		text, err := GetSimpleText(a.reader, "Enter your legal question", os.Stdout)
		if err != nil {
			return err
		}
		question = text
	}

	out, err := a.controller.Submit(ctx, question)
	switch {
	case errors.Is(err, common.ErrEmptyQuestion):
		printlnFn("Question cannot be empty.")
		return nil
	case errors.Is(err, common.ErrSubmissionInFlight):
		printlnFn("Please wait for the previous question to finish.")
		return nil
	case err != nil:
		return err
	}

	printlnFn()
	printlnFn(out.Answer)
	if len(out.Sources) > 0 {
		printlnFn()
		printlnFn("Sources:")
		for _, s := range out.Sources {
			title := s.Title
			if title == "" {
				title = s.Code
			}
			printlnFn(fmt.Sprintf("  %s, article %s — %s (%s)", s.Code, s.Article, title, s.URL))
		}
	}
	return nil
}

// History renders prior successful exchanges, newest first.
func (a *App) History(ctx context.Context) error {
	entries := a.history.Entries()
	if len(entries) == 0 {
		printlnFn("History is empty.")
		return nil
	}

	for _, e := range entries {
		stamp := time.UnixMilli(e.Timestamp).Format("2006-01-02 15:04")
		printlnFn(fmt.Sprintf("[%s] Q: %s", stamp, e.Question))
		printlnFn(fmt.Sprintf("         A: %s", e.Answer))
	}
	return nil
}

// Stats renders the informational per-code corpus statistics.
func (a *App) Stats(ctx context.Context) error {
	report, err := a.api.Stats(ctx)
	if err != nil {
		printlnFn("Could not fetch corpus statistics:", err)
		return err
	}
	if len(report.Stats) == 0 {
		printlnFn("No corpus statistics available.")
		return nil
	}

	for _, s := range report.Stats {
		printlnFn(fmt.Sprintf("  %-5s %d articles", s.Code, s.ArticlesCount))
	}
	return nil
}

// Sync forces a corpus refresh regardless of staleness.
func (a *App) Sync(ctx context.Context) error {
	printlnFn("Synchronizing legal database...")
	if err := a.scheduler.Sync(ctx); err != nil {
		printlnFn("Sync failed:", err)
		return err
	}
	printlnFn("Database synchronized successfully.")
	return nil
}

// Load refreshes the articles of one legal code.
func (a *App) Load(ctx context.Context, code string) error {
	if !isKnownCode(code) {
		printlnFn("Unknown code. Known codes:", fmt.Sprint(api.CorpusCodes))
		return nil
	}

	res, err := a.api.LoadCode(ctx, code)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to load %s:", code), err)
		return err
	}
	printlnFn(fmt.Sprintf("%s: loaded %d articles", code, res.ArticlesLoaded))
	return nil
}

// Reset wipes all local state: history, sync timestamp and client id. The
// next start behaves like a first run (sync due, empty history).
func (a *App) Reset(ctx context.Context) error {
	if err := a.kv.Clear(ctx); err != nil {
		printlnFn("Reset failed:", err)
		return err
	}
	a.history.Load(ctx)
	printlnFn("Local state cleared.")
	return nil
}

func isKnownCode(code string) bool {
	for _, c := range api.CorpusCodes {
		if c == code {
			return true
		}
	}
	return false
}
