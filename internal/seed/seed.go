// Package seed loads the bundled book catalog into the store.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"github.com/snnyvrz/shelfshare-catalog/internal/service"
)

type Store interface {
	Create(ctx context.Context, in service.CreateBookInput) (*model.Book, error)
	Reset(ctx context.Context) (int64, error)
}

type Result struct {
	Deleted int64
	Created int
	Failed  int
}

// Populate creates every entry through store so the usual validation runs.
// A failing entry is logged and skipped. With reset, existing books are
// removed first.
func Populate(ctx context.Context, store Store, log zerolog.Logger, entries []Entry, reset bool) (Result, error) {
	var res Result

	if reset {
		n, err := store.Reset(ctx)
		if err != nil {
			return res, fmt.Errorf("reset catalog: %w", err)
		}
		res.Deleted = n
		log.Info().Int64("deleted", n).Msg("cleared existing books")
	}

	for _, e := range entries {
		in, err := e.input()
		if err != nil {
			res.Failed++
			log.Error().Err(err).Str("title", e.Title).Msg("skipping book")
			continue
		}

		book, err := store.Create(ctx, in)
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			res.Failed++
			log.Error().Err(err).Str("title", e.Title).Msg("error creating book")
			continue
		}

		res.Created++
		log.Info().Uint("id", book.ID).Msgf("created: %s", book)
	}

	log.Info().
		Int("created", res.Created).
		Int("failed", res.Failed).
		Msg("catalog populated")

	return res, nil
}

func (e Entry) input() (service.CreateBookInput, error) {
	in := service.CreateBookInput{
		Title:       e.Title,
		Author:      e.Author,
		ISBN:        e.ISBN,
		Genre:       e.Genre,
		Description: e.Description,
	}

	if e.PublicationDate != "" {
		t, err := time.Parse(model.DateLayout, e.PublicationDate)
		if err != nil {
			return in, fmt.Errorf("publication date %q: %w", e.PublicationDate, err)
		}
		in.PublicationDate = &t
	}

	return in, nil
}
