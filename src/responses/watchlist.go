package responses

import "fmt"

type Watchlist struct {
	ID      *string
	Symbols []string
}

var watchlistSchema = []field[Watchlist]{
	{key: "id", set: func(w *Watchlist) **string { return &w.ID }},
}

// ParseWatchlists maps response.watchlists.watchlist. The symbols are only listed by
// watchlists/{id}; the index endpoint returns ids alone.
func ParseWatchlists(p *Payload) ([]*Watchlist, error) {
	srcs, err := items(p, "watchlists", "watchlist")
	if err != nil {
		return nil, fmt.Errorf("ParseWatchlists: %w", err)
	}

	out := make([]*Watchlist, 0, len(srcs))
	for _, src := range srcs {
		w := new(Watchlist)
		populate(src, watchlistSchema, w)

		for _, item := range src.repeated("watchlistitem") {
			instrument, ok := item.group("instrument")
			if !ok {
				continue
			}
			if sym, ok := instrument.value("sym"); ok && sym != "" {
				w.Symbols = append(w.Symbols, sym)
			}
		}

		out = append(out, w)
	}

	return out, nil
}
