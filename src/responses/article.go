package responses

import "fmt"

type Article struct {
	ID       *string `json:"id,omitempty" csv:"id"`
	Date     *string `json:"date,omitempty" csv:"date"`
	Headline *string `json:"headline,omitempty" csv:"headline"`
	Story    *string `json:"story,omitempty" csv:"story"`
}

var articleSchema = []field[Article]{
	{key: "id", set: func(a *Article) **string { return &a.ID }},
	{key: "date", set: func(a *Article) **string { return &a.Date }},
	{key: "headline", set: func(a *Article) **string { return &a.Headline }},
	{key: "story", set: func(a *Article) **string { return &a.Story }},
}

// ParseArticles maps the headlines of market/news/search.
func ParseArticles(p *Payload) ([]*Article, error) {
	srcs, err := items(p, "articles", "article")
	if err != nil {
		return nil, fmt.Errorf("ParseArticles: %w", err)
	}

	return parseAll(srcs, articleSchema), nil
}

// ParseArticle maps the single story of market/news/{id}.
func ParseArticle(p *Payload) (*Article, error) {
	srcs, err := items(p, "article")
	if err != nil {
		return nil, fmt.Errorf("ParseArticle: %w", err)
	}

	if len(srcs) == 0 {
		return nil, fmt.Errorf("ParseArticle: article: %w", ErrNotFound)
	}

	a := new(Article)
	populate(srcs[0], articleSchema, a)

	return a, nil
}
