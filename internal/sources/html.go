package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/fetch"
	"github.com/jonathan/job-matcher/internal/types"
)

// HTMLBoard scrapes a job board listing page. Selectors are per-board
// configuration; the zero values of the optional selectors fall back to the
// card's whole text.
type HTMLBoard struct {
	BoardName string
	ListURL   string

	// ItemSelector matches one element per posting on the listing page.
	ItemSelector string
	// Field selectors are resolved inside each item.
	TitleSelector    string
	CompanySelector  string
	LocationSelector string
	LinkSelector     string

	// DefaultJobType is stamped on every posting; listing pages rarely
	// carry a machine-readable employment type.
	DefaultJobType string

	Options *fetch.Options
	Now     func() time.Time
}

func (b *HTMLBoard) Name() string { return b.BoardName }

// FromBoardConfig builds an HTMLBoard from a configuration entry.
func FromBoardConfig(cfg config.BoardConfig) *HTMLBoard {
	return &HTMLBoard{
		BoardName:        cfg.Name,
		ListURL:          cfg.URL,
		ItemSelector:     cfg.ItemSelector,
		TitleSelector:    cfg.TitleSelector,
		CompanySelector:  cfg.CompanySelector,
		LocationSelector: cfg.LocationSelector,
		LinkSelector:     cfg.LinkSelector,
		DefaultJobType:   cfg.JobType,
	}
}

// Search fetches the listing page and converts each matched card into a
// posting. The card's full text becomes the description, and its bullet
// items become requirements.
func (b *HTMLBoard) Search(ctx context.Context, _ Query) ([]types.JobPosting, error) {
	result, err := fetch.URL(ctx, b.ListURL, b.Options)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		return nil, fmt.Errorf("parse listing page %s: %w", b.ListURL, err)
	}

	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	posted := now().UTC().Format(time.RFC3339)

	var postings []types.JobPosting
	doc.Find(b.ItemSelector).Each(func(i int, card *goquery.Selection) {
		title := fieldText(card, b.TitleSelector)
		if title == "" {
			return
		}
		url := b.ListURL
		if b.LinkSelector != "" {
			if href, ok := card.Find(b.LinkSelector).First().Attr("href"); ok {
				url = href
			}
		}
		var requirements []string
		card.Find("li").Each(func(_ int, li *goquery.Selection) {
			if item := strings.TrimSpace(li.Text()); item != "" {
				requirements = append(requirements, item)
			}
		})
		postings = append(postings, types.JobPosting{
			ID:           fmt.Sprintf("%s-%d-%d", b.BoardName, i+1, now().UnixMilli()),
			Title:        title,
			Company:      fieldText(card, b.CompanySelector),
			Location:     fieldText(card, b.LocationSelector),
			Description:  squashWhitespace(card.Text()),
			Requirements: requirements,
			JobType:      b.DefaultJobType,
			PostedDate:   posted,
			URL:          url,
		})
	})
	return postings, nil
}

func fieldText(card *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return strings.TrimSpace(card.Find(selector).First().Text())
}

func squashWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
