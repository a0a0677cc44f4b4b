package normalize

import (
	"finnhubmcp/internal/finnhub"
	"finnhubmcp/internal/models"
)

// News converts a raw article into its normalized form. This is a plain
// rename pass; the only quirk is the provider's misspelled "headine" key,
// which maps to the documented "headline".
func News(raw finnhub.RawNews) models.News {
	return models.News{
		ID:       raw.ID,
		Headline: raw.Headine,
		Summary:  raw.Summary,
		Source:   raw.Source,
		URL:      raw.URL,
		Image:    raw.Image,
		Category: raw.Category,
		Related:  raw.Related,
		Datetime: raw.Datetime,
	}
}
