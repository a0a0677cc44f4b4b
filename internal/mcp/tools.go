package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"finnhubmcp/internal/finnhub"
	"finnhubmcp/internal/models"
	"finnhubmcp/internal/normalize"
)

const dateLayout = "2006-01-02"

// maxQuoteConcurrency bounds the per-call quote fan-out.
const maxQuoteConcurrency = 8

// MarketData is the upstream surface the orchestrators call. Satisfied by
// *finnhub.Client; tests substitute a fake.
type MarketData interface {
	EarningsCalendar(ctx context.Context, from, to, symbol string) (*finnhub.EarningsCalendarResponse, error)
	Quote(ctx context.Context, symbol string) (*finnhub.RawQuote, error)
	CompanyNews(ctx context.Context, symbol, from, to string) ([]finnhub.RawNews, error)
	Profile(ctx context.Context, symbol string) (*finnhub.RawProfile, error)
	OptionChain(ctx context.Context, symbol, expirationDate string) (*finnhub.OptionChainResponse, error)
}

// ToolExecutor runs one orchestration per tool: defaulted arguments in,
// upstream call(s), normalization, envelope out. It is stateless across
// calls; the clock is injectable for date-defaulting tests.
type ToolExecutor struct {
	market MarketData
	logger *slog.Logger
	now    func() time.Time
}

// NewToolExecutor creates a tool executor over the given market data source.
func NewToolExecutor(market MarketData, logger *slog.Logger) *ToolExecutor {
	return &ToolExecutor{
		market: market,
		logger: logger.With("component", "tool_executor"),
		now:    time.Now,
	}
}

// ExecuteEarningsCalendar runs calendar.earnings. An omitted from defaults
// to today (UTC); an omitted to defaults to from + 7 calendar days, which
// crosses month and year boundaries via date arithmetic.
func (te *ToolExecutor) ExecuteEarningsCalendar(ctx context.Context, args EarningsArgs) (*models.EarningsResult, error) {
	from := args.From
	if from == "" {
		from = te.now().UTC().Format(dateLayout)
	}

	to := args.To
	if to == "" {
		start, err := time.Parse(dateLayout, from)
		if err != nil {
			return nil, fmt.Errorf("parse from date %q: %w", from, err)
		}
		to = start.AddDate(0, 0, 7).Format(dateLayout)
	}

	resp, err := te.market.EarningsCalendar(ctx, from, to, args.Symbol)
	if err != nil {
		return nil, err
	}

	data := make([]models.Earnings, 0, len(resp.EarningsCalendar))
	for _, raw := range resp.EarningsCalendar {
		data = append(data, normalize.Earnings(raw))
	}

	return &models.EarningsResult{
		Data:      data,
		Count:     len(data),
		DateRange: models.DateRange{From: from, To: to},
	}, nil
}

// ExecuteQuotes runs quote: one upstream call per symbol, fanned out with
// bounded concurrency. Result order always matches request order; symbols
// the provider answered with an all-zero quote are dropped, not errored.
// Any failed fetch fails the whole operation.
func (te *ToolExecutor) ExecuteQuotes(ctx context.Context, args QuotesArgs) (*models.QuotesResult, error) {
	raws := make([]*finnhub.RawQuote, len(args.Symbols))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxQuoteConcurrency)
	for i, symbol := range args.Symbols {
		i, symbol := i, symbol
		g.Go(func() error {
			raw, err := te.market.Quote(ctx, symbol)
			if err != nil {
				return err
			}
			raws[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	quotes := make([]models.Quote, 0, len(args.Symbols))
	for i, raw := range raws {
		if raw == nil || !normalize.QuoteHasData(*raw) {
			continue
		}
		quotes = append(quotes, normalize.Quote(args.Symbols[i], *raw))
	}

	return &models.QuotesResult{Quotes: quotes}, nil
}

// ExecuteNews runs news: a single call for the symbol and date window.
func (te *ToolExecutor) ExecuteNews(ctx context.Context, args NewsArgs) (*models.NewsResult, error) {
	raw, err := te.market.CompanyNews(ctx, args.Symbol, args.From, args.To)
	if err != nil {
		return nil, err
	}

	news := make([]models.News, 0, len(raw))
	for _, article := range raw {
		news = append(news, normalize.News(article))
	}

	return &models.NewsResult{News: news, Count: len(news)}, nil
}

// ExecuteProfile runs stock.profile. An unknown symbol yields a null
// profile, not an error.
func (te *ToolExecutor) ExecuteProfile(ctx context.Context, args ProfileArgs) (*models.ProfileResult, error) {
	raw, err := te.market.Profile(ctx, args.Symbol)
	if err != nil {
		return nil, err
	}
	return &models.ProfileResult{Profile: normalize.Profile(*raw)}, nil
}

// ExecuteOptionsChain runs options.chain. The same endpoint serves two
// modes: with an expiration date the response's contracts are flattened
// into one side-tagged list; without one each expiration bucket is reduced
// to its summary so the caller can pick a date and call again.
func (te *ToolExecutor) ExecuteOptionsChain(ctx context.Context, args OptionsChainArgs) (interface{}, error) {
	resp, err := te.market.OptionChain(ctx, args.Symbol, args.ExpirationDate)
	if err != nil {
		return nil, err
	}

	if args.ExpirationDate != "" {
		options := make([]models.OptionContract, 0)
		for _, bucket := range resp.Data {
			options = append(options, normalize.BucketContracts(bucket)...)
		}
		return &models.OptionsChainResult{
			Chain: models.OptionsChain{
				Options:        options,
				ExpirationDate: args.ExpirationDate,
			},
		}, nil
	}

	summaries := make([]models.ExpirationSummary, 0, len(resp.Data))
	for _, bucket := range resp.Data {
		summaries = append(summaries, normalize.ExpirationSummary(bucket))
	}
	return &models.ExpirationsResult{
		AvailableExpirationDates: summaries,
		TotalExpirations:         len(summaries),
	}, nil
}
