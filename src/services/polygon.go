package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	polygon_models "github.com/polygon-io/client-go/rest/models"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

const polygonBaseURL = "https://api.polygon.io"

// PolygonQuoteSource serves underlying prices through the Polygon REST client
// and option chains through the v3 snapshot endpoint.
type PolygonQuoteSource struct {
	Client  *polygon.Client
	ApiKey  string
	BaseURL string
}

func NewPolygonQuoteSource(apiKey string) *PolygonQuoteSource {
	return &PolygonQuoteSource{
		Client:  polygon.New(apiKey),
		ApiKey:  apiKey,
		BaseURL: polygonBaseURL,
	}
}

func (s *PolygonQuoteSource) GetUnderlyingPrice(ctx context.Context, symbol models.StockSymbol) (float64, error) {
	tracer := otel.Tracer("GetUnderlyingPrice")
	ctx, span := tracer.Start(ctx, "GetUnderlyingPrice")
	defer span.End()

	resp, err := s.Client.GetLastTrade(ctx, &polygon_models.GetLastTradeParams{
		Ticker: symbol.String(),
	})

	if err != nil {
		return 0, fmt.Errorf("GetUnderlyingPrice: failed to fetch last trade for %s: %v: %w", symbol, err, models.QuoteUnavailableErr)
	}

	if resp.Results.Price <= 0 {
		return 0, fmt.Errorf("GetUnderlyingPrice: no last trade price for %s: %w", symbol, models.QuoteUnavailableErr)
	}

	return resp.Results.Price, nil
}

func (s *PolygonQuoteSource) GetOptionChain(ctx context.Context, symbol models.StockSymbol, expiration time.Time, optionType models.OptionType) ([]models.OptionQuote, error) {
	tracer := otel.Tracer("GetOptionChain")
	ctx, span := tracer.Start(ctx, "GetOptionChain")
	defer span.End()

	requestURL, err := s.makeOptionChainURL(symbol, expiration, optionType)
	if err != nil {
		return nil, fmt.Errorf("GetOptionChain: %w", err)
	}

	var quotes []models.OptionQuote

	for {
		resp, err := fetchOptionChainPage(ctx, requestURL, s.ApiKey)
		if err != nil {
			return nil, fmt.Errorf("GetOptionChain: %v: %w", err, models.QuoteUnavailableErr)
		}

		for _, dto := range resp.Results {
			quote, err := dto.ToModel(symbol)
			if err != nil {
				log.Warnf("GetOptionChain: dropping contract %s: %v", dto.Details.Ticker, err)
				continue
			}

			quotes = append(quotes, quote)
		}

		if resp.NextURL == nil {
			break
		}

		requestURL = *resp.NextURL
		time.Sleep(50 * time.Millisecond)
	}

	return quotes, nil
}

func (s *PolygonQuoteSource) makeOptionChainURL(symbol models.StockSymbol, expiration time.Time, optionType models.OptionType) (string, error) {
	parsedURL, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", fmt.Errorf("makeOptionChainURL: failed to parse base URL: %w", err)
	}

	parsedURL.Path = path.Join(parsedURL.Path, "v3", "snapshot", "options", symbol.String())

	q := parsedURL.Query()
	q.Add("expiration_date", expiration.Format("2006-01-02"))
	q.Add("contract_type", string(optionType))
	q.Add("limit", "250")

	parsedURL.RawQuery = q.Encode()

	return parsedURL.String(), nil
}

func fetchOptionChainPage(ctx context.Context, requestURL, apiKey string) (*models.PolygonV3Response[models.PolygonOptionSnapshotDTO], error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetchOptionChainPage: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("apiKey", apiKey)

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")

	log.Debugf("fetchOptionChainPage: fetching option chain from %v", req.URL.String())

	client := http.Client{
		Timeout: 10 * time.Second,
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetchOptionChainPage: failed to fetch option chain: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetchOptionChainPage: failed to fetch option chain, http code %v", res.Status)
	}

	var dto models.PolygonV3Response[models.PolygonOptionSnapshotDTO]
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("fetchOptionChainPage: failed to decode json: %w", err)
	}

	return &dto, nil
}
