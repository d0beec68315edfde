package kirka

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/constants"
	"github.com/i-am-called-glitchy/kirka-bot-go/internal/util"
	"github.com/i-am-called-glitchy/kirka-bot-go/pkg/errors"
	"go.uber.org/zap"
)

// PriceService resolves skin prices from community-maintained opensheet
// spreadsheets. Results are held in a size- and time-bounded cache so repeat
// lookups don't refetch the sheet.
type PriceService struct {
	httpClient *http.Client
	cache      *expirable.LRU[string, int64]
	logger     *zap.Logger
}

func NewPriceService(maxEntries int, ttl time.Duration, logger *zap.Logger) *PriceService {
	if maxEntries <= 0 {
		maxEntries = constants.PriceCacheConfig.MaxEntries
	}
	if ttl <= 0 {
		ttl = constants.PriceCacheConfig.TTL
	}
	return &PriceService{
		httpClient: &http.Client{
			Timeout: constants.APIConfig.RequestTimeout,
		},
		cache:  expirable.NewLRU[string, int64](maxEntries, nil, ttl),
		logger: logger,
	}
}

// BVL looks a skin up in the BVL price sheet. Unknown skins price at 0.
func (s *PriceService) BVL(ctx context.Context, skinName string) (int64, error) {
	return s.Custom(ctx, skinName, constants.PriceSheets.BVLNameField,
		constants.PriceSheets.BVLPriceField, constants.PriceSheets.BVLURL)
}

// YZZZMTZ looks a skin up in the YZZZMTZ base-value sheet.
func (s *PriceService) YZZZMTZ(ctx context.Context, skinName string) (int64, error) {
	return s.Custom(ctx, skinName, constants.PriceSheets.YZZZMTZName,
		constants.PriceSheets.YZZZMTZPrice, constants.PriceSheets.YZZZMTZURL)
}

// Custom looks a skin up in an arbitrary opensheet spreadsheet given the name
// and price column headers.
func (s *PriceService) Custom(ctx context.Context, skinName, nameField, priceField, sheetURL string) (int64, error) {
	wanted := util.Normalize(skinName)
	key := sheetURL + "|" + wanted
	if price, ok := s.cache.Get(key); ok {
		return price, nil
	}

	rows, err := s.fetchSheet(ctx, sheetURL)
	if err != nil {
		return 0, err
	}

	for _, row := range rows {
		name := row[nameField]
		cell := row[priceField]
		if name == "" || cell == "" {
			continue
		}
		if util.Normalize(name) != wanted {
			continue
		}
		price, err := parsePriceCell(cell)
		if err != nil {
			s.logger.Warn("Unparsable price cell",
				zap.String("skin", name),
				zap.String("cell", cell),
				zap.Error(err),
			)
			return 0, errors.NewServiceError("unparsable price cell", "prices", "parse", err)
		}
		s.cache.Add(key, price)
		return price, nil
	}

	s.cache.Add(key, 0)
	return 0, nil
}

func (s *PriceService) fetchSheet(ctx context.Context, sheetURL string) ([]map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sheetURL, nil)
	if err != nil {
		return nil, errors.NewServiceError("failed to create sheet request", "prices", "fetch", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewServiceError("sheet request failed", "prices", "fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewAPIError(
			fmt.Sprintf("sheet fetch failed: %s", resp.Status),
			resp.StatusCode,
			map[string]any{"url": sheetURL},
		)
	}

	var rows []map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, errors.NewServiceError("failed to decode sheet", "prices", "decode", err)
	}
	return rows, nil
}

// parsePriceCell extracts the integer price from a sheet cell: first
// whitespace token, anything after '?' dropped, then ',' '.' '/' stripped.
func parsePriceCell(cell string) (int64, error) {
	fields := strings.Fields(cell)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty price cell")
	}
	token := fields[0]
	if idx := strings.IndexByte(token, '?'); idx >= 0 {
		token = token[:idx]
	}
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', '.', '/':
			return -1
		default:
			return r
		}
	}, token)

	return strconv.ParseInt(cleaned, 10, 64)
}
