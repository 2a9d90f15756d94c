package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/quantfetch/ashare-hist/src/models"
)

const DefaultBaseURL = "https://push2his.eastmoney.com"

// Fixed public token expected by the kline endpoint.
const eastmoneyToken = "7eea3edcaed734bea9cbfc24409ed989"

// ErrNoData is returned when the provider has no history for the requested
// symbol (null data or empty kline list).
var ErrNoData = errors.New("provider returned no data")

// FetchEastmoneyDailyKlines fetches the daily kline history for one symbol over
// [startDate, endDate] with the given adjustment applied by the provider.
func FetchEastmoneyDailyKlines(baseURL string, symbol models.StockSymbol, adjust models.Adjust, startDate, endDate time.Time, timeout time.Duration) (*models.KlineData, error) {
	client := http.Client{
		Timeout: timeout,
	}

	url := fmt.Sprintf("%s/api/qt/stock/kline/get", baseURL)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("FetchEastmoneyDailyKlines: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("secid", symbol.SecID())
	q.Add("ut", eastmoneyToken)
	q.Add("fields1", "f1,f2,f3,f4,f5,f6")
	q.Add("fields2", "f51,f52,f53,f54,f55,f56,f57,f58,f59,f60,f61")
	q.Add("klt", "101")
	q.Add("fqt", adjust.Fqt())
	q.Add("beg", startDate.Format("20060102"))
	q.Add("end", endDate.Format("20060102"))

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")

	log.Infof("FetchEastmoneyDailyKlines: fetching klines from %v", req.URL.String())

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FetchEastmoneyDailyKlines: failed to fetch klines: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchEastmoneyDailyKlines: failed to fetch klines, http code %v", res.Status)
	}

	var dto models.KlineResponse
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchEastmoneyDailyKlines: failed to decode json: %w", err)
	}

	if dto.Data == nil || len(dto.Data.Klines) == 0 {
		return nil, fmt.Errorf("FetchEastmoneyDailyKlines: %w for symbol %s", ErrNoData, symbol)
	}

	return dto.Data, nil
}
