// Copyright 2024 Romazes

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package download implements the host side of the Nasdaq Data Link adapter:
// it fetches the resolved CSV sources over HTTP and streams their lines
// through nasdaqdatalink.Reader. Malformed data lines are logged and skipped,
// so one bad row never aborts a whole series; transport and header failures
// fail the series.
package download

import (
	"bufio"
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/Romazes/Lean.DataSource.NasdaqDataLink/dates"
	"github.com/Romazes/Lean.DataSource.NasdaqDataLink/nasdaqdatalink"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"
	"golang.org/x/exp/slices"
)

// Series is one downloaded dataset: its configuration, the schema discovered
// from the file header, and the parsed records in file order.
type Series struct {
	Config  nasdaqdatalink.Config
	Schema  nasdaqdatalink.Schema
	Records []*nasdaqdatalink.Record
}

// DateRange returns the earliest and latest record dates, zero values for an
// empty series. The source serves rows in ascending order, but a scan keeps
// the result correct even if it doesn't.
func (s *Series) DateRange() (start, end dates.Date) {
	for _, r := range s.Records {
		start = dates.MinDate(start, r.Date)
		end = dates.MaxDate(end, r.Date)
	}
	return start, end
}

// Values returns the canonical values of all records, in record order.
func (s *Series) Values() []float64 {
	vs := make([]float64, len(s.Records))
	for i, r := range s.Records {
		vs[i] = r.Value
	}
	return vs
}

// Fetch downloads and parses one dataset. Bad data lines are logged as
// warnings and skipped.
func Fetch(ctx context.Context, config nasdaqdatalink.Config) (*Series, error) {
	src := nasdaqdatalink.ResolveSource(ctx, config, dates.Today(time.Now()), false)
	resp, err := fetch.GetRetry(ctx, src.URL, nil, nil)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch %s", config.Symbol)
	}
	defer resp.Body.Close()

	reader := nasdaqdatalink.NewReader(config)
	series := &Series{Config: config}
	scan := bufio.NewScanner(resp.Body)
	lineNum := 0
	for scan.Scan() {
		lineNum++
		line := strings.TrimRight(scan.Text(), "\r")
		if line == "" {
			continue
		}
		record, err := reader.ReadLine(line)
		if err != nil {
			logging.Warningf(ctx, "%s: skipping line %d: %s",
				config.Symbol, lineNum, err.Error())
			continue
		}
		if record == nil { // the header line
			continue
		}
		series.Records = append(series.Records, record)
	}
	if err := scan.Err(); err != nil {
		return nil, errors.Annotate(err, "failed to read %s response", config.Symbol)
	}
	if lineNum == 0 {
		return nil, errors.Reason("%s: empty response, no header", config.Symbol)
	}
	series.Schema = reader.Schema()
	logging.Infof(ctx, "%s: downloaded %d records", config.Symbol, len(series.Records))
	return series, nil
}

type fetchResult struct {
	Series *Series
	Error  error
}

// FetchAll downloads the configured datasets in parallel and returns them
// sorted by symbol. The first failed series fails the whole call.
func FetchAll(ctx context.Context, configs []nasdaqdatalink.Config) ([]*Series, error) {
	f := func(config nasdaqdatalink.Config) fetchResult {
		s, err := Fetch(ctx, config)
		return fetchResult{Series: s, Error: err}
	}
	pm := iterator.ParallelMap(ctx, 2*runtime.NumCPU(), iterator.FromSlice(configs), f)
	defer pm.Close()

	results := iterator.Reduce[fetchResult, []fetchResult](pm, []fetchResult{},
		func(r fetchResult, rs []fetchResult) []fetchResult {
			return append(rs, r)
		})
	series := make([]*Series, 0, len(results))
	for _, r := range results {
		if r.Error != nil {
			return nil, errors.Annotate(r.Error, "failed to download a series")
		}
		series = append(series, r.Series)
	}
	slices.SortFunc(series, func(a, b *Series) bool {
		return a.Config.Symbol < b.Config.Symbol
	})
	return series, nil
}
