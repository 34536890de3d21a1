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

package nasdaqdatalink

import (
	"context"
	"fmt"

	"github.com/Romazes/Lean.DataSource.NasdaqDataLink/dates"
)

// TransportMedium classifies how the host should fetch a resolved source.
type TransportMedium string

// RemoteFile: fetch a single remote file or stream over HTTP.
const RemoteFile = TransportMedium("remote-file")

// Source is the resolved location of one dataset file.
type Source struct {
	URL       string
	Transport TransportMedium
}

// ResolveSource constructs the download URL for the configured dataset. It is
// side-effect-free string building; no network call happens here.
//
// The URL always requests ascending chronological order. The API key comes
// from the context Client when one is injected, otherwise from the
// process-wide auth code registry; an unconfigured credential still renders a
// well-formed URL (the vendor rejects the request instead). The asOf date and
// the live flag exist for interface uniformity with other data sources and do
// not affect the result: this provider serves the same remote CSV in both
// backtesting and live mode.
func ResolveSource(ctx context.Context, config Config, asOf dates.Date, live bool) Source {
	baseURL, apiKey := URL, AuthCode()
	if c := GetClient(ctx); c != nil {
		baseURL, apiKey = c.baseURL, c.apiKey
	}
	return Source{
		URL: fmt.Sprintf("%s/datasets/%s.csv?order=asc&api_key=%s",
			baseURL, config.Symbol, apiKey),
		Transport: RemoteFile,
	}
}
