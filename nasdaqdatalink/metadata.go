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

import "time"

// Resolution is the sampling granularity of a data feed.
type Resolution int

// Resolutions, finest to coarsest.
const (
	Tick Resolution = iota
	Second
	Minute
	Hour
	Daily
)

// String converts the enum value to a string.
func (r Resolution) String() string {
	switch r {
	case Tick:
		return "tick"
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Daily:
		return "daily"
	}
	return "unknown"
}

// The descriptors below are constant for this provider; the host uses them to
// schedule requests and align this feed against other series.

// DataTimeZone of the feed's timestamps.
func DataTimeZone() *time.Location {
	return time.UTC
}

// DefaultResolution of the feed.
func DefaultResolution() Resolution {
	return Daily
}

// SupportedResolutions lists every resolution the host may request. The data
// itself is daily; coarser sampling is the host's own aggregation.
func SupportedResolutions() []Resolution {
	return []Resolution{Tick, Second, Minute, Hour, Daily}
}

// IsSparseData marks this feed as low-density: datasets are not published
// every calendar day (holidays, weekends), and the host should not warn about
// missing daily files.
func IsSparseData() bool {
	return true
}
