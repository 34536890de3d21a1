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

// Package nasdaqdatalink adapts Nasdaq Data Link (formerly Quandl) CSV time
// series for ingestion by a trading engine.
//
// The adapter is pure computation. ResolveSource() builds the authoritative
// download URL for a dataset symbol; the actual HTTP fetch is the caller's
// responsibility (see the download package for a ready-made host side).
//
// Each dataset file starts with a header row naming its columns, followed by
// data rows: a YYYY-MM-DD date and decimal values, in ascending chronological
// order. Column sets vary by dataset, so a Reader discovers the schema from
// the header of each file and stores every subsequent field in a dynamic
// column mapping. The single canonical Value of a record is chosen by a
// keyword priority list (an optional caller-preferred column, then "close",
// "price", "settle", "value").
//
// A Reader is stateful per file: the header must be the first line it sees,
// and a new file requires a new Reader.
package nasdaqdatalink
