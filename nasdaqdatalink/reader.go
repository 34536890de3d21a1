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
	"strconv"
	"strings"

	"github.com/Romazes/Lean.DataSource.NasdaqDataLink/dates"
	"github.com/stockparfait/errors"
)

// Config identifies one dataset subscription: which symbol the parsed records
// belong to, and optionally which column carries its canonical value.
type Config struct {
	// Symbol is the dataset identifier, e.g. "WIKI/FB". Used verbatim in the
	// source URL and copied into every parsed record.
	Symbol string
	// ValueColumn optionally names the preferred value column. It takes
	// priority over the default keywords ("close", "price", "settle",
	// "value"). Empty means no preference.
	ValueColumn string
}

// readerState is the parsing state of a Reader.
type readerState int

const (
	// awaitingHeader: no line seen yet; the next line is the column header.
	awaitingHeader readerState = iota
	// parsingRows: the schema is captured; all further lines are data rows.
	parsingRows
)

// Reader parses one dataset file line by line. It captures the schema from
// the first line it is given and parses every subsequent line as a data row,
// so lines must arrive in file order. A Reader is single-use: create a new
// one for each file, since schemas differ by dataset.
type Reader struct {
	config     Config
	candidates []string // value column priority list, fixed at construction
	state      readerState
	schema     Schema
}

// NewReader creates a Reader for one file of the configured dataset.
func NewReader(config Config) *Reader {
	return &Reader{
		config:     config,
		candidates: valueColumnCandidates(config.ValueColumn),
	}
}

// Schema captured from the file's header, or nil before the first line.
func (r *Reader) Schema() Schema {
	return r.schema
}

// ReadLine parses the next line of the file. The first line is the header: it
// sets the schema and yields no record, (nil, nil). Every other line yields
// one record or an error.
//
// Data row errors are per-record: field 0 must be a YYYY-MM-DD date, the
// remaining fields must be decimal numbers, and a row with more fields than
// the header is structurally broken input. The caller decides whether to skip
// the bad line or abort the file; the Reader itself remains usable.
func (r *Reader) ReadLine(line string) (*Record, error) {
	if r.state == awaitingHeader {
		r.schema = ParseSchema(line)
		r.state = parsingRows
		return nil, nil
	}

	fields := strings.Split(line, fieldDelimiter)
	if len(fields) > len(r.schema) {
		return nil, errors.Reason(
			"row has %d fields, header has %d columns: %q",
			len(fields), len(r.schema), line)
	}
	date, err := dates.ParseDate(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, errors.Annotate(err, "failed to parse '%s' column", r.schema[0])
	}
	record := &Record{
		Symbol:  r.config.Symbol,
		Date:    date,
		Columns: make(map[string]float64, len(fields)-1),
		schema:  r.schema,
	}
	for i, f := range fields[1:] {
		column := r.schema[i+1]
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Annotate(err,
				"'%s' column must be a number: '%s'", column, f)
		}
		record.Columns[column] = v
	}
	for _, c := range r.candidates {
		if v, ok := record.Columns[c]; ok {
			record.Value = v
			break
		}
	}
	return record, nil
}
