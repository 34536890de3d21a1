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
	"fmt"
	"strconv"
	"time"

	"github.com/Romazes/Lean.DataSource.NasdaqDataLink/dates"
)

// Period is the time span logically covered by one record: these are daily
// bars, so EndTime() = Time() + Period.
const Period = 24 * time.Hour

// Record is a single parsed data row: a dynamic mapping from column name to
// decimal value, plus the fixed symbol, date and canonical Value fields.
// Every key in Columns is present in the file's schema. Value is zero when
// none of the value column candidates appear in the row.
type Record struct {
	Symbol  string
	Date    dates.Date
	Value   float64
	Columns map[string]float64

	schema Schema // the file's schema, for ordered output
}

// Schema of the file this record was parsed from.
func (r *Record) Schema() Schema {
	return r.schema
}

// Get returns the value of the named column, and whether the column was
// present in the row.
func (r *Record) Get(column string) (float64, bool) {
	v, ok := r.Columns[column]
	return v, ok
}

// Time is the start of the day covered by the record, midnight UTC.
func (r *Record) Time() time.Time {
	return r.Date.ToTime()
}

// SetTime assigns the record's date from the start time of its daily bar.
func (r *Record) SetTime(t time.Time) {
	r.Date = dates.NewDateFromTime(t.UTC())
}

// EndTime is the end of the day covered by the record, Time() + Period.
func (r *Record) EndTime() time.Time {
	return r.Time().Add(Period)
}

// SetEndTime assigns the record's date from the end time of its daily bar,
// the exact inverse of EndTime().
func (r *Record) SetEndTime(t time.Time) {
	r.SetTime(t.Add(-Period))
}

// CSV renders the record's fields in schema order: the date first, then the
// numeric columns. Columns missing from the row render as empty strings.
func (r *Record) CSV() []string {
	if len(r.schema) == 0 {
		return []string{r.Date.String()}
	}
	row := make([]string, len(r.schema))
	row[0] = r.Date.String()
	for i, c := range r.schema[1:] {
		if v, ok := r.Columns[c]; ok {
			row[i+1] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return row
}

// String representation of the record.
func (r *Record) String() string {
	return fmt.Sprintf("%s %s value=%g", r.Symbol, r.Date, r.Value)
}
