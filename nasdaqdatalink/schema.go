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

import "strings"

// fieldDelimiter separates fields in Nasdaq Data Link CSV files. The files
// carry plain numeric data, so no quoting or escaping is supported.
const fieldDelimiter = ","

// Schema is the ordered list of a dataset's column names, lower-cased and
// trimmed, as discovered from the file's header row. It is captured once per
// file and shared read-only by all records parsed from that file.
type Schema []string

// ParseSchema splits a header line into a Schema.
func ParseSchema(line string) Schema {
	tokens := strings.Split(line, fieldDelimiter)
	s := make(Schema, len(tokens))
	for i, t := range tokens {
		s[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return s
}

// Index returns the position of the column in the schema, or -1.
func (s Schema) Index(column string) int {
	for i, c := range s {
		if c == column {
			return i
		}
	}
	return -1
}

// Has checks whether the schema contains the column.
func (s Schema) Has(column string) bool {
	return s.Index(column) >= 0
}

// Equal tests two schemas for exact equality, including the column ordering.
func (s Schema) Equal(s2 Schema) bool {
	if len(s) != len(s2) {
		return false
	}
	for i, c := range s {
		if c != s2[i] {
			return false
		}
	}
	return true
}

// String prints a string representation of the schema.
func (s Schema) String() string {
	return "{" + strings.Join(s, ", ") + "}"
}

// defaultValueColumns are the canonical value column keywords, in priority
// order. The first one present in a parsed record determines the record's
// Value.
var defaultValueColumns = []string{"close", "price", "settle", "value"}

// valueColumnCandidates builds the full priority list for a dataset: the
// caller-preferred column, if any, followed by the defaults. The list is
// fixed at Reader construction time.
func valueColumnCandidates(preferred string) []string {
	preferred = strings.ToLower(strings.TrimSpace(preferred))
	candidates := make([]string, 0, len(defaultValueColumns)+1)
	if preferred != "" {
		candidates = append(candidates, preferred)
	}
	return append(candidates, defaultValueColumns...)
}
