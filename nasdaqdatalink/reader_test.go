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
	"testing"
	"time"

	"github.com/Romazes/Lean.DataSource.NasdaqDataLink/dates"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSchema(t *testing.T) {
	t.Parallel()

	Convey("ParseSchema works", t, func() {
		Convey("lower-cases and trims tokens in order", func() {
			s := ParseSchema("Date, Open ,HIGH,Low,Close,Volume")
			So(s, ShouldResemble,
				Schema{"date", "open", "high", "low", "close", "volume"})
		})

		Convey("keeps empty tokens positional", func() {
			So(ParseSchema("date,,value"), ShouldResemble, Schema{"date", "", "value"})
		})
	})

	Convey("Schema methods work", t, func() {
		s := ParseSchema("date,foo,bar")
		So(s.Index("foo"), ShouldEqual, 1)
		So(s.Index("baz"), ShouldEqual, -1)
		So(s.Has("bar"), ShouldBeTrue)
		So(s.Has("close"), ShouldBeFalse)
		So(s.Equal(Schema{"date", "foo", "bar"}), ShouldBeTrue)
		So(s.Equal(Schema{"date", "bar", "foo"}), ShouldBeFalse)
		So(s.Equal(Schema{"date", "foo"}), ShouldBeFalse)
		So(s.String(), ShouldEqual, "{date, foo, bar}")
	})
}

func TestReader(t *testing.T) {
	t.Parallel()

	header := "Date,Open,High,Low,Close,Volume"

	Convey("Reader parses a dataset file", t, func() {
		r := NewReader(Config{Symbol: "WIKI/FB"})

		Convey("the header yields no record and sets the schema", func() {
			rec, err := r.ReadLine(header)
			So(err, ShouldBeNil)
			So(rec, ShouldBeNil)
			So(r.Schema(), ShouldResemble,
				Schema{"date", "open", "high", "low", "close", "volume"})

			Convey("a data row populates every column", func() {
				rec, err := r.ReadLine("2020-01-02,10,11,9,10.5,1000")
				So(err, ShouldBeNil)
				So(rec.Symbol, ShouldEqual, "WIKI/FB")
				So(rec.Date, ShouldResemble, dates.NewDate(2020, 1, 2))
				So(rec.Value, ShouldEqual, 10.5) // matches "close"
				So(rec.Columns, ShouldResemble, map[string]float64{
					"open": 10, "high": 11, "low": 9, "close": 10.5, "volume": 1000})
				v, ok := rec.Get("high")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 11)
				_, ok = rec.Get("settle")
				So(ok, ShouldBeFalse)
			})

			Convey("a short row parses the available fields positionally", func() {
				rec, err := r.ReadLine("2020-01-03,10,11")
				So(err, ShouldBeNil)
				So(rec.Columns, ShouldResemble, map[string]float64{"open": 10, "high": 11})
				So(rec.Value, ShouldEqual, 0) // "close" missing from this row
			})

			Convey("a row longer than the header is a structural error", func() {
				rec, err := r.ReadLine("2020-01-03,10,11,9,10.5,1000,42")
				So(err, ShouldNotBeNil)
				So(rec, ShouldBeNil)

				Convey("and the reader still parses the next good row", func() {
					rec, err := r.ReadLine("2020-01-06,10,11,9,10.5,1000")
					So(err, ShouldBeNil)
					So(rec.Date, ShouldResemble, dates.NewDate(2020, 1, 6))
				})
			})

			Convey("a malformed date is a per-record error", func() {
				for _, row := range []string{
					"2020/01/02,10,11,9,10.5,1000",
					"02-01-2020,10,11,9,10.5,1000",
					",10,11,9,10.5,1000",
				} {
					rec, err := r.ReadLine(row)
					So(err, ShouldNotBeNil)
					So(rec, ShouldBeNil)
				}
			})

			Convey("a non-numeric field is a per-record error", func() {
				rec, err := r.ReadLine("2020-01-02,10,n/a,9,10.5,1000")
				So(err, ShouldNotBeNil)
				So(rec, ShouldBeNil)
			})
		})
	})

	Convey("value column selection", t, func() {
		Convey("a preferred column beats the default keywords", func() {
			r := NewReader(Config{Symbol: "WIKI/FB", ValueColumn: "Open"})
			_, err := r.ReadLine("Date,Open,Close")
			So(err, ShouldBeNil)
			rec, err := r.ReadLine("2020-01-02,10,10.5")
			So(err, ShouldBeNil)
			So(rec.Value, ShouldEqual, 10)
		})

		Convey("defaults are scanned in priority order", func() {
			r := NewReader(Config{Symbol: "CHRIS/CME_W1"})
			_, err := r.ReadLine("Date,Settle,Value")
			So(err, ShouldBeNil)
			rec, err := r.ReadLine("2020-01-02,5.25,6")
			So(err, ShouldBeNil)
			So(rec.Value, ShouldEqual, 5.25)
		})

		Convey("a missing preferred column falls through to the defaults", func() {
			r := NewReader(Config{Symbol: "WIKI/FB", ValueColumn: "vwap"})
			_, err := r.ReadLine("Date,Close")
			So(err, ShouldBeNil)
			rec, err := r.ReadLine("2020-01-02,10.5")
			So(err, ShouldBeNil)
			So(rec.Value, ShouldEqual, 10.5)
		})

		Convey("no keyword column leaves Value unset", func() {
			r := NewReader(Config{Symbol: "ODA/PBARL_USD"})
			_, err := r.ReadLine("Date,Foo,Bar")
			So(err, ShouldBeNil)
			rec, err := r.ReadLine("2020-01-02,1.5,2.5")
			So(err, ShouldBeNil)
			So(rec.Value, ShouldEqual, 0)
			So(rec.Columns, ShouldResemble, map[string]float64{"foo": 1.5, "bar": 2.5})
		})
	})
}

func TestRecord(t *testing.T) {
	t.Parallel()

	Convey("Time and EndTime are exact inverses one day apart", t, func() {
		d := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
		var r Record

		r.SetTime(d)
		So(r.Time(), ShouldResemble, d)
		So(r.EndTime(), ShouldResemble, d.Add(Period))
		So(r.Date, ShouldResemble, dates.NewDate(2020, 3, 1))

		r.SetEndTime(d)
		So(r.Time(), ShouldResemble, d.Add(-Period))
		So(r.EndTime(), ShouldResemble, d)
		So(r.Date, ShouldResemble, dates.NewDate(2020, 2, 29))
	})

	Convey("CSV renders fields in schema order", t, func() {
		r := NewReader(Config{Symbol: "WIKI/FB"})
		_, err := r.ReadLine("Date,Open,Close,Volume")
		So(err, ShouldBeNil)

		Convey("full row", func() {
			rec, err := r.ReadLine("2020-01-02,10,10.5,1000")
			So(err, ShouldBeNil)
			So(rec.Schema(), ShouldResemble, Schema{"date", "open", "close", "volume"})
			So(rec.CSV(), ShouldResemble, []string{"2020-01-02", "10", "10.5", "1000"})
		})

		Convey("short row renders missing columns empty", func() {
			rec, err := r.ReadLine("2020-01-03,10")
			So(err, ShouldBeNil)
			So(rec.CSV(), ShouldResemble, []string{"2020-01-03", "10", "", ""})
		})
	})

	Convey("String", t, func() {
		r := NewReader(Config{Symbol: "WIKI/FB"})
		_, err := r.ReadLine("Date,Close")
		So(err, ShouldBeNil)
		rec, err := r.ReadLine("2020-01-02,10.5")
		So(err, ShouldBeNil)
		So(rec.String(), ShouldEqual, "WIKI/FB 2020-01-02 value=10.5")
	})
}
