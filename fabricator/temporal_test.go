package fabricator

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-quicktest/qt"
	"pgregory.net/rapid"

	"github.com/antithesishq/fabrikate-go/random"
)

var upperBound = time.Unix(InstantUpperBound, 0).UTC()

func TestInstantUpperBoundIs2025(t *testing.T) {
	qt.Assert(t, qt.Equals(upperBound, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestInstantWindow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := NewInstant(random.New(rapid.Int64().Draw(t, "seed")))
		for i := 0; i < 50; i++ {
			v := f.Fabricate()
			if v.Before(time.Unix(0, 0)) || !v.Before(upperBound) {
				t.Fatalf("%v outside [epoch, %v)", v, upperBound)
			}
			if v.Location() != time.UTC || v.Nanosecond() != 0 {
				t.Fatalf("%v is not a whole-second UTC instant", v)
			}
		}
	})
}

func TestLocalValuesMatchTheirInstant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		instant := NewInstant(random.New(seed)).Fabricate()

		date := NewLocalDate(random.New(seed)).Fabricate()
		clock := NewLocalTime(random.New(seed)).Fabricate()
		dateTime := NewLocalDateTime(random.New(seed)).Fabricate()

		if !date.In(time.UTC).Equal(instant.Truncate(24 * time.Hour)) {
			t.Fatalf("date %v does not match instant %v", date, instant)
		}
		if (civil.DateTime{Date: date, Time: clock}) != dateTime {
			t.Fatalf("date time %v is not %v %v", dateTime, date, clock)
		}
		if !dateTime.In(time.UTC).Equal(instant) {
			t.Fatalf("date time %v does not round trip to %v", dateTime, instant)
		}
	})
}

func TestOffsetAndZonedValuesUseZeroOffset(t *testing.T) {
	src := func() random.Source { return random.New(77) }
	instant := NewInstant(src()).Fabricate()

	offset := NewOffsetDateTime(src()).Fabricate()
	_, secs := offset.Zone()
	qt.Assert(t, qt.Equals(secs, 0))
	qt.Assert(t, qt.IsTrue(offset.Equal(instant)))

	zoned := NewZonedDateTime(src()).Fabricate()
	qt.Assert(t, qt.Equals(zoned.Location(), time.UTC))
	qt.Assert(t, qt.IsTrue(zoned.Equal(instant)))

	ot := NewOffsetTime(src()).Fabricate()
	qt.Assert(t, qt.Equals(ot.Offset, 0))
	qt.Assert(t, qt.Equals(ot.Time, civil.TimeOf(instant)))
}

func TestDateIsTheSameMoment(t *testing.T) {
	instant := NewInstant(random.New(12)).Fabricate()
	date := NewDate(random.New(12)).Fabricate()
	qt.Assert(t, qt.IsTrue(date.Equal(instant)))
	qt.Assert(t, qt.Equals(date.Location(), time.Local))
}

func TestYearMonthBoundsAreInclusive(t *testing.T) {
	f := NewYearMonth(random.New(31))
	years := map[int]bool{}
	months := map[time.Month]bool{}
	for i := 0; i < 5000; i++ {
		ym := f.Fabricate()
		qt.Assert(t, qt.IsTrue(ym.Year >= MinYear && ym.Year <= MaxYear), qt.Commentf("year %d", ym.Year))
		qt.Assert(t, qt.IsTrue(ym.Month >= time.January && ym.Month <= time.December), qt.Commentf("month %d", ym.Month))
		years[ym.Year] = true
		months[ym.Month] = true
	}
	qt.Assert(t, qt.IsTrue(years[MinYear]))
	qt.Assert(t, qt.IsTrue(years[MaxYear]))
	qt.Assert(t, qt.IsTrue(months[time.January]))
	qt.Assert(t, qt.IsTrue(months[time.December]))
	qt.Assert(t, qt.HasLen(months, 12))
}

func TestDurationIsWholeDays(t *testing.T) {
	f := NewDuration(random.New(2))
	seen := map[time.Duration]bool{}
	for i := 0; i < 500; i++ {
		d := f.Fabricate()
		qt.Assert(t, qt.Equals(d%(24*time.Hour), 0))
		qt.Assert(t, qt.IsTrue(d >= 24*time.Hour && d <= 9*24*time.Hour))
		seen[d] = true
	}
	qt.Assert(t, qt.HasLen(seen, MaxDurationDays-MinDurationDays+1))
}

func TestTemporalStrings(t *testing.T) {
	qt.Assert(t, qt.Equals(YearMonth{Year: 1999, Month: time.March}.String(), "1999-03"))

	clock := civil.Time{Hour: 7, Minute: 5, Second: 9}
	qt.Assert(t, qt.Equals(OffsetTime{Time: clock}.String(), "07:05:09Z"))
	qt.Assert(t, qt.Equals(OffsetTime{Time: clock, Offset: -(5*3600 + 30*60)}.String(), "07:05:09-05:30"))
}
