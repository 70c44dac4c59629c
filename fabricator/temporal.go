package fabricator

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/antithesishq/fabrikate-go/random"
)

const (
	// InstantUpperBound is the exclusive upper bound of fabricated instants, in seconds since
	// the epoch: 2025-01-01T00:00:00Z.
	InstantUpperBound int64 = 1735689600

	MinYear = 1970
	MaxYear = 2030

	MinDurationDays = 1
	MaxDurationDays = 9
)

// zeroOffset is a fixed zone, as opposed to the time.UTC location.
var zeroOffset = time.FixedZone("Z", 0)

// Instant fabricates a UTC time with whole-second precision, uniform in
// [epoch, InstantUpperBound). All derived temporal fabricators delegate to it.
type Instant struct {
	src random.Source
}

func NewInstant(src random.Source) *Instant {
	return &Instant{src: src}
}

func (f *Instant) Fabricate() time.Time {
	return time.Unix(f.src.Range(0, InstantUpperBound), 0).UTC()
}

// LocalDate fabricates the UTC calendar date of an instant.
type LocalDate struct {
	instant *Instant
}

func NewLocalDate(src random.Source) *LocalDate {
	return &LocalDate{instant: NewInstant(src)}
}

func (f *LocalDate) Fabricate() civil.Date {
	return civil.DateOf(f.instant.Fabricate())
}

// LocalTime fabricates the UTC wall clock time of an instant.
type LocalTime struct {
	instant *Instant
}

func NewLocalTime(src random.Source) *LocalTime {
	return &LocalTime{instant: NewInstant(src)}
}

func (f *LocalTime) Fabricate() civil.Time {
	return civil.TimeOf(f.instant.Fabricate())
}

// LocalDateTime fabricates the UTC date and wall clock time of an instant.
type LocalDateTime struct {
	instant *Instant
}

func NewLocalDateTime(src random.Source) *LocalDateTime {
	return &LocalDateTime{instant: NewInstant(src)}
}

func (f *LocalDateTime) Fabricate() civil.DateTime {
	return civil.DateTimeOf(f.instant.Fabricate())
}

// OffsetDateTime fabricates an instant annotated with a fixed zero offset. The offset is
// never randomized.
type OffsetDateTime struct {
	instant *Instant
}

func NewOffsetDateTime(src random.Source) *OffsetDateTime {
	return &OffsetDateTime{instant: NewInstant(src)}
}

func (f *OffsetDateTime) Fabricate() time.Time {
	return f.instant.Fabricate().In(zeroOffset)
}

// ZonedDateTime fabricates an instant in the UTC location.
type ZonedDateTime struct {
	instant *Instant
}

func NewZonedDateTime(src random.Source) *ZonedDateTime {
	return &ZonedDateTime{instant: NewInstant(src)}
}

func (f *ZonedDateTime) Fabricate() time.Time {
	return f.instant.Fabricate().In(time.UTC)
}

// OffsetTime is a wall clock time with a UTC offset, in seconds east of UTC.
type OffsetTime struct {
	Time   civil.Time
	Offset int
}

func (t OffsetTime) String() string {
	if t.Offset == 0 {
		return t.Time.String() + "Z"
	}
	sign, offset := '+', t.Offset
	if offset < 0 {
		sign, offset = '-', -offset
	}
	return fmt.Sprintf("%s%c%02d:%02d", t.Time, sign, offset/3600, offset%3600/60)
}

// OffsetTimeFabricator fabricates the UTC wall clock time of an instant with a zero offset.
type OffsetTimeFabricator struct {
	instant *Instant
}

func NewOffsetTime(src random.Source) *OffsetTimeFabricator {
	return &OffsetTimeFabricator{instant: NewInstant(src)}
}

func (f *OffsetTimeFabricator) Fabricate() OffsetTime {
	return OffsetTime{Time: civil.TimeOf(f.instant.Fabricate()), Offset: 0}
}

// Date fabricates the platform date for an instant: the same moment as Instant, in the local
// location.
type Date struct {
	instant *Instant
}

func NewDate(src random.Source) *Date {
	return &Date{instant: NewInstant(src)}
}

func (f *Date) Fabricate() time.Time {
	return time.Unix(f.instant.Fabricate().Unix(), 0)
}

// YearMonth is a month of a given year.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// YearMonthFabricator fabricates a year uniform in [MinYear, MaxYear] and, independently, a
// month uniform in [January, December]. Both bounds are inclusive.
type YearMonthFabricator struct {
	src random.Source
}

func NewYearMonth(src random.Source) *YearMonthFabricator {
	return &YearMonthFabricator{src: src}
}

func (f *YearMonthFabricator) Fabricate() YearMonth {
	year := int(f.src.Range(MinYear, MaxYear+1))
	month := time.Month(f.src.Range(int64(time.January), int64(time.December)+1))
	return YearMonth{Year: year, Month: month}
}

// Duration fabricates a whole number of days in [MinDurationDays, MaxDurationDays].
type Duration struct {
	src random.Source
}

func NewDuration(src random.Source) *Duration {
	return &Duration{src: src}
}

func (f *Duration) Fabricate() time.Duration {
	return time.Duration(f.src.Range(MinDurationDays, MaxDurationDays+1)) * 24 * time.Hour
}
