package gameclock

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh int) time.Time {
	return time.Date(y, m, d, hh, 0, 0, 0, time.Local)
}

func TestGameDayMidnightRollover(t *testing.T) {
	// 2am with a 4am day start still belongs to the previous day.
	now := date(2025, time.March, 10, 2)
	got := GameDay(now, 4)
	if want := date(2025, time.March, 9, 0); !got.Equal(want) {
		t.Fatalf("GameDay(2am, start=4)=%v, want %v", got, want)
	}

	// 5am with a 4am day start is already today.
	now = date(2025, time.March, 10, 5)
	got = GameDay(now, 4)
	if want := date(2025, time.March, 10, 0); !got.Equal(want) {
		t.Fatalf("GameDay(5am, start=4)=%v, want %v", got, want)
	}
}

func TestGameDayZeroOffset(t *testing.T) {
	now := date(2025, time.March, 10, 0)
	if got := GameDay(now, 0); !got.Equal(date(2025, time.March, 10, 0)) {
		t.Fatalf("GameDay(midnight, start=0)=%v", got)
	}
}

func TestISODatePadding(t *testing.T) {
	if got := ISODate(date(2025, time.January, 3, 12)); got != "2025-01-03" {
		t.Fatalf("ISODate=%q, want 2025-01-03", got)
	}
}

func TestParseISODateRoundTrip(t *testing.T) {
	d, err := ParseISODate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseISODate: %v", err)
	}
	if got := ISODate(d); got != "2024-02-29" {
		t.Fatalf("round trip=%q", got)
	}
	if _, err := ParseISODate("garbage"); err == nil {
		t.Fatalf("expected error for bad date")
	}
}

func TestWeekIdentifierStability(t *testing.T) {
	// With week-starts-Monday, days 1..7 of the year share week 1,
	// day 8 begins week 2.
	jan6 := date(2025, time.January, 6, 12)
	jan7 := date(2025, time.January, 7, 12)
	jan8 := date(2025, time.January, 8, 12)

	w6 := WeekIdentifier(jan6, true)
	w7 := WeekIdentifier(jan7, true)
	w8 := WeekIdentifier(jan8, true)

	if w6 != w7 {
		t.Fatalf("same week differs: %q vs %q", w6, w7)
	}
	if w6 != "2025-W01" {
		t.Fatalf("week id=%q, want 2025-W01", w6)
	}
	if w8 != "2025-W02" {
		t.Fatalf("next week id=%q, want 2025-W02", w8)
	}
}

func TestWeekIdentifierSundayOffset(t *testing.T) {
	// Sunday start shifts the block boundary by one day: day 7 already
	// lands in week 2.
	jan7 := date(2025, time.January, 7, 12)
	if got := WeekIdentifier(jan7, false); got != "2025-W02" {
		t.Fatalf("week id=%q, want 2025-W02", got)
	}
	jan6 := date(2025, time.January, 6, 12)
	if got := WeekIdentifier(jan6, false); got != "2025-W01" {
		t.Fatalf("week id=%q, want 2025-W01", got)
	}
}

func TestWeekIdentifierYearRollover(t *testing.T) {
	dec31 := date(2024, time.December, 31, 12)
	jan1 := date(2025, time.January, 1, 12)
	if WeekIdentifier(dec31, true) == WeekIdentifier(jan1, true) {
		t.Fatalf("year boundary should change the identifier")
	}
}

func TestMonthAndYearIdentifiers(t *testing.T) {
	d := date(2025, time.September, 1, 12)
	if got := MonthIdentifier(d); got != "2025-09" {
		t.Fatalf("MonthIdentifier=%q", got)
	}
	if got := YearIdentifier(d); got != "2025" {
		t.Fatalf("YearIdentifier=%q", got)
	}
}
