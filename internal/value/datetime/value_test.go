package datetime

import (
	"errors"
	"testing"
	"time"
)

func mustParse(t *testing.T, lexical string) Value {
	t.Helper()
	v, err := Parse([]byte(lexical))
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", lexical, err)
	}
	return v
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want Value
	}{
		{
			name: "already normal",
			in:   Value{Year: 2000, Month: 6, Day: 15, Hour: 12},
			want: Value{Year: 2000, Month: 6, Day: 15, Hour: 12},
		},
		{
			name: "day zero of january",
			in:   Value{Year: 2000, Month: 1, Day: 0, Hour: 5},
			want: Value{Year: 1999, Month: 12, Day: 31, Hour: 5},
		},
		{
			name: "day zero of january year one",
			in:   Value{Year: 1, Month: 1, Day: 0},
			want: Value{Year: -1, Month: 12, Day: 31},
		},
		{
			name: "day zero of march leap",
			in:   Value{Year: 2000, Month: 3, Day: 0},
			want: Value{Year: 2000, Month: 2, Day: 29},
		},
		{
			name: "hour 24",
			in:   Value{Year: 2012, Month: 4, Day: 12, Hour: 24},
			want: Value{Year: 2012, Month: 4, Day: 13},
		},
		{
			name: "minute underflow",
			in:   Value{Year: 2012, Month: 4, Day: 12, Hour: 0, Minute: -1},
			want: Value{Year: 2012, Month: 4, Day: 11, Hour: 23, Minute: 59},
		},
		{
			name: "month overflow",
			in:   Value{Year: -1, Month: 13, Day: 1},
			want: Value{Year: 1, Month: 1, Day: 1},
		},
		{
			name: "many days",
			in:   Value{Year: 2001, Month: 1, Day: 366},
			want: Value{Year: 2002, Month: 1, Day: 1},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2004-05-04T00:00:00Z", "2003-01-02T00:00:00Z", 1},
		{"2003-01-02T00:00:00Z", "2004-05-04T00:00:00Z", -1},
		{"2005-01-01T01:05:22Z", "2004-12-31T23:50:22-01:15", 0},
		{"2000-01-01T00:00:00.1Z", "2000-01-01T00:00:00.05Z", 1},
		{"2000-01-01T00:00:00.100Z", "2000-01-01T00:00:00.1Z", 0},
		{"-0001-12-31T23:59:59Z", "0001-01-01T00:00:00Z", -1},
		{"2000-01-01T12:00:00", "2000-01-01T11:00:00", 1},
	}
	for _, tc := range tests {
		got, err := mustParse(t, tc.a).Compare(mustParse(t, tc.b))
		if err != nil {
			t.Fatalf("Compare(%q, %q) error = %v", tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Fatalf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCompareIndeterminateWhenTimezoneMissing(t *testing.T) {
	withTZ := mustParse(t, "2000-01-01T12:00:00Z")
	withoutTZ := mustParse(t, "2000-01-01T12:00:00")
	if _, err := withTZ.Compare(withoutTZ); !errors.Is(err, ErrIndeterminate) {
		t.Fatalf("Compare() error = %v, want ErrIndeterminate", err)
	}
	if withTZ.Equal(withoutTZ) {
		t.Fatalf("expected values with and without timezone to differ")
	}
}

func TestEqualAcrossOffsets(t *testing.T) {
	a := mustParse(t, "2005-01-01T01:00:05+02:12")
	b := mustParse(t, "2004-12-31T22:48:05Z")
	if !a.Equal(b) {
		t.Fatalf("expected %v to equal %v", a, b)
	}
}

func TestTime(t *testing.T) {
	v := mustParse(t, "2004-12-31T23:50:22.5-01:15")
	got, ok := v.Time()
	if !ok {
		t.Fatalf("Time() reported false for timezoned value")
	}
	want := time.Date(2005, time.January, 1, 1, 5, 22, 500*int(time.Millisecond), time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Time() = %v, want %v", got, want)
	}

	bc := mustParse(t, "-0001-12-31T23:59:00Z")
	got, _ = bc.Time()
	if got.Year() != 0 {
		t.Fatalf("Time().Year() = %d, want 0", got.Year())
	}

	if _, ok := mustParse(t, "2004-12-31T23:50:22").Time(); ok {
		t.Fatalf("Time() reported true for value without timezone")
	}
}

func TestTimeNegativeLeapDay(t *testing.T) {
	leap := mustParse(t, "-0004-02-29T00:00:00Z")
	if got, ok := leap.Time(); ok {
		t.Fatalf("Time() = %v, true; want false for a date time.Time cannot hold", got)
	}

	v := mustParse(t, "-0004-03-01T00:00:00Z")
	got, ok := v.Time()
	if !ok {
		t.Fatalf("Time() reported false for -0004-03-01")
	}
	if got.Year() != -3 || got.Month() != time.March || got.Day() != 1 {
		t.Fatalf("Time() = %v, want -0003-03-01", got)
	}
}
