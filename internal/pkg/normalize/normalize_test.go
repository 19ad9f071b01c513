package normalize

import (
	"testing"
	"time"
)

func TestTime(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", "00:00:00"},
		{"8", "08:00:00"},
		{"17", "17:00:00"},
		{"8:30", "08:30:00"},
		{"8:05:09", "08:05:09"},
		{"08:00:00", "08:00:00"},
		{" 9:15 ", "09:15:00"},
	}
	for _, c := range cases {
		got, err := Time(c.input)
		if err != nil {
			t.Errorf("Time(%q) returned error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("Time(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestTimeIdempotent(t *testing.T) {
	for _, input := range []string{"8", "8:30", "8:30:15", "0", "23:59:59"} {
		once, err := Time(input)
		if err != nil {
			t.Fatalf("Time(%q) returned error: %v", input, err)
		}
		twice, err := Time(once)
		if err != nil {
			t.Fatalf("Time(%q) returned error: %v", once, err)
		}
		if once != twice {
			t.Errorf("Time not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestTimeInvalid(t *testing.T) {
	for _, input := range []string{"8:30:15:00", "abc", "8:xx", "-1"} {
		if _, err := Time(input); err == nil {
			t.Errorf("Time(%q) = nil error, want invalid format", input)
		}
	}
}

func TestDuration(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", "00:00:00"},
		{"0", "00:00:00"},
		{"8", "08:00:00"},
		{"02:00:00", "02:00:00"},
	}
	for _, c := range cases {
		got, err := Duration(c.input)
		if err != nil {
			t.Errorf("Duration(%q) returned error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("Duration(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestMonthDate(t *testing.T) {
	got, err := MonthDate("AUGUST", 2024)
	if err != nil {
		t.Fatalf("MonthDate returned error: %v", err)
	}
	want := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MonthDate(AUGUST, 2024) = %v, want %v", got, want)
	}

	if _, err := MonthDate("Augst", 2024); err == nil {
		t.Error("MonthDate(Augst) = nil error, want invalid format")
	}
	if _, err := MonthDate("", 2024); err == nil {
		t.Error("MonthDate(empty) = nil error, want invalid format")
	}
}

func TestEntryDate(t *testing.T) {
	got, err := EntryDate("8/1/2024")
	if err != nil {
		t.Fatalf("EntryDate returned error: %v", err)
	}
	want := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EntryDate(8/1/2024) = %v, want %v", got, want)
	}

	for _, input := range []string{"8/1", "8-1-2024", "2024/8/1/1", "x/1/2024", "13/1/2024"} {
		if _, err := EntryDate(input); err == nil {
			t.Errorf("EntryDate(%q) = nil error, want invalid format", input)
		}
	}
}

func TestBool(t *testing.T) {
	truthy := []string{"yes", "YES", "Yes", "1", "true", "TRUE"}
	falsy := []string{"", "no", "0", "false", "n/a", "2"}
	for _, input := range truthy {
		if !Bool(input) {
			t.Errorf("Bool(%q) = false, want true", input)
		}
	}
	for _, input := range falsy {
		if Bool(input) {
			t.Errorf("Bool(%q) = true, want false", input)
		}
	}
}
