package csvutil

import (
	"testing"
)

func TestParse(t *testing.T) {
	text := "Employee_ID,Entry_Date,Time_In\n1001,8/1/2024,8:00\n1002, 8/2/2024 ,9:00\n"
	result := Parse(text)

	wantHeader := []string{"employee_id", "entry_date", "time_in"}
	if len(result.Header) != len(wantHeader) {
		t.Fatalf("header length = %d, want %d", len(result.Header), len(wantHeader))
	}
	for i, h := range wantHeader {
		if result.Header[i] != h {
			t.Errorf("header[%d] = %q, want %q", i, result.Header[i], h)
		}
	}

	if len(result.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(result.Rows))
	}
	if result.Rows[0].Line != 2 {
		t.Errorf("first data row line = %d, want 2", result.Rows[0].Line)
	}
	if result.Rows[0].Fields["employee_id"] != "1001" {
		t.Errorf("employee_id = %q, want 1001", result.Rows[0].Fields["employee_id"])
	}
	if result.Rows[1].Fields["entry_date"] != "8/2/2024" {
		t.Errorf("entry_date not trimmed: %q", result.Rows[1].Fields["entry_date"])
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	text := "a,b\n\n1,2\n\n\n3,4\n"
	result := Parse(text)
	if len(result.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(result.Rows))
	}
	// Blank lines do not advance the line counter.
	if result.Rows[0].Line != 2 || result.Rows[1].Line != 3 {
		t.Errorf("row lines = %d, %d, want 2, 3", result.Rows[0].Line, result.Rows[1].Line)
	}
}

func TestParseMalformedRows(t *testing.T) {
	text := "a,b,c\n1,2,3\n1,2\n1,2,3,4\n4,5,6\n"
	result := Parse(text)
	if len(result.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(result.Rows))
	}
	if len(result.Malformed) != 2 {
		t.Fatalf("malformed = %v, want 2 entries", result.Malformed)
	}
	if result.Malformed[0] != 3 || result.Malformed[1] != 4 {
		t.Errorf("malformed lines = %v, want [3 4]", result.Malformed)
	}
}

func TestParseCRLF(t *testing.T) {
	result := Parse("a,b\r\n1,2\r\n")
	if len(result.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(result.Rows))
	}
	if result.Rows[0].Fields["b"] != "2" {
		t.Errorf("field b = %q, want 2", result.Rows[0].Fields["b"])
	}
}

func TestParseEmpty(t *testing.T) {
	result := Parse("")
	if result.Header != nil || len(result.Rows) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}
