package format

import "testing"

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"rfc3339", "2024-01-01T00:00:00Z", "01.01.2024"},
		{"rfc3339 with offset", "2024-06-15T18:30:00+03:00", "15.06.2024"},
		{"date only", "2024-12-31", "31.12.2024"},
		{"empty", "", "-"},
		{"garbage passes through", "tomorrow", "tomorrow"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Date(tc.input); got != tc.want {
				t.Errorf("Date(%q) = %q, expected %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"rfc3339", "2024-01-01T09:05:00Z", "01.01.2024 09:05"},
		{"midnight", "2024-03-08T00:00:00Z", "08.03.2024 00:00"},
		{"empty", "", "-"},
		{"garbage passes through", "soon", "soon"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DateTime(tc.input); got != tc.want {
				t.Errorf("DateTime(%q) = %q, expected %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestShortenID(t *testing.T) {
	tests := []struct {
		name   string
		id     any
		length int
		want   string
	}{
		{"short number untouched", 42, 8, "42"},
		{"exactly at limit", "12345678", 8, "12345678"},
		{"long string truncated", "1234567890abcdef", 8, "12345678..."},
		{"custom length", "abcdefghij", 4, "abcd..."},
		{"zero length falls back to default", "123456789", 0, "12345678..."},
		{"negative length falls back to default", "1234", -1, "1234"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShortenID(tc.id, tc.length); got != tc.want {
				t.Errorf("ShortenID(%v, %d) = %q, expected %q", tc.id, tc.length, got, tc.want)
			}
		})
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "Ann", 5, "Ann"},
		{"exact", "Hello", 5, "Hello"},
		{"truncated", "Alexander", 5, "Alex…"},
		{"width one", "Alexander", 1, "…"},
		{"zero width", "anything", 0, ""},
		{"newlines flattened", "a\nb", 5, "a b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Cell(tc.input, tc.width); got != tc.want {
				t.Errorf("Cell(%q, %d) = %q, expected %q", tc.input, tc.width, got, tc.want)
			}
		})
	}
}

func TestCell_WideRunes(t *testing.T) {
	// Each CJK rune occupies two display cells
	got := Cell("日本語テスト", 5)
	if got != "日本…" {
		t.Errorf("Cell wide runes = %q, expected %q", got, "日本…")
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 5); got != "ab   " {
		t.Errorf("Pad(ab, 5) = %q", got)
	}
	if got := Pad("abcdef", 4); got != "abc…" {
		t.Errorf("Pad(abcdef, 4) = %q", got)
	}
	if len([]rune(Pad("日本", 5))) == 0 {
		t.Error("Pad should handle wide runes")
	}
}
