package encoding

import "testing"

func TestHeaderText(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   string
	}{
		{"plain", []byte("solid cube"), "solid cube"},
		{"nul padded", append([]byte("COLOR="), make([]byte, 74)...), "COLOR="},
		{"space padded", []byte("exported   "), "exported"},
		{"control chars", []byte("a\tb\nc"), "a b c"},
		{"windows-1252", []byte{'c', 'a', 'f', 0xE9}, "café"},
		{"empty", make([]byte, 80), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HeaderText(tc.header); got != tc.want {
				t.Errorf("HeaderText() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWindows1252RoundTrip(t *testing.T) {
	s := "Grüße ©"
	b := UTF8ToWindows1252(s)
	if len(b) != len([]rune(s)) {
		t.Errorf("expected one byte per rune, got %d bytes", len(b))
	}
	if got := Windows1252ToUTF8(b); got != s {
		t.Errorf("round trip = %q, want %q", got, s)
	}
}
