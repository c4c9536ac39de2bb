package mru

import "testing"

func TestFormatLabel(t *testing.T) {
	if got := FormatLabel(3, "/tmp/notes.txt"); got != "&3 /tmp/notes.txt" {
		t.Errorf("FormatLabel = %q, want \"&3 /tmp/notes.txt\"", got)
	}
}

func TestStripLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"&1 /tmp/a.txt", "/tmp/a.txt"},
		{"&9 /spaced path/file", "/spaced path/file"},
		{"  &2 /tmp/b.txt  ", "/tmp/b.txt"},
		{"/tmp/plain.txt", "/tmp/plain.txt"},
		{"&12 /double-digit", "/double-digit"},
		{"&x not-a-digit", "&x not-a-digit"},
		{"", ""},
		{"&1", ""},
	}

	for _, tt := range tests {
		if got := StripLabel(tt.label); got != tt.want {
			t.Errorf("StripLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestMnemonicFor(t *testing.T) {
	for rank := 0; rank < Capacity; rank++ {
		if got := MnemonicFor(rank); got != rank+1 {
			t.Errorf("MnemonicFor(%d) = %d, want %d", rank, got, rank+1)
		}
	}
}

func TestFormatStripRoundTrip(t *testing.T) {
	paths := []string{"/tmp/a.txt", "/home/user/My Documents/report.odt", "rel/path.go"}
	for i, p := range paths {
		label := FormatLabel(i+1, p)
		if got := StripLabel(label); got != p {
			t.Errorf("StripLabel(FormatLabel(%d, %q)) = %q", i+1, p, got)
		}
	}
}
