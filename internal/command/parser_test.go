package command

import "testing"

func TestParseCommand(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		prefix   string
		wantName string
		wantArgs string
		wantOK   bool
	}{
		{"bare command", ".help", ".", "help", "", true},
		{"command with arg", ".stats ABC12", ".", "stats", "ABC12", true},
		{"name lowered, args preserved", ".HELP Foo Bar", ".", "help", "Foo Bar", true},
		{"internal arg spacing kept", ".price Fiery  Tanto", ".", "price", "Fiery  Tanto", true},
		{"leading space before name", ".  foo bar baz", ".", "foo", "bar baz", true},
		{"trailing space trimmed", ".clan VOID  ", ".", "clan", "VOID", true},
		{"not a command", "hello there", ".", "", "", false},
		{"prefix mid-message", "say .help", ".", "", "", false},
		{"empty content", "", ".", "", "", false},
		{"prefix only", ".", ".", "", "", true},
		{"prefix and whitespace", ".   ", ".", "", "", true},
		{"multi-char prefix", "!!ping now", "!!", "ping", "now", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, args, ok := ParseCommand(tc.content, tc.prefix)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if name != tc.wantName {
				t.Errorf("name = %q, want %q", name, tc.wantName)
			}
			if args != tc.wantArgs {
				t.Errorf("args = %q, want %q", args, tc.wantArgs)
			}
		})
	}
}

func TestParseCommandEmptyPrefix(t *testing.T) {
	if _, _, ok := ParseCommand(".help", ""); ok {
		t.Fatal("empty prefix must never match")
	}
}
