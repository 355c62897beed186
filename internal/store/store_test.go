package store

import "testing"

func TestKey(t *testing.T) {
	if got := Key("26415"); got != "book:26415" {
		t.Fatalf("Key(26415) = %q, want %q", got, "book:26415")
	}

	if got := Key(""); got != KeyPrefix {
		t.Fatalf("Key(\"\") = %q, want bare prefix", got)
	}
}
