package token

import "testing"

func TestQuote(t *testing.T) {
	tts := []struct {
		in, out string
	}{
		{in: ``, out: `""`},
		{in: `GND`, out: `"GND"`},
		{in: `10uF "X7R"`, out: `"10uF \"X7R\""`},
		{in: `a\b`, out: `"a\\b"`},
		{in: "tab\there", out: "\"tab\there\""},
	}
	for _, tt := range tts {
		if got := Quote(tt.in); got != tt.out {
			t.Errorf("Quote(%q): got %s, want %s", tt.in, got, tt.out)
		}
	}
}

func TestQuotedToString(t *testing.T) {
	tts := []struct {
		in, out string
	}{
		{in: `""`, out: ``},
		{in: `"GND"`, out: `GND`},
		{in: `"a\"b"`, out: `a"b`},
		{in: `"a\\b"`, out: `a\b`},
		// unknown escapes keep their backslash
		{in: `"a\nb"`, out: `a\nb`},
		{in: `"trailing\"`, out: `trailing\`},
	}
	for _, tt := range tts {
		if got := QuotedToString([]byte(tt.in)); got != tt.out {
			t.Errorf("QuotedToString(%s): got %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, v := range []string{``, `a`, `a"b`, `a\b`, `a\nb`, `\\`, `"`, `mixed \" and \\`} {
		q := Quote(v)
		if got := QuotedToString([]byte(q)); got != v {
			t.Errorf("round trip %q -> %s -> %q", v, q, got)
		}
	}
}
