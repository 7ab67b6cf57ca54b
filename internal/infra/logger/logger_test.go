package logger

import "testing"

func TestMaskEmail(t *testing.T) {
	cases := map[string]string{
		"jane.doe@example.com": "jan***@example.com",
		"jo@example.com":       "jo***@example.com",
		"not-an-email":         "***",
		"":                     "",
	}
	for in, want := range cases {
		if got := MaskEmail(in); got != want {
			t.Errorf("MaskEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMaskPhone(t *testing.T) {
	cases := map[string]string{
		"+12345678901": "+123***8901",
		"08031234567":  "080***4567",
		"1234":         "***",
		"":             "",
	}
	for in, want := range cases {
		if got := MaskPhone(in); got != want {
			t.Errorf("MaskPhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMaskIP(t *testing.T) {
	cases := map[string]string{
		"203.0.113.7":         "203.0.*.*",
		"2001:db8:85a3:8d3::": "2001:db8:85a3:8d3:*:*:*:*",
		"localhost":           "***",
		"":                    "",
	}
	for in, want := range cases {
		if got := MaskIP(in); got != want {
			t.Errorf("MaskIP(%q) = %q, want %q", in, got, want)
		}
	}
}
