package utils

import "testing"

func TestEscapeMarkdown(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Thịt chiên", "Thịt chiên"},
		{"Cá diêu Hồng sốt cà", "Cá diêu Hồng sốt cà"},
		{"mon_la *dep*", "mon\\_la \\*dep\\*"},
		{"a.b!c", "a\\.b\\!c"},
	}
	for _, c := range cases {
		if got := EscapeMarkdown(c.in); got != c.want {
			t.Errorf("EscapeMarkdown(%q) = %q, muốn %q", c.in, got, c.want)
		}
	}
}
