package detector

import "testing"

func TestStripQuoted(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{"No quotes", "git status", "git status"},
		{"Double quoted", `git commit -m "hello world"`, "git commit -m "},
		{"Single quoted", `echo 'hello world'`, "echo "},
		{"Mixed quotes", `git commit -m "a" -m 'b' --amend`, "git commit -m  -m  --amend"},
		{"Double inside single survives as part of single", `echo 'say "hi"'`, "echo "},
		{"Unterminated double quote left alone", `echo "oops`, `echo "oops`},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripQuoted(tt.command); got != tt.want {
				t.Errorf("StripQuoted(%q) = %q, want %q", tt.command, got, tt.want)
			}
		})
	}
}
