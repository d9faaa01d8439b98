package detector

import "testing"

func TestShellDetector_SingleRule(t *testing.T) {
	rules := []Rule{{Command: "git", Patterns: []string{"push"}}}

	tests := []struct {
		name      string
		command   string
		wantBlock bool
	}{
		{"Direct git push", "git push", true},
		{"Git push with args", "git push origin main", true},
		{"Git pull allowed", "git pull", false},
		{"Full path", "/usr/bin/git push", true},
		{"Inside sh -c", "sh -c 'git push'", true},
		{"Inside eval", "eval 'git push origin main'", true},
		{"Chained", "git add . && git push", true},
		{"Dynamic subcommand", "git $CMD", true},
		{"Dynamic command name", "$TOOL push", true},
		{"Unparseable blocked", "if then fi ((", true},
		{"Unrelated command", "ls -la", false},
		{"Git status allowed", "git status", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewShellDetector(rules, 10)
			got := d.ShouldBlock(tt.command)
			if got != tt.wantBlock {
				t.Errorf("ShouldBlock(%q) = %v, want %v; issues: %v", tt.command, got, tt.wantBlock, d.Issues())
			}
		})
	}
}

func TestShellDetector_WildcardAndMultipleRules(t *testing.T) {
	rules := []Rule{
		{Command: "kubectl", Patterns: []string{"*"}},
		{Command: "aws", Patterns: []string{"delete-bucket", "terminate-instances"}},
	}

	tests := []struct {
		name      string
		command   string
		wantBlock bool
	}{
		{"Wildcard blocks bare command", "kubectl get pods", true},
		{"Wildcard blocks without args", "kubectl", true},
		{"AWS matching pattern", "aws s3api delete-bucket --bucket b", true},
		{"AWS non-matching pattern", "aws s3 ls", false},
		{"Unlisted command", "terraform apply", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewShellDetector(rules, 10)
			got := d.ShouldBlock(tt.command)
			if got != tt.wantBlock {
				t.Errorf("ShouldBlock(%q) = %v, want %v; issues: %v", tt.command, got, tt.wantBlock, d.Issues())
			}
		})
	}
}

func TestShellDetector_IssuesReset(t *testing.T) {
	d := NewShellDetector([]Rule{{Command: "git", Patterns: []string{"push"}}}, 10)

	if !d.ShouldBlock("git push") {
		t.Fatal("expected block")
	}
	issues := d.Issues()
	if len(issues) == 0 {
		t.Fatal("expected issues after block")
	}
	if issues[0] != "blocked git command" {
		t.Errorf("Issues()[0] = %q, want %q", issues[0], "blocked git command")
	}

	if d.ShouldBlock("git status") {
		t.Fatal("expected allow")
	}
	if issues := d.Issues(); issues != nil {
		t.Errorf("expected issues reset, got %v", issues)
	}
}
