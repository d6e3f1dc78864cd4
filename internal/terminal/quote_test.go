package terminal

import "testing"

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "''"},
		{"plain", "plain"},
		{"/usr/bin/bat", "/usr/bin/bat"},
		{"two words", "'two words'"},
		{"don't", `'don'"'"'t'`},
		{"a$b", "'a$b'"},
		{"semi;colon", "'semi;colon'"},
		{"star*", "'star*'"},
	}
	for _, tt := range tests {
		if got := ShellQuote(tt.in); got != tt.want {
			t.Errorf("ShellQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCmdQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"plain", "plain"},
		{"two words", `"two words"`},
		{`say "hi"`, `"say hi"`},
		{"a&b", `"a&b"`},
		{"pipe|me", `"pipe|me"`},
	}
	for _, tt := range tests {
		if got := CmdQuote(tt.in); got != tt.want {
			t.Errorf("CmdQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinCommand_NoArgs(t *testing.T) {
	if got := JoinCommand("vim", nil, false); got != "vim" {
		t.Errorf("JoinCommand = %q, want vim", got)
	}
}

func TestJoinCommand_QuotesArgs(t *testing.T) {
	got := JoinCommand("vim", []string{"my file.txt", "plain.txt"}, false)
	want := "vim 'my file.txt' plain.txt"
	if got != want {
		t.Errorf("JoinCommand = %q, want %q", got, want)
	}
}

func TestJoinCommand_AppKeptVerbatim(t *testing.T) {
	got := JoinCommand("python -i", []string{"script.py"}, false)
	want := "python -i script.py"
	if got != want {
		t.Errorf("JoinCommand = %q, want %q", got, want)
	}
}

func TestJoinCommand_WindowsQuoting(t *testing.T) {
	got := JoinCommand("notepad", []string{`C:\My Docs\a.txt`}, true)
	want := `notepad "C:\My Docs\a.txt"`
	if got != want {
		t.Errorf("JoinCommand = %q, want %q", got, want)
	}
}
