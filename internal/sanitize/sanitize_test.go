package sanitize

import (
	"strings"
	"testing"
)

func TestDisplayPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/home/alice/code/app/main.go", "main.go"},
		{"main.go", "main.go"},
		{"~/secrets/notes.md", "notes.md"},
		{`C:\Users\bob\project\app.ts`, "app.ts"},
		{"/home/alice/code/app/", "app"},
		{"", "file"},
		{"/", "file"},
		{"~", "file"},
		{"..", "file"},
	}
	for _, tc := range cases {
		if got := DisplayPath(tc.in); got != tc.want {
			t.Errorf("DisplayPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestProjectName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/Users/alice/code/myproj", "myproj"},
		{"-Users-alice-code-myproj", "myproj"},
		{"myproj", "myproj"},
		{"my-app", "my-app"},
		{`C:\Users\bob\widget`, "widget"},
		{"", "project"},
		{"---", "project"},
		{"/", "project"},
	}
	for _, tc := range cases {
		if got := ProjectName(tc.in); got != tc.want {
			t.Errorf("ProjectName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"/home/alice/code/app/main.go",
		"-Users-alice-code-myproj",
		"~/x/y",
		"",
		"plain",
	}
	for _, in := range inputs {
		once := DisplayPath(in)
		if twice := DisplayPath(once); twice != once {
			t.Errorf("DisplayPath not idempotent on %q: %q then %q", in, once, twice)
		}
		once = ProjectName(in)
		if twice := ProjectName(once); twice != once {
			t.Errorf("ProjectName not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestNoPathDetailEscapes(t *testing.T) {
	inputs := []string{
		"/home/alice/code/app/main.go",
		`C:\Users\bob\project\app.ts`,
		"~/secrets/creds.json",
		"/var/lib/deep/nested/tree/file.py",
	}
	for _, in := range inputs {
		for _, out := range []string{DisplayPath(in), ProjectName(in)} {
			if strings.ContainsAny(out, "/\\") {
				t.Errorf("output %q from %q still contains a path separator", out, in)
			}
			if strings.Contains(out, "~") {
				t.Errorf("output %q from %q still contains a home token", out, in)
			}
		}
	}
}
