package version

import (
	"regexp"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q does not match semver format (x.y.z)", Version)
	}
	if Name == "" {
		t.Error("Name is empty")
	}
}

func TestString(t *testing.T) {
	old := Commit
	defer func() { Commit = old }()

	Commit = "abc123"
	if got, want := String(), "texunc "+Version+" (commit abc123)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
