package version

import (
	"strings"
	"testing"
)

func TestStringDefaults(t *testing.T) {
	got := String()
	if !strings.HasPrefix(got, "chromatone version dev") {
		t.Errorf("String() = %q, want chromatone version dev prefix", got)
	}
	if strings.Contains(got, "commit") {
		t.Errorf("String() = %q, should omit commit when unstamped", got)
	}
}

func TestStringStamped(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	Version = "1.2.3"
	Commit = "0123456789abcdef"
	Date = "2026-08-30T00:00:00Z"

	got := String()
	if !strings.Contains(got, "1.2.3") || !strings.Contains(got, "01234567") {
		t.Errorf("String() = %q, want version and 8-char commit", got)
	}

	// Short commits must not panic the slice.
	Commit = "abc"
	if got := String(); !strings.Contains(got, "commit: abc") {
		t.Errorf("String() = %q, want full short commit", got)
	}
}
