package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	Version, GitCommit, BuildDate = "dev", "abc123", "2026-01-01"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("dev build: got %q", got)
	}

	Version, GitCommit = "1.2.0", "unknown"
	if got := GetFullVersion(); got != "1.2.0" {
		t.Errorf("without commit: got %q", got)
	}

	GitCommit = "abc123"
	if got, want := GetFullVersion(), "1.2.0 (abc123, built 2026-01-01)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if GetVersion() != "1.2.0" {
		t.Errorf("GetVersion = %q", GetVersion())
	}
}
