package version

import (
	"strings"
	"testing"
)

func TestGetFullVersion(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "v9.9.9"

	got := GetFullVersion()
	if !strings.HasPrefix(got, "v9.9.9 (commit: ") {
		t.Errorf("GetFullVersion() = %q", got)
	}
	if GetVersion() != "v9.9.9" {
		t.Errorf("GetVersion() = %q", GetVersion())
	}
	if GetCommit() == "" || GetDate() == "" {
		t.Error("commit and date should have defaults")
	}
}
