package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFrom(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	tests := []struct {
		name       string
		bi         debug.BuildInfo
		wantVer    string
		wantCommit string
	}{
		{
			name: "ModuleVersion",
			bi: debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
				},
			},
			wantVer:    "v0.3.1",
			wantCommit: "abc123",
		},
		{
			name:       "Devel",
			bi:         debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			wantVer:    "dev",
			wantCommit: "none",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = "dev", "none", "unknown"
			fillFrom(&tt.bi)
			if Version != tt.wantVer || Commit != tt.wantCommit {
				t.Errorf("Version=%q Commit=%q, want %q %q", Version, Commit, tt.wantVer, tt.wantCommit)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	defer func(v string) { Version = v }(Version)
	Version = "v1.2.3"

	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", got)
	}
	if got := String(); !strings.Contains(got, "version: v1.2.3") {
		t.Errorf("String() = %q", got)
	}
}
