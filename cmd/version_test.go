package cmd

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "cairo-coverage ")
}

func TestVersionLines(t *testing.T) {
	tests := []struct {
		name    string
		stamped string
		info    *debug.BuildInfo
		ok      bool
		want    []string
	}{
		{
			name: "no build info",
			want: []string{"cairo-coverage unknown"},
		},
		{
			name: "module version",
			info: &debug.BuildInfo{GoVersion: "go1.25.1", Main: debug.Module{Version: "v0.3.0"}},
			ok:   true,
			want: []string{"cairo-coverage v0.3.0", "built with go1.25.1"},
		},
		{
			name: "development build",
			info: &debug.BuildInfo{GoVersion: "go1.25.1", Main: debug.Module{Version: "(devel)"}},
			ok:   true,
			want: []string{"cairo-coverage unknown", "built with go1.25.1"},
		},
		{
			name:    "stamped version wins",
			stamped: "v1.0.0",
			info:    &debug.BuildInfo{GoVersion: "go1.25.1", Main: debug.Module{Version: "v0.3.0"}},
			ok:      true,
			want:    []string{"cairo-coverage v1.0.0", "built with go1.25.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versionLines(tt.stamped, tt.info, tt.ok))
		})
	}
}
