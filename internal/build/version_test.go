package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Modifies the global Version, so the cases run sequentially.
func TestIsDevBuild(t *testing.T) {
	tests := map[string]struct {
		version string
		want    bool
	}{
		"dev version": {
			version: "dev",
			want:    true,
		},
		"release version": {
			version: "v1.2.0",
			want:    false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			orig := Version
			Version = tt.version
			defer func() { Version = orig }()

			assert.Equal(t, tt.want, IsDevBuild())
		})
	}
}
