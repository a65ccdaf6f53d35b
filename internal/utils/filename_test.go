package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain name", in: "ACME", want: "ACME"},
		{name: "spaces collapse", in: "ACME  Pte   Ltd", want: "ACME_Pte_Ltd"},
		{name: "path separators", in: "../etc/passwd", want: "etc_passwd"},
		{name: "windows reserved chars", in: `a<b>c:"d"`, want: "a_b_c__d"},
		{name: "leading and trailing dots", in: "..name..", want: "name"},
		{name: "only invalid chars", in: `/\?*`, want: "unknown"},
		{name: "empty", in: "", want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}
