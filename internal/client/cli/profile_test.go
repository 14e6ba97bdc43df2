package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitInterests(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "comma separated", input: "hiking,coffee,jazz", want: []string{"hiking", "coffee", "jazz"}},
		{name: "spaces trimmed", input: " hiking , coffee ", want: []string{"hiking", "coffee"}},
		{name: "empty entries dropped", input: "hiking,,coffee,", want: []string{"hiking", "coffee"}},
		{name: "empty input", input: "", want: []string{}},
		{name: "only separators", input: " , , ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitInterests(tt.input))
		})
	}
}
