package fan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpeed(t *testing.T) {
	var tests = []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{arg: "0", want: 0},
		{arg: "28", want: 28},
		{arg: "255", want: 255},
		{arg: "256", wantErr: true},
		{arg: "-1", wantErr: true},
		{arg: "fast", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			// WHEN
			value, err := parseSpeed(tt.arg)

			// THEN
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, value)
			}
		})
	}
}
