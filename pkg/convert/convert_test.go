// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/serieshub/pkg/convert"
)

/*
TestToInt64 verifies that malformed input collapses to zero.
*/
func TestToInt64(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"42", 42},
		{"", 0},
		{"abc", 0},
		{"-7", -7},
		{"9223372036854775807", 9223372036854775807},
		{"1.5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.ToInt64(tt.input))
		})
	}
}
