// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/serieshub/pkg/slice"
)

/*
TestUnique verifies that first occurrences keep their order.
*/
func TestUnique(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, slice.Unique([]int64{3, 1, 3, 2, 1}))
	assert.Equal(t, []string{"X", "x"}, slice.Unique([]string{"X", "x", "X"}))
	assert.Nil(t, slice.Unique[int](nil))
}

/*
TestMapFilter verifies the composition used by title normalisation.
*/
func TestMapFilter(t *testing.T) {
	trimmed := slice.Map([]string{" a ", "  ", "b"}, strings.TrimSpace)
	assert.Equal(t, []string{"a", "", "b"}, trimmed)

	kept := slice.Filter(trimmed, func(s string) bool { return s != "" })
	assert.Equal(t, []string{"a", "b"}, kept)

	assert.Empty(t, slice.Filter([]int{-1, 0}, func(v int) bool { return v > 0 }))
}
