// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/serieshub/pkg/pointer"
)

/*
TestPointer verifies absent versus zero handling.
*/
func TestPointer(t *testing.T) {
	var absent *bool

	assert.False(t, pointer.Val(absent))
	assert.True(t, pointer.Fallback(absent, true))
	assert.False(t, pointer.Fallback(pointer.To(false), true))
	assert.Equal(t, 7, pointer.Val(pointer.To(7)))
}
