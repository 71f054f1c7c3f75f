// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToIntD(t *testing.T) {
	assert.Equal(t, 3, ToIntD("3", 1))
	assert.Equal(t, -2, ToIntD("-2", 1))
	assert.Equal(t, 1, ToIntD("", 1))
	assert.Equal(t, 20, ToIntD("twenty", 20))
}
