// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/partitioner/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"), "absolute")
	assert.Equal(t, "/data/x", util.EnsureAbsolute("/data", "./log/../x"), "cleaned")
}

func TestEnsureDirectory(t *testing.T) {
	base := t.TempDir()

	d, err := util.EnsureDirectory(base, "a/b")
	require.NoError(t, err, "create")
	assert.Equal(t, filepath.Join(base, "a", "b"), d, "path")

	info, err := os.Stat(d)
	require.NoError(t, err, "stat")
	assert.True(t, info.IsDir(), "is directory")

	// existing directory is accepted
	_, err = util.EnsureDirectory(base, "a/b")
	assert.NoError(t, err, "repeat")

	assert.True(t, util.EnsureFileExists(d), "exists")
	assert.False(t, util.EnsureFileExists(filepath.Join(base, "missing")), "missing")
}
