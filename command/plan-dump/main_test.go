// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/partitioner/plan"
	"github.com/bitmark-inc/partitioner/storage"
)

func twoCellPlan() *plan.Plan {
	return &plan.Plan{
		NumShards: 1,
		NumRounds: 2,
		Shards: []plan.ShardBlocks{
			{
				Shard: 0,
				SubBlocks: []plan.SubBlock{
					{Round: 0, Shard: 0, StartIndex: 0, Transactions: []plan.Transaction{{Original: 1, Index: 0}}},
					{Round: 1, Shard: 0, StartIndex: 1, Transactions: []plan.Transaction{
						{
							Original: 0,
							Index:    1,
							Dependencies: plan.Dependencies{
								Required: []plan.Edge{{Peer: plan.ShardedIndex{Index: 0}, Keys: [][]byte{[]byte("k")}}},
							},
						},
					}},
				},
			},
		},
	}
}

// write a database and close it
func makeDatabase(t *testing.T) (string, plan.Digest) {
	file := filepath.Join(t.TempDir(), "plans.leveldb")
	err := storage.Initialise(file, storage.ReadWrite)
	require.NoError(t, err, "initialise")
	defer storage.Finalise()

	digest, err := storage.StorePlan(7, twoCellPlan())
	require.NoError(t, err, "store")
	return file, digest
}

func run(t *testing.T, arguments ...string) (string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"plan-dump"}, arguments...))
	return w.String(), err
}

func TestList(t *testing.T) {
	file, digest := makeDatabase(t)

	out, err := run(t, "--file", file, "list")
	require.NoError(t, err, "list")
	assert.Equal(t, fmt.Sprintf("7  %x\n", digest), out, "output")
}

func TestShowGrid(t *testing.T) {
	file, _ := makeDatabase(t)

	out, err := run(t, "--file", file, "show", "--block", "7", "--grid")
	require.NoError(t, err, "show")

	reply := gridReply{}
	err = json.Unmarshal([]byte(out), &reply)
	require.NoError(t, err, "decode")
	assert.Equal(t, uint64(7), reply.Block, "block")
	assert.Equal(t, [][][]int{{{1}}, {{0}}}, reply.Grid, "grid")
}

func TestShowPlan(t *testing.T) {
	file, _ := makeDatabase(t)

	out, err := run(t, "--file", file, "show", "--block", "7")
	require.NoError(t, err, "show")

	p := plan.Plan{}
	err = json.Unmarshal([]byte(out), &p)
	require.NoError(t, err, "decode")
	assert.Equal(t, twoCellPlan().Digest(), p.Digest(), "digest")
}

func TestErrors(t *testing.T) {
	file, _ := makeDatabase(t)

	_, err := run(t, "--file", file, "show", "--block", "8")
	assert.Error(t, err, "missing block")

	_, err = run(t, "--file", file, "show")
	assert.Error(t, err, "no block number")

	_, err = run(t, "list")
	assert.Error(t, err, "no database")

	_, err = run(t, "--file", filepath.Join(t.TempDir(), "missing"), "list")
	assert.Error(t, err, "database does not exist")
}

func TestLatest(t *testing.T) {
	file, digest := makeDatabase(t)

	out, err := run(t, "--file", file, "latest")
	require.NoError(t, err, "latest")
	assert.Equal(t, fmt.Sprintf("7  %x\n", digest), out, "output")
}

func TestDelete(t *testing.T) {
	file, _ := makeDatabase(t)

	_, err := run(t, "--file", file, "delete")
	assert.Error(t, err, "no block number")

	_, err = run(t, "--file", file, "delete", "--block", "8")
	assert.Error(t, err, "missing block")

	_, err = run(t, "--file", file, "delete", "--block", "7")
	require.NoError(t, err, "delete")

	out, err := run(t, "--file", file, "list")
	require.NoError(t, err, "list")
	assert.Equal(t, "", out, "list after delete")

	_, err = run(t, "--file", file, "latest")
	assert.Error(t, err, "latest after delete")
}
