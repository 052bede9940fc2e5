// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"encoding/binary"
	"math/rand"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/partitioner/fault"
	"github.com/bitmark-inc/partitioner/transaction"
)

// AddressSize - bytes in an account address
const AddressSize = 32

// ConfigurationKey - storage key read by every transfer
var ConfigurationKey = []byte("config/global")

// Configuration - generator settings
type Configuration struct {
	Accounts    int     `gluamapper:"accounts" json:"accounts"`
	HotAccounts int     `gluamapper:"hot_accounts" json:"hot_accounts"`
	HotFraction float64 `gluamapper:"hot_fraction" json:"hot_fraction"`
	ReadConfig  bool    `gluamapper:"read_config" json:"read_config"`
	Seed        int64   `gluamapper:"seed" json:"seed"`
}

// Transfer - payload of a generated transaction
type Transfer struct {
	From     []byte
	To       []byte
	Amount   uint64
	Sequence uint64
}

// Generator - produces blocks of transfers
type Generator struct {
	conf      Configuration
	rng       *rand.Rand
	accounts  [][]byte
	sequences []uint64
}

// New - create a generator, identical configurations produce
// identical block sequences
func New(conf Configuration) (*Generator, error) {
	if conf.Accounts < 2 {
		return nil, fault.ErrInvalidAccountCount
	}
	if conf.HotFraction < 0 || conf.HotFraction > 1 {
		return nil, fault.ErrInvalidHotFraction
	}
	if conf.HotFraction > 0 && (conf.HotAccounts < 2 || conf.HotAccounts > conf.Accounts) {
		return nil, fault.ErrInvalidAccountCount
	}

	g := &Generator{
		conf:      conf,
		rng:       rand.New(rand.NewSource(conf.Seed)),
		accounts:  make([][]byte, conf.Accounts),
		sequences: make([]uint64, conf.Accounts),
	}
	for i := range g.accounts {
		g.accounts[i] = Address(conf.Seed, i)
	}
	return g, nil
}

// Address - the address of an account of a seeded generator
func Address(seed int64, n int) []byte {
	buffer := make([]byte, 16)
	binary.BigEndian.PutUint64(buffer[:8], uint64(seed))
	binary.BigEndian.PutUint64(buffer[8:], uint64(n))
	digest := sha3.Sum256(buffer)
	return digest[:AddressSize]
}

// AccountKey - storage key holding the state of an account
func AccountKey(address []byte) []byte {
	return append([]byte("account/"), address...)
}

// Accounts - number of accounts
func (g *Generator) Accounts() int {
	return len(g.accounts)
}

// Block - the next size transfers
func (g *Generator) Block(size int) ([]*transaction.Analyzed, error) {
	if size < 0 {
		return nil, fault.ErrInvalidBlockSize
	}
	block := make([]*transaction.Analyzed, size)
	for i := range block {
		block[i] = g.transfer()
	}
	return block, nil
}

// pick two distinct accounts
func (g *Generator) pair() (int, int) {
	n := len(g.accounts)
	if g.conf.HotFraction > 0 && g.rng.Float64() < g.conf.HotFraction {
		n = g.conf.HotAccounts
	}
	from := g.rng.Intn(n)
	to := g.rng.Intn(n - 1)
	if to >= from {
		to += 1
	}
	return from, to
}

func (g *Generator) transfer() *transaction.Analyzed {
	from, to := g.pair()
	sequence := g.sequences[from]
	g.sequences[from] += 1

	txn := &transaction.Analyzed{
		Payload: &Transfer{
			From:     g.accounts[from],
			To:       g.accounts[to],
			Amount:   uint64(g.rng.Intn(1000)) + 1,
			Sequence: sequence,
		},
		Sender: g.accounts[from],
		Writes: []transaction.Location{
			transaction.NewLocation(AccountKey(g.accounts[from])),
			transaction.NewLocation(AccountKey(g.accounts[to])),
		},
	}
	if g.conf.ReadConfig {
		txn.Reads = []transaction.Location{
			transaction.NewLocation(ConfigurationKey),
		}
	}
	return txn
}
