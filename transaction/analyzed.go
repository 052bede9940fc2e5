// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

// Location - a storage location touched by a transaction
type Location struct {
	Key []byte

	// session id plus one, zero when not registered
	id uint64
}

// Analyzed - a transaction with its sender and read/write hints
type Analyzed struct {
	Payload interface{}
	Sender  []byte
	Writes  []Location
	Reads   []Location

	// session id plus one, zero when not registered
	senderID uint64
}

// NewLocation - location for a key, the key is not copied
func NewLocation(key []byte) Location {
	return Location{Key: key}
}

// ID - the session id of a registered location
func (l *Location) ID() (int, bool) {
	if 0 == l.id {
		return 0, false
	}
	return int(l.id - 1), true
}

// SetID - annotate with a session id
func (l *Location) SetID(id int) {
	l.id = uint64(id) + 1
}

// SenderID - the session id of the sender
func (a *Analyzed) SenderID() (int, bool) {
	if 0 == a.senderID {
		return 0, false
	}
	return int(a.senderID - 1), true
}

// SetSenderID - annotate with a session sender id
func (a *Analyzed) SetSenderID(id int) {
	a.senderID = uint64(id) + 1
}

// Touches - call f for every write then every read location
//
// the location pointer refers into the transaction so annotations
// made through it are kept
func (a *Analyzed) Touches(f func(loc *Location, isWrite bool) error) error {
	for i := range a.Writes {
		if err := f(&a.Writes[i], true); nil != err {
			return err
		}
	}
	for i := range a.Reads {
		if err := f(&a.Reads[i], false); nil != err {
			return err
		}
	}
	return nil
}

// TouchCount - total number of read and write hints
func (a *Analyzed) TouchCount() int {
	return len(a.Writes) + len(a.Reads)
}
