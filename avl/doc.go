// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered set with parent pointers to
// allow iteration through the nodes in key order
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are only ever added, an insert of an existing key is ignored.
// Besides exact search the tree answers the two bound queries the
// partitioner needs: the greatest key strictly below a key and the
// least key at or above a key.
package avl
