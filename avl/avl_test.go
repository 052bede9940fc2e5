// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/partitioner/avl"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doTraverse(t, addList)
	doBounds(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	doTraverse(t, addList)
	doBounds(t, addList)
}

// ascending and descending insertion exercise the single rotations,
// alternating ends exercise the double rotations
func TestListOrdered(t *testing.T) {
	ascending := make([]stringItem, 0, 200)
	descending := make([]stringItem, 0, 200)
	zigzag := make([]stringItem, 0, 200)
	for i := 0; i < 200; i += 1 {
		ascending = append(ascending, stringItem{key(i)})
		descending = append(descending, stringItem{key(199 - i)})
		if 0 == i%2 {
			zigzag = append(zigzag, stringItem{key(i / 2)})
		} else {
			zigzag = append(zigzag, stringItem{key(199 - i/2)})
		}
	}
	for _, list := range [][]stringItem{ascending, descending, zigzag} {
		doTraverse(t, list)
		doBounds(t, list)
	}
}

func TestRandomTree(t *testing.T) {
	r := rand.New(rand.NewSource(20200116))
	for _, total := range []int{1, 2, 3, 17, 2200, 5467} {
		addList := make([]stringItem, total)
		for i := range addList {
			addList[i] = stringItem{key(r.Intn(10000))}
		}
		doTraverse(t, addList)
		doBounds(t, addList)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := avl.New()
	if !tree.IsEmpty() {
		t.Fatal("new tree is not empty")
	}
	if nil != tree.First() || nil != tree.Last() {
		t.Fatal("empty tree has first/last")
	}
	k := stringItem{"0001"}
	if nil != tree.Search(k) || nil != tree.Below(k) || nil != tree.AtOrAbove(k) {
		t.Fatal("empty tree answered a query")
	}
	if !tree.CheckUp() {
		t.Fatal("empty tree inconsistent")
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []stringItem) {

	expected := uniqueSorted(addList)

	tree := build(t, addList)

	if len(expected) != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(expected))
	}

	p := tree.First()
	n := 0
	for i := 0; nil != p; i += 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
}

// compare bound queries against a sorted slice
func doBounds(t *testing.T, addList []stringItem) {

	expected := uniqueSorted(addList)
	tree := build(t, addList)

	for i := -1; i <= 10000; i += 7 {
		probe := key(i)
		k := stringItem{probe}

		// index of first element >= probe
		j := sort.SearchStrings(expected, probe)

		below := tree.Below(k)
		if 0 == j {
			if nil != below {
				t.Fatalf("below %q: actual: %q  expected: nil", probe, below.Key())
			}
		} else if nil == below || 0 != below.Key().Compare(stringItem{expected[j-1]}) {
			t.Fatalf("below %q: actual: %v  expected: %q", probe, below, expected[j-1])
		}

		above := tree.AtOrAbove(k)
		if j == len(expected) {
			if nil != above {
				t.Fatalf("at or above %q: actual: %q  expected: nil", probe, above.Key())
			}
		} else if nil == above || 0 != above.Key().Compare(stringItem{expected[j]}) {
			t.Fatalf("at or above %q: actual: %v  expected: %q", probe, above, expected[j])
		}

		found := tree.Search(k)
		present := j < len(expected) && expected[j] == probe
		if present != (nil != found) {
			t.Fatalf("search %q: found: %v  expected: %v", probe, nil != found, present)
		}
	}
}

func build(t *testing.T, addList []stringItem) *avl.Tree {
	seen := make(map[string]struct{})
	tree := avl.New()
	for _, k := range addList {
		_, dup := seen[k.s]
		seen[k.s] = struct{}{}
		if added := tree.Insert(k); added == dup {
			t.Fatalf("insert %q: added: %v  duplicate: %v", k.s, added, dup)
		}
		if !tree.CheckUp() {
			t.Fatalf("add %q: inconsistent tree", k.s)
		}
	}
	return tree
}

func uniqueSorted(addList []stringItem) []string {
	unique := make(map[string]struct{})
	for _, k := range addList {
		unique[k.s] = struct{}{}
	}
	expected := make([]string, 0, len(unique))
	for k := range unique {
		expected = append(expected, k)
	}
	sort.Strings(expected)
	return expected
}

func key(n int) string {
	if n < 0 {
		return ""
	}
	return fmt.Sprintf("%04d", n)
}
