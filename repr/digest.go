// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repr

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest returns the BLAKE3 hash of the one line serialization of
// the subtree. Two subtrees have the same digest exactly when they
// write the same bytes, which makes it a cheap check that a write
// was idempotent.
func Digest(n *Node) [32]byte {
	h := blake3.New()
	WriteNode(h, n, "")
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// DigestString returns the [Digest] in hexadecimal.
func DigestString(n *Node) string {
	d := Digest(n)
	return hex.EncodeToString(d[:])
}
