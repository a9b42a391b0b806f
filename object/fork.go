// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import "log/slog"

// forkPrivateIfNecessary returns o itself if it has at most n users,
// and otherwise a copy of it with a new id, added after it under the
// same parent, for the caller to reference instead. Clones and objects
// without a parent are never forked.
func forkPrivateIfNecessary(o Object, n int) Object {
	ob := o.AsObject()
	if ob.hrefCount <= n || ob.cloned || ob.node == nil || ob.node.Parent() == nil {
		return o
	}
	doc := ob.doc
	dup := ob.node.Duplicate(doc.rdoc)
	dup.SetAttribute("id", doc.GenerateUniqueID(ob.LocalTag()))
	ob.node.Parent().AddChild(dup, ob.node)
	fk := doc.ObjectByRepr(dup)
	if fk == nil {
		return o
	}
	slog.Debug("object: forked shared resource", "object", ob.String(), "users", ob.hrefCount, "fork", fk.AsObject().ID())
	return fk
}
