// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"cogentcore.org/canvas/config"
	"cogentcore.org/canvas/drawing"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/repr"
	"cogentcore.org/canvas/signal"
	"cogentcore.org/canvas/style"
	"cogentcore.org/canvas/tree"
	"cogentcore.org/canvas/undo"
	"github.com/google/uuid"
)

var (
	// ErrNotSVG is returned for a tree whose root is not svg:svg.
	ErrNotSVG = errors.New("object: root element is not svg:svg")

	// ErrUnknownTag is returned for a tag that has no registered kind.
	ErrUnknownTag = errors.New("object: unknown tag")
)

// maxUpdatePasses bounds the update and modified passes of
// [Document.EnsureUpToDate], for changes that keep causing changes.
const maxUpdatePasses = 32

// Document is the object tree of one SVG document, built over its
// [repr.Document] and kept in sync with it. The repr document is always
// inside a transaction, committed into the undo history by
// [Document.DoneAction].
type Document struct {

	// Settings are the settings of the session.
	Settings config.Settings

	// ResourcesChanged is emitted with the kind of resource, such as
	// image or path-effect, when an object is added to or removed
	// from its list.
	ResourcesChanged signal.Signal[string]

	// Modified is emitted with the flags of the root after
	// [Document.EnsureUpToDate] brought the document up to date.
	Modified signal.Signal[Flags]

	rdoc *repr.Document
	root *Root

	objects   arena
	byRepr    map[*repr.Node]Handle
	ids       map[string]Handle
	idSignals map[string]*signal.Signal[Object]
	resources map[string][]Handle
	orphans   []Handle

	sheet      *style.Sheet
	sheetValid bool

	undo  *undo.Mgr
	views []docView
	obs   *contentObserver

	updatePending bool
}

// docView is one drawing the document is shown in.
type docView struct {
	drawing *drawing.Drawing
	key     uint32
}

// NewDocument returns a new document with an empty root
// and the default settings.
func NewDocument() *Document {
	d, _ := FromRepr(repr.NewDocument(), config.Defaults())
	return d
}

// Load reads a document with the default settings.
func Load(r io.Reader) (*Document, error) {
	return LoadSettings(r, config.Defaults())
}

// LoadSettings reads a document with the given settings.
func LoadSettings(r io.Reader, s config.Settings) (*Document, error) {
	rdoc, err := repr.ParseWithOptions(r, repr.ParseOptions{Strict: s.StrictXML})
	if err != nil {
		return nil, fmt.Errorf("object.Load: %w", err)
	}
	return FromRepr(rdoc, s)
}

// Open reads the document from the given file.
func Open(file string, s config.Settings) (*Document, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadSettings(f, s)
}

// FromRepr builds the objects of the given tree. The changes made while
// building, such as renamed duplicate ids, are not undoable.
func FromRepr(rdoc *repr.Document, s config.Settings) (*Document, error) {
	rn := rdoc.Root()
	if rn == nil || rn.Name() != "svg:svg" {
		name := "nothing"
		if rn != nil {
			name = rn.Name()
		}
		return nil, fmt.Errorf("%w: found %s", ErrNotSVG, name)
	}
	d := &Document{
		Settings:  s,
		rdoc:      rdoc,
		byRepr:    map[*repr.Node]Handle{},
		ids:       map[string]Handle{},
		idSignals: map[string]*signal.Signal[Object]{},
		resources: map[string][]Handle{},
		undo:      undo.NewMgr(s.UndoLimit),
	}
	d.obs = &contentObserver{doc: d}
	rdoc.AddObserver(d.obs)
	rdoc.BeginTransaction()
	d.buildObject(nil, rn, false)
	d.EnsureUpToDate()
	rdoc.Commit()
	rdoc.BeginTransaction()
	return d, nil
}

// Repr returns the backing tree.
func (d *Document) Repr() *repr.Document { return d.rdoc }

// Root returns the root object.
func (d *Document) Root() *Root { return d.root }

// Defs returns the first defs child of the root, or nil.
func (d *Document) Defs() *Defs {
	if d.root == nil {
		return nil
	}
	for _, c := range d.root.Children {
		if defs, ok := c.(*Defs); ok {
			return defs
		}
	}
	return nil
}

// EnsureDefs returns [Document.Defs], adding a defs element as the
// first child of the root if there is none.
func (d *Document) EnsureDefs() *Defs {
	if defs := d.Defs(); defs != nil {
		return defs
	}
	d.root.node.AddChild(d.rdoc.CreateElement("svg:defs"), nil)
	return d.Defs()
}

// Resolve returns the object of the handle, or nil if it was released.
func (d *Document) Resolve(h Handle) Object {
	return d.objects.resolve(h)
}

// ObjectCount returns the number of live objects, clones included.
func (d *Document) ObjectCount() int {
	return d.objects.len()
}

// ObjectByID returns the object with the given id, or nil.
func (d *Document) ObjectByID(id string) Object {
	h, ok := d.ids[id]
	if !ok {
		return nil
	}
	return d.Resolve(h)
}

// ObjectByRepr returns the object built for the given node, or nil.
// Clones are not returned.
func (d *Document) ObjectByRepr(node *repr.Node) Object {
	h, ok := d.byRepr[node]
	if !ok {
		return nil
	}
	return d.Resolve(h)
}

// bindID binds id to o, or unbinds it if o is nil,
// and emits the id signal.
func (d *Document) bindID(id string, o Object) {
	if o == nil {
		delete(d.ids, id)
	} else {
		d.ids[id] = o.AsObject().handle
	}
	if s := d.idSignals[id]; s != nil {
		s.Emit(o)
	}
}

// unbindID unbinds id if it is bound to the object of h.
func (d *Document) unbindID(id string, h Handle) {
	if d.ids[id] == h {
		d.bindID(id, nil)
	}
}

// ConnectIDChanged connects fun to the changes of the object bound to
// id: it is called with the new object, or nil when the id is unbound.
func (d *Document) ConnectIDChanged(id string, fun func(o Object)) signal.Connection {
	s := d.idSignals[id]
	if s == nil {
		s = &signal.Signal[Object]{}
		d.idSignals[id] = s
	}
	return s.Connect(fun)
}

// DisconnectIDChanged removes a connection made by [Document.ConnectIDChanged].
func (d *Document) DisconnectIDChanged(id string, c signal.Connection) {
	s := d.idSignals[id]
	if s == nil {
		return
	}
	s.Disconnect(c)
	if s.Len() == 0 {
		delete(d.idSignals, id)
	}
}

// GenerateUniqueID returns an id that no object has, made of the id
// prefix of the settings, the given prefix and a random suffix.
func (d *Document) GenerateUniqueID(prefix string) string {
	if prefix == "" {
		prefix = "id"
	}
	for {
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		id := d.Settings.IDPrefix + prefix + "-" + suffix
		if _, used := d.ids[id]; !used {
			return id
		}
	}
}

// Resources returns the objects registered for the given kind of
// resource, in registration order.
func (d *Document) Resources(kind string) []Object {
	var res []Object
	for _, h := range d.resources[kind] {
		if o := d.Resolve(h); o != nil {
			res = append(res, o)
		}
	}
	return res
}

// AddResource registers o as a resource of the given kind.
// Clones are not registered.
func (d *Document) AddResource(kind string, o Object) {
	ob := o.AsObject()
	if ob.cloned || slices.Contains(d.resources[kind], ob.handle) {
		return
	}
	d.resources[kind] = append(d.resources[kind], ob.handle)
	d.ResourcesChanged.Emit(kind)
}

// RemoveResource removes o from the resources of the given kind.
func (d *Document) RemoveResource(kind string, o Object) {
	hs := d.resources[kind]
	i := slices.Index(hs, o.AsObject().handle)
	if i < 0 {
		return
	}
	d.resources[kind] = slices.Delete(hs, i, i+1)
	d.ResourcesChanged.Emit(kind)
}

// Stylesheet returns the rules of the style elements of the document.
func (d *Document) Stylesheet() *style.Sheet {
	if d.sheetValid {
		return d.sheet
	}
	d.sheet = &style.Sheet{}
	for _, o := range d.Resources("style") {
		d.sheet.Append(o.(*StyleElem).Sheet())
	}
	d.sheetValid = true
	return d.sheet
}

// stylesheetChanged reads the style of every object again.
func (d *Document) stylesheetChanged() {
	d.sheetValid = false
	if d.root == nil {
		return
	}
	d.root.WalkDown(func(n tree.Node) bool {
		ob := n.(Object).AsObject()
		if ob.released {
			return tree.Continue
		}
		ob.readStyle(0, nil)
		ob.RequestDisplayUpdate(ModifiedFlag | StyleModifiedFlag | StylesheetModifiedFlag)
		return tree.Continue
	})
}

// buildObject creates and builds the object of node as a child of
// parent, or as the root when parent is nil. Nodes whose tag has no
// registered kind get no object.
func (d *Document) buildObject(parent Object, node *repr.Node, cloned bool) Object {
	o, ok := New(node.Name())
	if !ok {
		slog.Debug("object: no kind for tag", "tag", node.Name())
		return nil
	}
	ob := o.AsObject()
	ob.doc = d
	ob.node = node
	ob.cloned = cloned
	if parent != nil {
		pb := parent.AsObject()
		pb.InsertChild(o, pb.childIndexAfter(node.Prev()))
	} else if r, ok := o.(*Root); ok {
		d.root = r
	}
	ob.handle = d.objects.add(o)
	if !cloned {
		d.byRepr[node] = ob.handle
		if id, ok := node.Attribute("id"); ok && id != "" {
			if d.ObjectByID(id) != nil {
				nid := d.GenerateUniqueID(ob.LocalTag())
				slog.Debug("object: id in use, renamed", "id", id, "new", nid)
				node.SetAttribute("id", nid)
				id = nid
			}
			ob.id = id
			ob.Name = id
			d.bindID(id, o)
		}
	}
	o.Build(d, node)
	ob.obs = &nodeObserver{doc: d, h: ob.handle}
	node.AddObserver(ob.obs)
	return o
}

// release releases the object and removes it from the tree.
// It runs once per object.
func (d *Document) release(o Object) {
	ob := o.AsObject()
	if ob.released {
		return
	}
	ob.released = true
	ob.ReleaseSignal.Emit(o)
	o.Release()
	ob.ReleaseSignal.DisconnectAll()
	ob.Detach()
}

// scheduleUpdate records that the root has pending flags.
func (d *Document) scheduleUpdate() {
	d.updatePending = true
}

// IsUpdatePending returns whether changes wait for
// [Document.EnsureUpToDate].
func (d *Document) IsUpdatePending() bool {
	return d.updatePending
}

// rootContext returns the context the root is updated in.
func (d *Document) rootContext() *UpdateContext {
	return &UpdateContext{I2Doc: math32.Identity2(), I2VP: math32.Identity2(), Viewport: d.root.documentViewport()}
}

// EnsureUpToDate runs update and modified passes from the root until
// no flags are left. Changes made by the passes themselves are picked
// up by the next pass. It returns false if the document did not settle
// within a bounded number of passes.
func (d *Document) EnsureUpToDate() bool {
	if d.root == nil {
		return true
	}
	rb := d.root.AsObject()
	for range maxUpdatePasses {
		if rb.uflags == 0 && rb.mflags == 0 {
			break
		}
		flags := rb.uflags | rb.mflags
		if rb.uflags != 0 {
			rb.UpdateDisplay(d.rootContext(), 0)
		}
		rb.EmitModified(0)
		d.Modified.Emit(flags)
	}
	if rb.uflags != 0 || rb.mflags != 0 {
		slog.Warn("object: document did not settle", "passes", maxUpdatePasses)
		return false
	}
	d.updatePending = false
	return true
}

// queueOrphan queues an object for [Document.CollectOrphans].
func (d *Document) queueOrphan(h Handle) {
	d.orphans = append(d.orphans, h)
}

// CollectOrphans deletes the collectable objects that lost their last
// reference, until none are left, and returns how many were deleted.
func (d *Document) CollectOrphans() int {
	n := 0
	for len(d.orphans) > 0 {
		q := d.orphans
		d.orphans = nil
		for _, h := range q {
			o := d.Resolve(h)
			if o == nil {
				continue
			}
			ob := o.AsObject()
			if ob.hrefCount == 0 && ob.collect && !ob.cloned {
				ob.Delete()
				n++
			}
		}
	}
	return n
}

// DoneAction ends the current action: orphans are collected, the
// document is brought up to date, and the changes since the last action
// are saved as one undo record with the given description. It returns
// false if there were no changes.
func (d *Document) DoneAction(action string) bool {
	d.CollectOrphans()
	d.EnsureUpToDate()
	evs := d.rdoc.Commit()
	d.rdoc.BeginTransaction()
	if len(evs) == 0 {
		return false
	}
	d.undo.Save(action, evs)
	return true
}

// CancelAction reverts the changes since the last action.
func (d *Document) CancelAction() {
	d.rdoc.Rollback()
	d.rdoc.BeginTransaction()
	d.EnsureUpToDate()
}

// finishIncomplete saves changes made since the last action
// as their own record.
func (d *Document) finishIncomplete() {
	if evs := d.rdoc.Commit(); len(evs) > 0 {
		slog.Warn("object: incomplete undo transaction", "events", len(evs))
		d.undo.Save("incomplete", evs)
	}
}

// afterUndo starts a new transaction and brings the document up to
// date. Changes derived by the passes are not recorded.
func (d *Document) afterUndo() {
	d.rdoc.BeginTransaction()
	d.EnsureUpToDate()
	d.rdoc.Commit()
	d.rdoc.BeginTransaction()
}

// Undo reverts the last action and returns its description,
// or "" if there is nothing to undo.
func (d *Document) Undo() string {
	d.finishIncomplete()
	action := d.undo.Undo()
	d.afterUndo()
	return action
}

// Redo applies the last undone action again and returns its
// description, or "" if there is nothing to redo.
func (d *Document) Redo() string {
	d.finishIncomplete()
	action := d.undo.Redo()
	d.afterUndo()
	return action
}

// CanUndo returns whether there is an action to undo.
func (d *Document) CanUndo() bool { return d.undo.IsUndoAvail() }

// CanRedo returns whether there is an action to redo.
func (d *Document) CanRedo() bool { return d.undo.IsRedoAvail() }

// AppendNew adds a new element with the given tag as the last child
// of the node of parent, and returns its object.
func (d *Document) AppendNew(parent Object, tag string) (Object, error) {
	if _, ok := factory[tag]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	pb := parent.AsObject()
	if pb.cloned {
		return nil, fmt.Errorf("object.AppendNew: %s is a clone", pb.String())
	}
	n := d.rdoc.CreateElement(tag)
	pb.node.AppendChild(n)
	return d.ObjectByRepr(n), nil
}

// Show shows the document in the given drawing, adding the projection
// of the root to the root item of the drawing.
func (d *Document) Show(dr *drawing.Drawing) *drawing.Item {
	if _, ok := d.ViewKey(dr); ok {
		return nil
	}
	d.EnsureUpToDate()
	key := drawing.NewKeys(1)
	d.views = append(d.views, docView{drawing: dr, key: key})
	di := d.root.InvokeShow(dr, key, 0)
	if di != nil {
		dr.Root().AppendChild(di)
	}
	return di
}

// Hide removes the projections of the document from the drawing.
func (d *Document) Hide(dr *drawing.Drawing) bool {
	for i, v := range d.views {
		if v.drawing == dr {
			d.views = slices.Delete(d.views, i, i+1)
			if d.root != nil {
				d.root.InvokeHide(v.key)
			}
			return true
		}
	}
	return false
}

// ViewKey returns the key the document is shown with in the drawing.
func (d *Document) ViewKey(dr *drawing.Drawing) (uint32, bool) {
	for _, v := range d.views {
		if v.drawing == dr {
			return v.key, true
		}
	}
	return 0, false
}

// UpdateRepr writes every object to its node.
func (d *Document) UpdateRepr() {
	if d.root != nil {
		d.root.UpdateRepr(WriteExt)
	}
}

// Write writes the XML of the document.
func (d *Document) Write(w io.Writer) error {
	return repr.Write(w, d.rdoc, "  ")
}

// WriteString returns the XML of the document.
func (d *Document) WriteString() string {
	return d.rdoc.WriteString("  ")
}

// Close hides the document from all drawings and releases the objects.
func (d *Document) Close() {
	for _, v := range slices.Clone(d.views) {
		d.Hide(v.drawing)
	}
	if d.root != nil {
		d.release(d.root)
		d.root = nil
	}
	d.rdoc.RemoveObserver(d.obs)
	d.rdoc.Commit()
}

// contentWatcher is implemented by kinds that read the text of their
// children, such as text and style elements.
type contentWatcher interface {
	contentChanged()
}

// contentObserver forwards the content changes of text nodes
// to the object of the nearest element above them.
type contentObserver struct {
	repr.ObserverBase
	doc *Document
}

func (co *contentObserver) NotifyContentChanged(node *repr.Node, oldContent, newContent string) {
	for p := node.Parent(); p != nil; p = p.Parent() {
		o := co.doc.ObjectByRepr(p)
		if o == nil {
			continue
		}
		if cw, ok := o.(contentWatcher); ok {
			cw.contentChanged()
		}
		return
	}
}
