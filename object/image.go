// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"strings"

	"cogentcore.org/canvas/attr"
	"cogentcore.org/canvas/drawing"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/repr"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is an image element. Embedded data URIs are decoded for the
// intrinsic size of the image, which is used when width or height is
// not set.
type Image struct {
	Item

	X, Y, Width, Height SVGLength

	// Href is the image reference as written.
	Href string

	// PreserveAspectRatio is how the image is fitted to its box.
	PreserveAspectRatio PreserveAspectRatio

	// Format is the format of an embedded image, such as png,
	// or "" if it is not embedded or cannot be decoded.
	Format string

	intrinsic math32.Vector2
	box       math32.Box2
}

func (im *Image) initObject(this Object, tag string) {
	im.Item.initObject(this, tag)
	im.PreserveAspectRatio.Defaults()
}

func (im *Image) Build(doc *Document, node *repr.Node) {
	im.Item.Build(doc, node)
	im.ReadAttr(attr.X, attr.Y, attr.Width, attr.Height, attr.XlinkHref, attr.Href, attr.PreserveAspectRatio)
	doc.AddResource("image", im)
}

func (im *Image) Release() {
	im.doc.RemoveResource("image", im)
	im.Item.Release()
}

func (im *Image) Set(key attr.Attr, value *string) bool {
	switch key {
	case attr.X:
		im.X.Read(value, 0)
	case attr.Y:
		im.Y.Read(value, 0)
	case attr.Width:
		im.Width.Read(value, 0)
	case attr.Height:
		im.Height.Read(value, 0)
	case attr.XlinkHref, attr.Href:
		if value == nil && (im.node.AttributePtr("href") != nil || im.node.AttributePtr("xlink:href") != nil) {
			return true
		}
		im.Href = ""
		if value != nil {
			im.Href = *value
		}
		im.decode()
	case attr.PreserveAspectRatio:
		readAspect(&im.PreserveAspectRatio, value)
	default:
		return im.Item.Set(key, value)
	}
	im.RequestDisplayUpdate(ModifiedFlag)
	return true
}

// errNotEmbedded is returned for an href that is not a base64 data URI.
var errNotEmbedded = errors.New("not a base64 data URI")

// decodeDataURI returns the size and format of the image embedded in
// a data URI.
func decodeDataURI(href string) (image.Config, string, error) {
	rest, ok := strings.CutPrefix(href, "data:")
	if !ok {
		return image.Config{}, "", errNotEmbedded
	}
	meta, data, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return image.Config{}, "", errNotEmbedded
	}
	b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(data), ""))
	if err != nil {
		return image.Config{}, "", err
	}
	return image.DecodeConfig(bytes.NewReader(b))
}

func (im *Image) decode() {
	im.Format = ""
	im.intrinsic = math32.Vector2{}
	cfg, format, err := decodeDataURI(im.Href)
	if err != nil {
		if !errors.Is(err, errNotEmbedded) {
			slog.Debug("object: image not decoded", "object", im.String(), "err", err)
		}
		return
	}
	im.Format = format
	im.intrinsic = math32.Vec2(float32(cfg.Width), float32(cfg.Height))
}

// IntrinsicSize returns the pixel size of an embedded image,
// or zero if unknown.
func (im *Image) IntrinsicSize() math32.Vector2 { return im.intrinsic }

func (im *Image) Update(ctx *UpdateContext, flags Flags) {
	if flags&(ModifiedFlag|ViewportModifiedFlag) != 0 {
		vs := ctx.Viewport.Size()
		im.X.Update(0, vs.X)
		im.Y.Update(0, vs.Y)
		im.Width.Update(0, vs.X)
		im.Height.Update(0, vs.Y)
		w, h := im.Width.Computed, im.Height.Computed
		if !im.Width.IsSet {
			w = im.intrinsic.X
		}
		if !im.Height.IsSet {
			h = im.intrinsic.Y
		}
		im.box = math32.B2(im.X.Computed, im.Y.Computed, im.X.Computed+w, im.Y.Computed+h)
		im.bboxValid = false
	}
	im.Item.Update(ctx, flags)
}

func (im *Image) Show(dr *drawing.Drawing, key uint32, flags uint32) *drawing.Item {
	return dr.NewItem(drawing.ImageItem)
}

func (im *Image) Bounds(t BBoxType, m math32.Matrix2) math32.Box2 {
	if im.box.Size().X <= 0 || im.box.Size().Y <= 0 {
		return math32.B2Empty()
	}
	return im.box.MulMatrix2(m)
}

func (im *Image) Write(rdoc *repr.Document, node *repr.Node, flags WriteFlags) *repr.Node {
	node = im.Item.Write(rdoc, node, flags)
	if node == nil {
		return nil
	}
	im.X.WriteTo(node, "x")
	im.Y.WriteTo(node, "y")
	im.Width.WriteTo(node, "width")
	im.Height.WriteTo(node, "height")
	WriteHref(node, im.Href)
	return node
}
