// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

// table is the name table, one entry per id in id order.
var table = [...]entry{
	{Invalid, "", false},
	{ID, "id", false},
	{Style, "style", false},
	{Class, "class", false},
	{TabIndex, "tabindex", false},
	{InkscapeCollect, "inkscape:collect", false},
	{InkscapeLabel, "inkscape:label", false},
	{InkscapeHighlightColor, "inkscape:highlight-color", false},
	{InkscapeSprayOrigin, "inkscape:spray-origin", false},
	{SodipodiInsensitive, "sodipodi:insensitive", false},
	{SodipodiNonprintable, "sodipodi:nonprintable", false},
	{InkscapeGroupMode, "inkscape:groupmode", false},
	{InkscapeExpanded, "inkscape:expanded", false},
	{InkscapeLocked, "inkscape:locked", false},
	{SodipodiDocName, "sodipodi:docname", false},
	{SodipodiType, "sodipodi:type", false},
	{SodipodiRole, "sodipodi:role", false},
	{InkscapeVersion, "inkscape:version", false},
	{ViewOnly, "viewonly", false},
	{ShowGrids, "showgrid", false},
	{ShowGuides, "showguides", false},
	{GridTolerance, "gridtolerance", false},
	{GuideTolerance, "guidetolerance", false},
	{ObjectTolerance, "objecttolerance", false},
	{GuideColor, "guidecolor", false},
	{GuideOpacity, "guideopacity", false},
	{GuideHiColor, "guidehicolor", false},
	{GuideHiOpacity, "guidehiopacity", false},
	{ShowBorder, "showborder", false},
	{ShowPageShadow, "inkscape:showpageshadow", false},
	{BorderLayer, "borderlayer", false},
	{BorderColor, "bordercolor", false},
	{BorderOpacity, "borderopacity", false},
	{PageColor, "pagecolor", false},
	{InkscapePageCheckerboard, "inkscape:pagecheckerboard", false},
	{InkscapePageOpacity, "inkscape:pageopacity", false},
	{InkscapeDeskColor, "inkscape:deskcolor", false},
	{InkscapeZoom, "inkscape:zoom", false},
	{InkscapeRotation, "inkscape:rotation", false},
	{InkscapeCX, "inkscape:cx", false},
	{InkscapeCY, "inkscape:cy", false},
	{InkscapeWindowWidth, "inkscape:window-width", false},
	{InkscapeWindowHeight, "inkscape:window-height", false},
	{InkscapeWindowX, "inkscape:window-x", false},
	{InkscapeWindowY, "inkscape:window-y", false},
	{InkscapeWindowMaximized, "inkscape:window-maximized", false},
	{InkscapeCurrentLayer, "inkscape:current-layer", false},
	{InkscapeDocumentUnits, "inkscape:document-units", false},
	{InkscapeLockGuides, "inkscape:lockguides", false},
	{Units, "units", false},
	{InkscapeSnapGlobal, "inkscape:snap-global", false},
	{InkscapeSnapBBox, "inkscape:snap-bbox", false},
	{InkscapeSnapNode, "inkscape:snap-nodes", false},
	{InkscapeSnapOthers, "inkscape:snap-others", false},
	{InkscapeSnapFromGuide, "inkscape:snap-from-guide", false},
	{InkscapeSnapCenter, "inkscape:snap-center", false},
	{InkscapeSnapGrid, "inkscape:snap-grids", false},
	{InkscapeSnapGuide, "inkscape:snap-to-guides", false},
	{InkscapeSnapNodeSmooth, "inkscape:snap-smooth-nodes", false},
	{InkscapeSnapLineMidpoint, "inkscape:snap-midpoints", false},
	{InkscapeSnapObjectMidpoint, "inkscape:snap-object-midpoints", false},
	{InkscapeSnapTextBaseline, "inkscape:snap-text-baseline", false},
	{InkscapeSnapBBoxEdgeMidpoint, "inkscape:snap-bbox-edge-midpoints", false},
	{InkscapeSnapBBoxMidpoint, "inkscape:snap-bbox-midpoints", false},
	{InkscapeSnapPathIntersection, "inkscape:snap-intersection-paths", false},
	{InkscapeSnapPath, "inkscape:snap-to-paths", false},
	{InkscapeSnapPerpendicular, "inkscape:snap-perpendicular", false},
	{InkscapeSnapTangential, "inkscape:snap-tangential", false},
	{InkscapeSnapPathClip, "inkscape:snap-path-clip", false},
	{InkscapeSnapPathMask, "inkscape:snap-path-mask", false},
	{InkscapeSnapNodeCusp, "inkscape:object-nodes", false},
	{InkscapeSnapBBoxEdge, "inkscape:bbox-paths", false},
	{InkscapeSnapBBoxCorner, "inkscape:bbox-nodes", false},
	{InkscapeSnapPageBorder, "inkscape:snap-page", false},
	{InkscapeSnapAlignment, "inkscape:snap-alignment", false},
	{InkscapeSnapDistribution, "inkscape:snap-distribution", false},
	{InkscapeConnectorSpacing, "inkscape:connector-spacing", false},
	{InkscapeConnectorAvoid, "inkscape:connector-avoid", false},
	{InkscapeConnectionStart, "inkscape:connection-start", false},
	{InkscapeConnectionEnd, "inkscape:connection-end", false},
	{InkscapeConnectionStartPoint, "inkscape:connection-start-point", false},
	{InkscapeConnectionEndPoint, "inkscape:connection-end-point", false},
	{InkscapeConnectorType, "inkscape:connector-type", false},
	{InkscapeConnectorCurvature, "inkscape:connector-curvature", false},
	{Position, "position", false},
	{Orientation, "orientation", false},
	{InkscapeColor, "inkscape:color", false},
	{InkscapeTransformCenterX, "inkscape:transform-center-x", false},
	{InkscapeTransformCenterY, "inkscape:transform-center-y", false},
	{InkscapePathEffect, "inkscape:path-effect", false},
	{InkscapeOriginalD, "inkscape:original-d", false},
	{InkscapeOriginal, "inkscape:original", false},
	{InkscapeRadius, "inkscape:radius", false},
	{InkscapeHref, "inkscape:href", false},
	{PathEffect, "effect", false},
	{LPEIsVisible, "is_visible", false},
	{LPEVersion, "lpeversion", false},
	{SodipodiCX, "sodipodi:cx", false},
	{SodipodiCY, "sodipodi:cy", false},
	{SodipodiRX, "sodipodi:rx", false},
	{SodipodiRY, "sodipodi:ry", false},
	{SodipodiStart, "sodipodi:start", false},
	{SodipodiEnd, "sodipodi:end", false},
	{SodipodiOpen, "sodipodi:open", false},
	{SodipodiArcType, "sodipodi:arc-type", false},
	{SodipodiSides, "sodipodi:sides", false},
	{SodipodiR1, "sodipodi:r1", false},
	{SodipodiR2, "sodipodi:r2", false},
	{SodipodiArg1, "sodipodi:arg1", false},
	{SodipodiArg2, "sodipodi:arg2", false},
	{InkscapeFlatsided, "inkscape:flatsided", false},
	{InkscapeRounded, "inkscape:rounded", false},
	{InkscapeRandomized, "inkscape:randomized", false},
	{SodipodiExpansion, "sodipodi:expansion", false},
	{SodipodiRevolution, "sodipodi:revolution", false},
	{SodipodiRadius, "sodipodi:radius", false},
	{SodipodiArgument, "sodipodi:argument", false},
	{SodipodiT0, "sodipodi:t0", false},
	{SodipodiNodeTypes, "sodipodi:nodetypes", false},
	{InkscapeSwatch, "inkscape:swatch", false},
	{InkscapePinned, "inkscape:pinned", false},
	{InkscapeStockID, "inkscape:stockid", false},
	{InkscapeIsStock, "inkscape:isstock", false},
	{XlinkHref, "xlink:href", false},
	{XlinkType, "xlink:type", false},
	{XlinkRole, "xlink:role", false},
	{XlinkArcRole, "xlink:arcrole", false},
	{XlinkTitle, "xlink:title", false},
	{XlinkShow, "xlink:show", false},
	{XlinkActuate, "xlink:actuate", false},
	{Href, "href", false},
	{Target, "target", false},
	{XMLSpace, "xml:space", false},
	{XMLLang, "xml:lang", false},
	{Lang, "lang", false},
	{OnClick, "onclick", false},
	{OnMouseDown, "onmousedown", false},
	{OnMouseUp, "onmouseup", false},
	{OnMouseOver, "onmouseover", false},
	{OnMouseOut, "onmouseout", false},
	{OnMouseMove, "onmousemove", false},
	{OnFocusIn, "onfocusin", false},
	{OnFocusOut, "onfocusout", false},
	{OnLoad, "onload", false},
	{ViewBox, "viewBox", false},
	{PreserveAspectRatio, "preserveAspectRatio", false},
	{Transform, "transform", false},
	{Version, "version", false},
	{Width, "width", false},
	{Height, "height", false},
	{X, "x", false},
	{Y, "y", false},
	{X1, "x1", false},
	{Y1, "y1", false},
	{X2, "x2", false},
	{Y2, "y2", false},
	{CX, "cx", false},
	{CY, "cy", false},
	{R, "r", false},
	{RX, "rx", false},
	{RY, "ry", false},
	{FX, "fx", false},
	{FY, "fy", false},
	{FR, "fr", false},
	{Points, "points", false},
	{PathLength, "pathLength", false},
	{DX, "dx", false},
	{DY, "dy", false},
	{Rotate, "rotate", false},
	{TextLength, "textLength", false},
	{LengthAdjust, "lengthAdjust", false},
	{StartOffset, "startOffset", false},
	{Side, "side", false},
	{Method, "method", false},
	{Spacing, "spacing", false},
	{MarkerUnits, "markerUnits", false},
	{RefX, "refX", false},
	{RefY, "refY", false},
	{MarkerWidth, "markerWidth", false},
	{MarkerHeight, "markerHeight", false},
	{Orient, "orient", false},
	{GradientUnits, "gradientUnits", false},
	{GradientTransform, "gradientTransform", false},
	{SpreadMethod, "spreadMethod", false},
	{Offset, "offset", false},
	{PatternUnits, "patternUnits", false},
	{PatternContentUnits, "patternContentUnits", false},
	{PatternTransform, "patternTransform", false},
	{ClipPathUnits, "clipPathUnits", false},
	{MaskUnits, "maskUnits", false},
	{MaskContentUnits, "maskContentUnits", false},
	{FilterUnits, "filterUnits", false},
	{PrimitiveUnits, "primitiveUnits", false},
	{InkscapeAutoRegion, "inkscape:auto-region", false},
	{In, "in", false},
	{In2, "in2", false},
	{Result, "result", false},
	{StdDeviation, "stdDeviation", false},
	{Mode, "mode", false},
	{Operator, "operator", false},
	{K1, "k1", false},
	{K2, "k2", false},
	{K3, "k3", false},
	{K4, "k4", false},
	{Type, "type", false},
	{Values, "values", false},
	{Radius, "radius", false},
	{EdgeMode, "edgeMode", false},
	{Order, "order", false},
	{KernelMatrix, "kernelMatrix", false},
	{Divisor, "divisor", false},
	{Bias, "bias", false},
	{TargetX, "targetX", false},
	{TargetY, "targetY", false},
	{KernelUnitLength, "kernelUnitLength", false},
	{PreserveAlpha, "preserveAlpha", false},
	{SurfaceScale, "surfaceScale", false},
	{DiffuseConstant, "diffuseConstant", false},
	{SpecularConstant, "specularConstant", false},
	{SpecularExponent, "specularExponent", false},
	{LimitingConeAngle, "limitingConeAngle", false},
	{Azimuth, "azimuth", false},
	{Elevation, "elevation", false},
	{PointsAtX, "pointsAtX", false},
	{PointsAtY, "pointsAtY", false},
	{PointsAtZ, "pointsAtZ", false},
	{Z, "z", false},
	{Scale, "scale", false},
	{XChannelSelector, "xChannelSelector", false},
	{YChannelSelector, "yChannelSelector", false},
	{BaseFrequency, "baseFrequency", false},
	{NumOctaves, "numOctaves", false},
	{Seed, "seed", false},
	{StitchTiles, "stitchTiles", false},
	{TableValues, "tableValues", false},
	{Slope, "slope", false},
	{Intercept, "intercept", false},
	{Amplitude, "amplitude", false},
	{Exponent, "exponent", false},
	{InkscapeSVGDPI, "inkscape:svg-dpi", false},
	{D, "d", true},
	{Font, "font", true},
	{FontFamily, "font-family", true},
	{FontSize, "font-size", true},
	{FontSizeAdjust, "font-size-adjust", true},
	{FontStretch, "font-stretch", true},
	{FontStyle, "font-style", true},
	{FontVariant, "font-variant", true},
	{FontWeight, "font-weight", true},
	{FontVariantLigatures, "font-variant-ligatures", true},
	{FontVariantPosition, "font-variant-position", true},
	{FontVariantCaps, "font-variant-caps", true},
	{FontVariantNumeric, "font-variant-numeric", true},
	{FontVariantAlternates, "font-variant-alternates", true},
	{FontVariantEastAsian, "font-variant-east-asian", true},
	{FontFeatureSettings, "font-feature-settings", true},
	{FontVariationSettings, "font-variation-settings", true},
	{InkscapeFontSpecification, "-inkscape-font-specification", true},
	{TextIndent, "text-indent", true},
	{TextAlign, "text-align", true},
	{LineHeight, "line-height", true},
	{LetterSpacing, "letter-spacing", true},
	{WordSpacing, "word-spacing", true},
	{TextTransform, "text-transform", true},
	{Direction, "direction", true},
	{WritingMode, "writing-mode", true},
	{TextOrientation, "text-orientation", true},
	{UnicodeBidi, "unicode-bidi", true},
	{AlignmentBaseline, "alignment-baseline", true},
	{BaselineShift, "baseline-shift", true},
	{DominantBaseline, "dominant-baseline", true},
	{TextAnchor, "text-anchor", true},
	{WhiteSpace, "white-space", true},
	{ShapeInside, "shape-inside", true},
	{ShapeSubtract, "shape-subtract", true},
	{ShapePadding, "shape-padding", true},
	{ShapeMargin, "shape-margin", true},
	{InlineSize, "inline-size", true},
	{TextDecoration, "text-decoration", true},
	{TextDecorationLine, "text-decoration-line", true},
	{TextDecorationStyle, "text-decoration-style", true},
	{TextDecorationColor, "text-decoration-color", true},
	{TextDecorationFill, "text-decoration-fill", true},
	{TextDecorationStroke, "text-decoration-stroke", true},
	{Clip, "clip", true},
	{Color, "color", true},
	{Overflow, "overflow", true},
	{Visibility, "visibility", true},
	{Display, "display", true},
	{Isolation, "isolation", true},
	{MixBlendMode, "mix-blend-mode", true},
	{ClipPath, "clip-path", true},
	{ClipRule, "clip-rule", true},
	{Mask, "mask", true},
	{Opacity, "opacity", true},
	{EnableBackground, "enable-background", true},
	{Filter, "filter", true},
	{FloodColor, "flood-color", true},
	{FloodOpacity, "flood-opacity", true},
	{LightingColor, "lighting-color", true},
	{StopColor, "stop-color", true},
	{StopOpacity, "stop-opacity", true},
	{PointerEvents, "pointer-events", true},
	{ColorInterpolation, "color-interpolation", true},
	{ColorInterpolationFilters, "color-interpolation-filters", true},
	{ColorProfile, "color-profile", true},
	{ColorRendering, "color-rendering", true},
	{Fill, "fill", true},
	{FillOpacity, "fill-opacity", true},
	{FillRule, "fill-rule", true},
	{ImageRendering, "image-rendering", true},
	{Marker, "marker", true},
	{MarkerStart, "marker-start", true},
	{MarkerMid, "marker-mid", true},
	{MarkerEnd, "marker-end", true},
	{PaintOrder, "paint-order", true},
	{ShapeRendering, "shape-rendering", true},
	{SolidColor, "solid-color", true},
	{SolidOpacity, "solid-opacity", true},
	{VectorEffect, "vector-effect", true},
	{Stroke, "stroke", true},
	{StrokeDashArray, "stroke-dasharray", true},
	{StrokeDashOffset, "stroke-dashoffset", true},
	{StrokeExtensions, "-inkscape-stroke", true},
	{StrokeLineCap, "stroke-linecap", true},
	{StrokeLineJoin, "stroke-linejoin", true},
	{StrokeMiterLimit, "stroke-miterlimit", true},
	{StrokeOpacity, "stroke-opacity", true},
	{StrokeWidth, "stroke-width", true},
	{TextRendering, "text-rendering", true},
	{GlyphOrientationHorizontal, "glyph-orientation-horizontal", true},
	{GlyphOrientationVertical, "glyph-orientation-vertical", true},
	{Kerning, "kerning", true},
	{SystemLanguage, "systemLanguage", false},
	{RequiredFeatures, "requiredFeatures", false},
	{RequiredExtensions, "requiredExtensions", false},
}
