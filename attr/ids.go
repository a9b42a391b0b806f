// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

// The tracked attributes and properties. Order is significant: it is the
// order of the name table, and properties are written in it.
const (
	// Invalid is the id of every name that is not tracked.
	Invalid Attr = iota

	ID                           // id
	Style                        // style
	Class                        // class
	TabIndex                     // tabindex
	InkscapeCollect              // inkscape:collect
	InkscapeLabel                // inkscape:label
	InkscapeHighlightColor       // inkscape:highlight-color
	InkscapeSprayOrigin          // inkscape:spray-origin
	SodipodiInsensitive          // sodipodi:insensitive
	SodipodiNonprintable         // sodipodi:nonprintable
	InkscapeGroupMode            // inkscape:groupmode
	InkscapeExpanded             // inkscape:expanded
	InkscapeLocked               // inkscape:locked
	SodipodiDocName              // sodipodi:docname
	SodipodiType                 // sodipodi:type
	SodipodiRole                 // sodipodi:role
	InkscapeVersion              // inkscape:version
	ViewOnly                     // viewonly
	ShowGrids                    // showgrid
	ShowGuides                   // showguides
	GridTolerance                // gridtolerance
	GuideTolerance               // guidetolerance
	ObjectTolerance              // objecttolerance
	GuideColor                   // guidecolor
	GuideOpacity                 // guideopacity
	GuideHiColor                 // guidehicolor
	GuideHiOpacity               // guidehiopacity
	ShowBorder                   // showborder
	ShowPageShadow               // inkscape:showpageshadow
	BorderLayer                  // borderlayer
	BorderColor                  // bordercolor
	BorderOpacity                // borderopacity
	PageColor                    // pagecolor
	InkscapePageCheckerboard     // inkscape:pagecheckerboard
	InkscapePageOpacity          // inkscape:pageopacity
	InkscapeDeskColor            // inkscape:deskcolor
	InkscapeZoom                 // inkscape:zoom
	InkscapeRotation             // inkscape:rotation
	InkscapeCX                   // inkscape:cx
	InkscapeCY                   // inkscape:cy
	InkscapeWindowWidth          // inkscape:window-width
	InkscapeWindowHeight         // inkscape:window-height
	InkscapeWindowX              // inkscape:window-x
	InkscapeWindowY              // inkscape:window-y
	InkscapeWindowMaximized      // inkscape:window-maximized
	InkscapeCurrentLayer         // inkscape:current-layer
	InkscapeDocumentUnits        // inkscape:document-units
	InkscapeLockGuides           // inkscape:lockguides
	Units                        // units
	InkscapeSnapGlobal           // inkscape:snap-global
	InkscapeSnapBBox             // inkscape:snap-bbox
	InkscapeSnapNode             // inkscape:snap-nodes
	InkscapeSnapOthers           // inkscape:snap-others
	InkscapeSnapFromGuide        // inkscape:snap-from-guide
	InkscapeSnapCenter           // inkscape:snap-center
	InkscapeSnapGrid             // inkscape:snap-grids
	InkscapeSnapGuide            // inkscape:snap-to-guides
	InkscapeSnapNodeSmooth       // inkscape:snap-smooth-nodes
	InkscapeSnapLineMidpoint     // inkscape:snap-midpoints
	InkscapeSnapObjectMidpoint   // inkscape:snap-object-midpoints
	InkscapeSnapTextBaseline     // inkscape:snap-text-baseline
	InkscapeSnapBBoxEdgeMidpoint // inkscape:snap-bbox-edge-midpoints
	InkscapeSnapBBoxMidpoint     // inkscape:snap-bbox-midpoints
	InkscapeSnapPathIntersection // inkscape:snap-intersection-paths
	InkscapeSnapPath             // inkscape:snap-to-paths
	InkscapeSnapPerpendicular    // inkscape:snap-perpendicular
	InkscapeSnapTangential       // inkscape:snap-tangential
	InkscapeSnapPathClip         // inkscape:snap-path-clip
	InkscapeSnapPathMask         // inkscape:snap-path-mask
	InkscapeSnapNodeCusp         // inkscape:object-nodes
	InkscapeSnapBBoxEdge         // inkscape:bbox-paths
	InkscapeSnapBBoxCorner       // inkscape:bbox-nodes
	InkscapeSnapPageBorder       // inkscape:snap-page
	InkscapeSnapAlignment        // inkscape:snap-alignment
	InkscapeSnapDistribution     // inkscape:snap-distribution
	InkscapeConnectorSpacing     // inkscape:connector-spacing
	InkscapeConnectorAvoid       // inkscape:connector-avoid
	InkscapeConnectionStart      // inkscape:connection-start
	InkscapeConnectionEnd        // inkscape:connection-end
	InkscapeConnectionStartPoint // inkscape:connection-start-point
	InkscapeConnectionEndPoint   // inkscape:connection-end-point
	InkscapeConnectorType        // inkscape:connector-type
	InkscapeConnectorCurvature   // inkscape:connector-curvature
	Position                     // position
	Orientation                  // orientation
	InkscapeColor                // inkscape:color
	InkscapeTransformCenterX     // inkscape:transform-center-x
	InkscapeTransformCenterY     // inkscape:transform-center-y
	InkscapePathEffect           // inkscape:path-effect
	InkscapeOriginalD            // inkscape:original-d
	InkscapeOriginal             // inkscape:original
	InkscapeRadius               // inkscape:radius
	InkscapeHref                 // inkscape:href
	PathEffect                   // effect
	LPEIsVisible                 // is_visible
	LPEVersion                   // lpeversion
	SodipodiCX                   // sodipodi:cx
	SodipodiCY                   // sodipodi:cy
	SodipodiRX                   // sodipodi:rx
	SodipodiRY                   // sodipodi:ry
	SodipodiStart                // sodipodi:start
	SodipodiEnd                  // sodipodi:end
	SodipodiOpen                 // sodipodi:open
	SodipodiArcType              // sodipodi:arc-type
	SodipodiSides                // sodipodi:sides
	SodipodiR1                   // sodipodi:r1
	SodipodiR2                   // sodipodi:r2
	SodipodiArg1                 // sodipodi:arg1
	SodipodiArg2                 // sodipodi:arg2
	InkscapeFlatsided            // inkscape:flatsided
	InkscapeRounded              // inkscape:rounded
	InkscapeRandomized           // inkscape:randomized
	SodipodiExpansion            // sodipodi:expansion
	SodipodiRevolution           // sodipodi:revolution
	SodipodiRadius               // sodipodi:radius
	SodipodiArgument             // sodipodi:argument
	SodipodiT0                   // sodipodi:t0
	SodipodiNodeTypes            // sodipodi:nodetypes
	InkscapeSwatch               // inkscape:swatch
	InkscapePinned               // inkscape:pinned
	InkscapeStockID              // inkscape:stockid
	InkscapeIsStock              // inkscape:isstock
	XlinkHref                    // xlink:href
	XlinkType                    // xlink:type
	XlinkRole                    // xlink:role
	XlinkArcRole                 // xlink:arcrole
	XlinkTitle                   // xlink:title
	XlinkShow                    // xlink:show
	XlinkActuate                 // xlink:actuate
	Href                         // href
	Target                       // target
	XMLSpace                     // xml:space
	XMLLang                      // xml:lang
	Lang                         // lang
	OnClick                      // onclick
	OnMouseDown                  // onmousedown
	OnMouseUp                    // onmouseup
	OnMouseOver                  // onmouseover
	OnMouseOut                   // onmouseout
	OnMouseMove                  // onmousemove
	OnFocusIn                    // onfocusin
	OnFocusOut                   // onfocusout
	OnLoad                       // onload
	ViewBox                      // viewBox
	PreserveAspectRatio          // preserveAspectRatio
	Transform                    // transform
	Version                      // version
	Width                        // width
	Height                       // height
	X                            // x
	Y                            // y
	X1                           // x1
	Y1                           // y1
	X2                           // x2
	Y2                           // y2
	CX                           // cx
	CY                           // cy
	R                            // r
	RX                           // rx
	RY                           // ry
	FX                           // fx
	FY                           // fy
	FR                           // fr
	Points                       // points
	PathLength                   // pathLength
	DX                           // dx
	DY                           // dy
	Rotate                       // rotate
	TextLength                   // textLength
	LengthAdjust                 // lengthAdjust
	StartOffset                  // startOffset
	Side                         // side
	Method                       // method
	Spacing                      // spacing
	MarkerUnits                  // markerUnits
	RefX                         // refX
	RefY                         // refY
	MarkerWidth                  // markerWidth
	MarkerHeight                 // markerHeight
	Orient                       // orient
	GradientUnits                // gradientUnits
	GradientTransform            // gradientTransform
	SpreadMethod                 // spreadMethod
	Offset                       // offset
	PatternUnits                 // patternUnits
	PatternContentUnits          // patternContentUnits
	PatternTransform             // patternTransform
	ClipPathUnits                // clipPathUnits
	MaskUnits                    // maskUnits
	MaskContentUnits             // maskContentUnits
	FilterUnits                  // filterUnits
	PrimitiveUnits               // primitiveUnits
	InkscapeAutoRegion           // inkscape:auto-region
	In                           // in
	In2                          // in2
	Result                       // result
	StdDeviation                 // stdDeviation
	Mode                         // mode
	Operator                     // operator
	K1                           // k1
	K2                           // k2
	K3                           // k3
	K4                           // k4
	Type                         // type
	Values                       // values
	Radius                       // radius
	EdgeMode                     // edgeMode
	Order                        // order
	KernelMatrix                 // kernelMatrix
	Divisor                      // divisor
	Bias                         // bias
	TargetX                      // targetX
	TargetY                      // targetY
	KernelUnitLength             // kernelUnitLength
	PreserveAlpha                // preserveAlpha
	SurfaceScale                 // surfaceScale
	DiffuseConstant              // diffuseConstant
	SpecularConstant             // specularConstant
	SpecularExponent             // specularExponent
	LimitingConeAngle            // limitingConeAngle
	Azimuth                      // azimuth
	Elevation                    // elevation
	PointsAtX                    // pointsAtX
	PointsAtY                    // pointsAtY
	PointsAtZ                    // pointsAtZ
	Z                            // z
	Scale                        // scale
	XChannelSelector             // xChannelSelector
	YChannelSelector             // yChannelSelector
	BaseFrequency                // baseFrequency
	NumOctaves                   // numOctaves
	Seed                         // seed
	StitchTiles                  // stitchTiles
	TableValues                  // tableValues
	Slope                        // slope
	Intercept                    // intercept
	Amplitude                    // amplitude
	Exponent                     // exponent
	InkscapeSVGDPI               // inkscape:svg-dpi

	// CSS properties, from D up to SystemLanguage.
	D                          // d
	Font                       // font
	FontFamily                 // font-family
	FontSize                   // font-size
	FontSizeAdjust             // font-size-adjust
	FontStretch                // font-stretch
	FontStyle                  // font-style
	FontVariant                // font-variant
	FontWeight                 // font-weight
	FontVariantLigatures       // font-variant-ligatures
	FontVariantPosition        // font-variant-position
	FontVariantCaps            // font-variant-caps
	FontVariantNumeric         // font-variant-numeric
	FontVariantAlternates      // font-variant-alternates
	FontVariantEastAsian       // font-variant-east-asian
	FontFeatureSettings        // font-feature-settings
	FontVariationSettings      // font-variation-settings
	InkscapeFontSpecification  // -inkscape-font-specification
	TextIndent                 // text-indent
	TextAlign                  // text-align
	LineHeight                 // line-height
	LetterSpacing              // letter-spacing
	WordSpacing                // word-spacing
	TextTransform              // text-transform
	Direction                  // direction
	WritingMode                // writing-mode
	TextOrientation            // text-orientation
	UnicodeBidi                // unicode-bidi
	AlignmentBaseline          // alignment-baseline
	BaselineShift              // baseline-shift
	DominantBaseline           // dominant-baseline
	TextAnchor                 // text-anchor
	WhiteSpace                 // white-space
	ShapeInside                // shape-inside
	ShapeSubtract              // shape-subtract
	ShapePadding               // shape-padding
	ShapeMargin                // shape-margin
	InlineSize                 // inline-size
	TextDecoration             // text-decoration
	TextDecorationLine         // text-decoration-line
	TextDecorationStyle        // text-decoration-style
	TextDecorationColor        // text-decoration-color
	TextDecorationFill         // text-decoration-fill
	TextDecorationStroke       // text-decoration-stroke
	Clip                       // clip
	Color                      // color
	Overflow                   // overflow
	Visibility                 // visibility
	Display                    // display
	Isolation                  // isolation
	MixBlendMode               // mix-blend-mode
	ClipPath                   // clip-path
	ClipRule                   // clip-rule
	Mask                       // mask
	Opacity                    // opacity
	EnableBackground           // enable-background
	Filter                     // filter
	FloodColor                 // flood-color
	FloodOpacity               // flood-opacity
	LightingColor              // lighting-color
	StopColor                  // stop-color
	StopOpacity                // stop-opacity
	PointerEvents              // pointer-events
	ColorInterpolation         // color-interpolation
	ColorInterpolationFilters  // color-interpolation-filters
	ColorProfile               // color-profile
	ColorRendering             // color-rendering
	Fill                       // fill
	FillOpacity                // fill-opacity
	FillRule                   // fill-rule
	ImageRendering             // image-rendering
	Marker                     // marker
	MarkerStart                // marker-start
	MarkerMid                  // marker-mid
	MarkerEnd                  // marker-end
	PaintOrder                 // paint-order
	ShapeRendering             // shape-rendering
	SolidColor                 // solid-color
	SolidOpacity               // solid-opacity
	VectorEffect               // vector-effect
	Stroke                     // stroke
	StrokeDashArray            // stroke-dasharray
	StrokeDashOffset           // stroke-dashoffset
	StrokeExtensions           // -inkscape-stroke
	StrokeLineCap              // stroke-linecap
	StrokeLineJoin             // stroke-linejoin
	StrokeMiterLimit           // stroke-miterlimit
	StrokeOpacity              // stroke-opacity
	StrokeWidth                // stroke-width
	TextRendering              // text-rendering
	GlyphOrientationHorizontal // glyph-orientation-horizontal
	GlyphOrientationVertical   // glyph-orientation-vertical
	Kerning                    // kerning

	// Conditional processing attributes.
	SystemLanguage     // systemLanguage
	RequiredFeatures   // requiredFeatures
	RequiredExtensions // requiredExtensions

	// AttrsN is the number of attribute ids, including Invalid.
	AttrsN
)
