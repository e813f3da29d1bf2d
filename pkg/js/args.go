package js

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"waterlayout/pkg/layout"

	"github.com/dop251/goja"
)

// typeError aborts the current builder call with a JavaScript TypeError.
func (e *Engine) typeError(format string, args ...any) {
	panic(e.vm.NewTypeError(fmt.Sprintf(format, args...)))
}

func isMissing(v goja.Value) bool {
	return v == nil || goja.IsUndefined(v) || goja.IsNull(v)
}

func isArray(v goja.Value) (*goja.Object, bool) {
	obj, ok := v.(*goja.Object)
	if !ok || obj.ClassName() != "Array" {
		return nil, false
	}
	return obj, true
}

// isOptions reports whether v is a plain options object rather than a
// view or an array.
func (e *Engine) isOptions(v goja.Value) (*goja.Object, bool) {
	obj, ok := v.(*goja.Object)
	if !ok || obj.ClassName() != "Object" {
		return nil, false
	}
	if _, isView := e.unwrap(v); isView {
		return nil, false
	}
	return obj, true
}

func arrayItems(obj *goja.Object) []goja.Value {
	n := int(obj.Get("length").ToInteger())
	items := make([]goja.Value, n)
	for i := range items {
		items[i] = obj.Get(strconv.Itoa(i))
	}
	return items
}

// splitOptions separates a leading options object from the rest.
func (e *Engine) splitOptions(args []goja.Value) (*goja.Object, []goja.Value) {
	if len(args) > 0 {
		if opts, ok := e.isOptions(args[0]); ok {
			return opts, args[1:]
		}
	}
	return nil, args
}

// children converts builder arguments to views. Arrays are flattened so
// scripts can pass the result of map().
func (e *Engine) children(fn string, args []goja.Value) []layout.View {
	var out []layout.View
	for i, arg := range args {
		if arr, ok := isArray(arg); ok {
			out = append(out, e.children(fn, arrayItems(arr))...)
			continue
		}
		v, ok := e.unwrap(arg)
		if !ok {
			e.typeError("%s: argument %d is not a view", fn, i)
		}
		out = append(out, v)
	}
	return out
}

func (e *Engine) view(fn string, arg goja.Value) layout.View {
	v, ok := e.unwrap(arg)
	if !ok {
		e.typeError("%s: expected a view", fn)
	}
	return v
}

func (e *Engine) number(fn string, arg goja.Value, def float64) float64 {
	if isMissing(arg) {
		return def
	}
	f := arg.ToFloat()
	if math.IsNaN(f) {
		e.typeError("%s: %q is not a number", fn, arg.String())
	}
	return f
}

// maxCount caps script supplied counts such as grid columns and lazy
// children.
const maxCount = 10000

// count reads a whole number in [0, maxCount].
func (e *Engine) count(fn string, arg goja.Value, def int) int {
	f := e.number(fn, arg, float64(def))
	if f < 0 || f > maxCount || f != math.Trunc(f) {
		e.typeError("%s: count %g out of range [0, %d]", fn, f, maxCount)
	}
	return int(f)
}

func (e *Engine) option(opts *goja.Object, key string) goja.Value {
	if opts == nil {
		return nil
	}
	return opts.Get(key)
}

func (e *Engine) optionNumber(fn string, opts *goja.Object, key string, def float64) float64 {
	return e.number(fn+"."+key, e.option(opts, key), def)
}

func (e *Engine) dimension(fn string, arg goja.Value) layout.Dimension {
	if isMissing(arg) {
		return layout.Unspecified()
	}
	f := e.number(fn, arg, 0)
	if math.IsInf(f, 1) {
		return layout.Unbounded()
	}
	return layout.Bounded(f)
}

func (e *Engine) horizontalAlignment(fn string, arg goja.Value) layout.HorizontalAlignment {
	if isMissing(arg) {
		return layout.HorizontalCenter
	}
	switch arg.String() {
	case "leading":
		return layout.Leading
	case "center":
		return layout.HorizontalCenter
	case "trailing":
		return layout.Trailing
	}
	e.typeError("%s: unknown horizontal alignment %q", fn, arg.String())
	return layout.Leading
}

func (e *Engine) verticalAlignment(fn string, arg goja.Value) layout.VerticalAlignment {
	if isMissing(arg) {
		return layout.VerticalCenter
	}
	switch arg.String() {
	case "top":
		return layout.Top
	case "center":
		return layout.VerticalCenter
	case "bottom":
		return layout.Bottom
	}
	e.typeError("%s: unknown vertical alignment %q", fn, arg.String())
	return layout.Top
}

var alignments = map[string]layout.Alignment{
	"topLeading":     layout.AlignTopLeading,
	"top":            layout.AlignTop,
	"topTrailing":    layout.AlignTopTrailing,
	"leading":        layout.AlignLeading,
	"center":         layout.AlignCenter,
	"trailing":       layout.AlignTrailing,
	"bottomLeading":  layout.AlignBottomLeading,
	"bottom":         layout.AlignBottom,
	"bottomTrailing": layout.AlignBottomTrailing,
}

func (e *Engine) alignment(fn string, arg goja.Value, def layout.Alignment) layout.Alignment {
	if isMissing(arg) {
		return def
	}
	a, ok := alignments[arg.String()]
	if !ok {
		e.typeError("%s: unknown alignment %q", fn, arg.String())
	}
	return a
}

var edgeNames = map[string]layout.EdgeSet{
	"top":        layout.EdgeTop,
	"leading":    layout.EdgeLeading,
	"bottom":     layout.EdgeBottom,
	"trailing":   layout.EdgeTrailing,
	"horizontal": layout.EdgesHorizontal,
	"vertical":   layout.EdgesVertical,
	"all":        layout.EdgesAll,
}

// edges accepts "top|bottom" style strings or arrays of edge names.
func (e *Engine) edges(fn string, arg goja.Value) layout.EdgeSet {
	if isMissing(arg) {
		return layout.EdgesAll
	}
	var names []string
	if arr, ok := isArray(arg); ok {
		for _, item := range arrayItems(arr) {
			names = append(names, item.String())
		}
	} else {
		names = strings.Split(arg.String(), "|")
	}
	var set layout.EdgeSet
	for _, name := range names {
		edge, ok := edgeNames[strings.TrimSpace(name)]
		if !ok {
			e.typeError("%s: unknown edge %q", fn, name)
		}
		set |= edge
	}
	return set
}

var stretchNames = map[string]layout.StretchAxis{
	"none":       layout.StretchNone,
	"horizontal": layout.StretchHorizontal,
	"vertical":   layout.StretchVertical,
	"both":       layout.StretchBoth,
	"main":       layout.StretchMainAxis,
	"cross":      layout.StretchCrossAxis,
}

func (e *Engine) stretch(fn string, arg goja.Value) layout.StretchAxis {
	if isMissing(arg) {
		e.typeError("%s: stretch axis required", fn)
	}
	s, ok := stretchNames[arg.String()]
	if !ok {
		e.typeError("%s: unknown stretch axis %q", fn, arg.String())
	}
	return s
}

func (e *Engine) axis(fn string, arg goja.Value) layout.Axis {
	if isMissing(arg) {
		return layout.Vertical
	}
	switch arg.String() {
	case "vertical":
		return layout.Vertical
	case "horizontal":
		return layout.Horizontal
	}
	e.typeError("%s: unknown axis %q", fn, arg.String())
	return layout.Vertical
}

// insets accepts a number for every edge or an object with top, leading,
// bottom, trailing, horizontal and vertical keys.
func (e *Engine) insets(fn string, arg goja.Value) layout.EdgeInsets {
	if isMissing(arg) {
		return layout.InsetsAll(16)
	}
	opts, ok := e.isOptions(arg)
	if !ok {
		return layout.InsetsAll(e.number(fn, arg, 0))
	}
	horizontal := e.optionNumber(fn, opts, "horizontal", 0)
	vertical := e.optionNumber(fn, opts, "vertical", 0)
	return layout.EdgeInsets{
		Top:      e.optionNumber(fn, opts, "top", vertical),
		Leading:  e.optionNumber(fn, opts, "leading", horizontal),
		Bottom:   e.optionNumber(fn, opts, "bottom", vertical),
		Trailing: e.optionNumber(fn, opts, "trailing", horizontal),
	}
}

// frame reads width/height for fixed axes and min/ideal/max variants for
// flexible ones. Infinity is accepted for max values.
func (e *Engine) frame(fn string, opts *goja.Object) layout.FrameLayout {
	axis := func(fixed, lo, ideal, hi string) layout.FrameAxis {
		if v := e.option(opts, fixed); !isMissing(v) {
			return layout.FixedLength(e.number(fn+"."+fixed, v, 0))
		}
		return layout.FrameAxis{
			Min:   e.dimension(fn+"."+lo, e.option(opts, lo)),
			Ideal: e.dimension(fn+"."+ideal, e.option(opts, ideal)),
			Max:   e.dimension(fn+"."+hi, e.option(opts, hi)),
		}
	}
	return layout.FrameLayout{
		Width:     axis("width", "minWidth", "idealWidth", "maxWidth"),
		Height:    axis("height", "minHeight", "idealHeight", "maxHeight"),
		Alignment: e.alignment(fn, e.option(opts, "alignment"), layout.AlignCenter),
	}
}
