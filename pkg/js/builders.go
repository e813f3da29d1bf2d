package js

import (
	"net/url"
	"path/filepath"
	"strings"

	"waterlayout/pkg/images"
	"waterlayout/pkg/layout"
	"waterlayout/pkg/text"

	"github.com/dop251/goja"
	"go.uber.org/zap"
)

const viewKey = "__view__"

// viewRef carries a Go view through the JS heap.
type viewRef struct {
	view layout.View
}

func (e *Engine) unwrap(val goja.Value) (layout.View, bool) {
	obj, ok := val.(*goja.Object)
	if !ok || obj == nil {
		return nil, false
	}
	handle := obj.Get(viewKey)
	if isMissing(handle) {
		return nil, false
	}
	ref, ok := handle.Export().(*viewRef)
	if !ok || ref.view == nil {
		return nil, false
	}
	return ref.view, true
}

// wrap returns the JS object for v, with chainable modifiers attached.
func (e *Engine) wrap(v layout.View) goja.Value {
	obj := e.vm.NewObject()
	obj.Set(viewKey, &viewRef{view: v})
	obj.Set("padding", func(call goja.FunctionCall) goja.Value {
		return e.wrap(layout.Padding(e.insets("padding", call.Argument(0)), v))
	})
	obj.Set("frame", func(call goja.FunctionCall) goja.Value {
		opts, _ := e.isOptions(call.Argument(0))
		return e.wrap(layout.Frame(e.frame("frame", opts), v))
	})
	obj.Set("priority", func(call goja.FunctionCall) goja.Value {
		return e.wrap(layout.WithPriority(v, e.number("priority", call.Argument(0), 0)))
	})
	obj.Set("stretch", func(call goja.FunctionCall) goja.Value {
		return e.wrap(layout.WithStretch(v, e.stretch("stretch", call.Argument(0))))
	})
	obj.Set("ignoreSafeArea", func(call goja.FunctionCall) goja.Value {
		return e.wrap(layout.IgnoreSafeArea(e.edges("ignoreSafeArea", call.Argument(0)), v))
	})
	obj.Set("overlay", func(call goja.FunctionCall) goja.Value {
		layer := e.view("overlay", call.Argument(0))
		return e.wrap(layout.Overlay(v, layer, e.alignment("overlay", call.Argument(1), layout.AlignCenter)))
	})
	obj.Set("toString", func(goja.FunctionCall) goja.Value {
		return e.vm.ToValue(stringOf(v))
	})
	return obj
}

func stringOf(v layout.View) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return "View"
}

// registerBuilders installs the global builder functions.
func registerBuilders(e *Engine) {
	vm := e.vm
	set := func(name string, fn func(goja.FunctionCall) goja.Value) {
		vm.Set(name, fn)
	}

	set("VStack", func(call goja.FunctionCall) goja.Value {
		opts, rest := e.splitOptions(call.Arguments)
		l := layout.NewVStackLayout(
			e.optionNumber("VStack", opts, "spacing", 0),
			e.horizontalAlignment("VStack", e.option(opts, "alignment")),
		)
		return e.wrap(layout.NewFixedContainer(l, e.children("VStack", rest)...))
	})
	set("HStack", func(call goja.FunctionCall) goja.Value {
		opts, rest := e.splitOptions(call.Arguments)
		l := layout.NewHStackLayout(
			e.optionNumber("HStack", opts, "spacing", 0),
			e.verticalAlignment("HStack", e.option(opts, "alignment")),
		)
		return e.wrap(layout.NewFixedContainer(l, e.children("HStack", rest)...))
	})
	set("ZStack", func(call goja.FunctionCall) goja.Value {
		opts, rest := e.splitOptions(call.Arguments)
		a := e.alignment("ZStack", e.option(opts, "alignment"), layout.AlignCenter)
		return e.wrap(layout.ZStack(a, e.children("ZStack", rest)...))
	})
	set("Overlay", func(call goja.FunctionCall) goja.Value {
		base := e.view("Overlay", call.Argument(0))
		layer := e.view("Overlay", call.Argument(1))
		return e.wrap(layout.Overlay(base, layer, e.alignment("Overlay", call.Argument(2), layout.AlignCenter)))
	})
	set("Padding", func(call goja.FunctionCall) goja.Value {
		return e.wrap(layout.Padding(e.insets("Padding", call.Argument(0)), e.view("Padding", call.Argument(1))))
	})
	set("Frame", func(call goja.FunctionCall) goja.Value {
		opts, _ := e.isOptions(call.Argument(0))
		return e.wrap(layout.Frame(e.frame("Frame", opts), e.view("Frame", call.Argument(1))))
	})
	set("Grid", func(call goja.FunctionCall) goja.Value {
		opts, rest := e.splitOptions(call.Arguments)
		return e.wrap(layout.Grid(e.grid(opts), e.children("Grid", rest)...))
	})
	set("ScrollView", func(call goja.FunctionCall) goja.Value {
		return e.wrap(layout.ScrollView(e.axis("ScrollView", call.Argument(1)), e.view("ScrollView", call.Argument(0))))
	})
	set("IgnoreSafeArea", func(call goja.FunctionCall) goja.Value {
		return e.wrap(layout.IgnoreSafeArea(e.edges("IgnoreSafeArea", call.Argument(0)), e.view("IgnoreSafeArea", call.Argument(1))))
	})
	set("LazyVStack", func(call goja.FunctionCall) goja.Value {
		opts, rest := e.splitOptions(call.Arguments)
		if len(rest) < 2 {
			e.typeError("LazyVStack: count and builder required")
		}
		source := e.childFunc("LazyVStack", rest[0], rest[1])
		l := layout.NewVStackLayout(
			e.optionNumber("LazyVStack", opts, "spacing", 0),
			e.horizontalAlignment("LazyVStack", e.option(opts, "alignment")),
		)
		return e.wrap(layout.NewContainer(l, source))
	})
	set("Spacer", func(call goja.FunctionCall) goja.Value {
		return e.wrap(layout.Spacer{MinLength: e.number("Spacer", call.Argument(0), 0)})
	})
	set("Text", func(call goja.FunctionCall) goja.Value {
		content := ""
		if arg := call.Argument(0); !isMissing(arg) {
			content = arg.String()
		}
		t := text.New(content)
		opts, _ := e.isOptions(call.Argument(1))
		t.Style.LineSpacing = e.optionNumber("Text", opts, "lineSpacing", 1)
		return e.wrap(t)
	})
	set("Box", func(call goja.FunctionCall) goja.Value {
		return e.wrap(layout.NewIntrinsic(e.number("Box", call.Argument(0), 0), e.number("Box", call.Argument(1), 0)))
	})
	set("Fill", func(goja.FunctionCall) goja.Value {
		return e.wrap(layout.Fill{})
	})
	set("Image", func(call goja.FunctionCall) goja.Value {
		img, err := images.Load(e.resolve(call.Argument(0).String()), e.fetcher)
		if err != nil {
			e.typeError("Image: %v", err)
		}
		opts, _ := e.isOptions(call.Argument(1))
		if r := e.option(opts, "resizable"); !isMissing(r) {
			img.Resizable = r.ToBoolean()
		}
		return e.wrap(img)
	})
	set("Priority", func(call goja.FunctionCall) goja.Value {
		return e.wrap(layout.WithPriority(e.view("Priority", call.Argument(0)), e.number("Priority", call.Argument(1), 0)))
	})
	set("Stretch", func(call goja.FunctionCall) goja.Value {
		return e.wrap(layout.WithStretch(e.view("Stretch", call.Argument(0)), e.stretch("Stretch", call.Argument(1))))
	})
	set("render", func(call goja.FunctionCall) goja.Value {
		e.root = e.view("render", call.Argument(0))
		return goja.Undefined()
	})
}

func (e *Engine) grid(opts *goja.Object) layout.GridLayout {
	spacing := e.optionNumber("Grid", opts, "spacing", 0)
	g := layout.GridLayout{
		Columns:           e.count("Grid.columns", e.option(opts, "columns"), 1),
		HorizontalSpacing: e.optionNumber("Grid", opts, "horizontalSpacing", spacing),
		VerticalSpacing:   e.optionNumber("Grid", opts, "verticalSpacing", spacing),
		Alignment:         e.alignment("Grid", e.option(opts, "alignment"), layout.AlignTopLeading),
		DefaultWidth:      e.optionNumber("Grid", opts, "defaultWidth", e.gridDefaultWidth),
	}
	if w := e.option(opts, "weights"); !isMissing(w) {
		arr, ok := isArray(w)
		if !ok {
			e.typeError("Grid.weights: expected an array")
		}
		var weights layout.WeightedColumns
		for _, item := range arrayItems(arr) {
			weights = append(weights, e.number("Grid.weights", item, 1))
		}
		g.Sizing = weights
	}
	return g
}

// childFunc builds a lazy child source that calls back into the script.
// Builder results that are not views become empty leaves.
func (e *Engine) childFunc(fn string, count, builder goja.Value) layout.ChildSource {
	call, ok := goja.AssertFunction(builder)
	if !ok {
		e.typeError("%s: builder is not a function", fn)
	}
	return layout.ChildFunc{
		Count: e.count(fn, count, 0),
		Build: func(i int) layout.View {
			val, err := call(goja.Undefined(), e.vm.ToValue(i))
			if err != nil {
				e.logger.Warn("lazy child builder failed", zap.String("builder", fn), zap.Int("index", i), zap.Error(err))
				return layout.Intrinsic{}
			}
			v, ok := e.unwrap(val)
			if !ok {
				e.logger.Warn("lazy child builder returned a non-view", zap.String("builder", fn), zap.Int("index", i))
				return layout.Intrinsic{}
			}
			return v
		},
	}
}

// resolve makes relative image sources relative to the script's location.
func (e *Engine) resolve(src string) string {
	if images.IsDataURI(src) || strings.Contains(src, "://") {
		return src
	}
	if e.baseURL != nil {
		ref, err := url.Parse(src)
		if err != nil {
			return src
		}
		return e.baseURL.ResolveReference(ref).String()
	}
	if e.baseDir == "" || filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(e.baseDir, src)
}
