package js

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"waterlayout/pkg/layout"
	"waterlayout/pkg/text"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func run(t *testing.T, script string, opts ...Option) layout.View {
	t.Helper()
	v, err := New(opts...).Execute("test.js", script)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestRenderRoot(t *testing.T) {
	v := run(t, `
		render(HStack({ spacing: 0, alignment: "top" }, Box(50, 10), Spacer(), Box(30, 10)));
	`)

	p := layout.NewLayoutEngine(200, 10).Layout(v)
	if len(p.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(p.Children))
	}
	if w := p.Children[1].Frame.Width(); w != 120 {
		t.Errorf("expected spacer width 120, got %g", w)
	}
}

func TestCompletionValueIsRoot(t *testing.T) {
	v := run(t, `VStack(Box(10, 10), Box(10, 20))`)
	if got := v.Measure(layout.UnspecifiedProposal()); got != layout.NewSize(10, 30) {
		t.Errorf("expected 10x30, got %s", got)
	}
}

func TestNoRoot(t *testing.T) {
	_, err := New().Execute("empty.js", `var x = 1;`)
	if !errors.Is(err, ErrNoRoot) {
		t.Errorf("expected ErrNoRoot, got %v", err)
	}
}

func TestBuilderTypeErrors(t *testing.T) {
	tests := map[string]string{
		"non-view child":        `VStack(Box(1, 1), 42)`,
		"unknown alignment":     `ZStack({ alignment: "middle" }, Box(1, 1))`,
		"unknown edge":          `IgnoreSafeArea("top|side", Fill())`,
		"bad number":            `Box("wide", 10)`,
		"missing stretch":       `Stretch(Box(1, 1))`,
		"overlay without layer": `Overlay(Box(1, 1))`,
		"lazy without builder":  `LazyVStack(3)`,
		"weights not array":     `Grid({ weights: 3 }, Box(1, 1))`,
		"huge grid columns":     `Grid({ columns: 1e9 }, Box(1, 1))`,
		"fractional columns":    `Grid({ columns: 2.5 }, Box(1, 1))`,
		"huge lazy count":       `LazyVStack(1e9, function (i) { return Box(1, 1); })`,
		"negative lazy count":   `LazyVStack(-1, function (i) { return Box(1, 1); })`,
	}

	for name, script := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New().Execute("bad.js", script)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "TypeError") {
				t.Errorf("expected a TypeError, got %v", err)
			}
		})
	}
}

func TestScriptErrorsCanBeCaught(t *testing.T) {
	run(t, `
		var caught = false;
		try { VStack(1, 2); } catch (e) { caught = e instanceof TypeError; }
		if (!caught) throw new Error("expected TypeError");
		render(Fill());
	`)
}

func TestModifiers(t *testing.T) {
	v := run(t, `
		render(Box(100, 50).padding(16).frame({ width: 200, alignment: "leading" }).priority(2));
	`)

	if v.LayoutPriority() != 2 {
		t.Errorf("expected priority 2, got %g", v.LayoutPriority())
	}
	size := v.Measure(layout.UnspecifiedProposal())
	if size != layout.NewSize(200, 82) {
		t.Errorf("expected 200x82, got %s", size)
	}
}

func TestPaddingObjectInsets(t *testing.T) {
	v := run(t, `Padding({ horizontal: 10, top: 4 }, Box(20, 20))`)
	if got := v.Measure(layout.UnspecifiedProposal()); got != layout.NewSize(40, 24) {
		t.Errorf("expected 40x24, got %s", got)
	}
}

func TestFrameFlexible(t *testing.T) {
	v := run(t, `Frame({ maxWidth: Infinity, minHeight: 30 }, Box(10, 10))`)

	if s := v.StretchAxis(); s != layout.StretchHorizontal {
		t.Errorf("expected horizontal stretch, got %s", s)
	}
	got := v.Measure(layout.NewProposal(layout.Bounded(300), layout.Unspecified()))
	if got != layout.NewSize(300, 30) {
		t.Errorf("expected 300x30, got %s", got)
	}
}

func TestGridOptions(t *testing.T) {
	v := run(t, `
		Grid({ columns: 2, weights: [1, 3] }, [Box(5, 20), Box(5, 40)].concat([Box(5, 5)]))
	`, WithGridDefaultWidth(400))

	size := v.Measure(layout.UnspecifiedProposal())
	if size != layout.NewSize(400, 45) {
		t.Errorf("expected 400x45, got %s", size)
	}

	p := layout.NewLayoutEngine(400, 45).Layout(v)
	if x := p.Children[1].Frame.MinX(); x != 100 {
		t.Errorf("expected second column at 100, got %g", x)
	}
}

func TestIgnoreSafeAreaEdges(t *testing.T) {
	v := run(t, `Fill().ignoreSafeArea(["top", "bottom"])`)

	engine := layout.NewLayoutEngine(100, 200)
	engine.SetSafeArea(layout.EdgeInsets{Top: 20, Bottom: 10})
	p := engine.Layout(v)

	got := p.Children[0].Frame
	if got != layout.NewRect(0, 0, 100, 200) {
		t.Errorf("expected child to cover the screen, got %s", got)
	}
}

func TestLazyVStack(t *testing.T) {
	v := run(t, `
		var built = 0;
		LazyVStack({ spacing: 2 }, 4, function (i) { built++; return Box(10, i + 1); })
	`)

	if got := v.Measure(layout.UnspecifiedProposal()); got != layout.NewSize(10, 1+2+3+4+3*2) {
		t.Errorf("expected 10x16, got %s", got)
	}
}

func TestLazyVStackBadChild(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	v := run(t, `LazyVStack(2, function (i) { return i; })`, WithLogger(zap.New(core)))

	if got := v.Measure(layout.UnspecifiedProposal()); got != (layout.Size{}) {
		t.Errorf("expected empty size, got %s", got)
	}
	if logs.Len() != 2 {
		t.Errorf("expected 2 warnings, got %d", logs.Len())
	}
}

func TestTextBuilder(t *testing.T) {
	v := run(t, `Text("hello", { lineSpacing: 2 })`)

	txt, ok := v.(*text.Text)
	if !ok {
		t.Fatalf("expected *text.Text, got %T", v)
	}
	if txt.Content != "hello" || txt.Style.LineSpacing != 2 {
		t.Errorf("unexpected text %+v", txt)
	}
}

func TestToString(t *testing.T) {
	run(t, `
		var s = String(VStack(Box(1, 1)));
		if (s !== "VStack") throw new Error("unexpected: " + s);
		render(Fill());
	`)
}

func TestConsole(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	run(t, `
		console.log("laying out", 3, "rows");
		console.warn("careful");
		console.error("broken");
		render(Fill());
	`, WithLogger(zap.New(core)))

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Message != "laying out 3 rows" || entries[0].Level != zap.InfoLevel {
		t.Errorf("unexpected log entry %+v", entries[0])
	}
	if entries[1].Level != zap.WarnLevel || entries[2].Level != zap.ErrorLevel {
		t.Errorf("unexpected levels %v and %v", entries[1].Level, entries[2].Level)
	}
}

func TestImageDataURI(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	v := run(t, `Image("`+uri+`", { resizable: true })`)

	if got := v.Measure(layout.NewProposal(layout.Bounded(10), layout.Unspecified())); got != layout.NewSize(10, 10) {
		t.Errorf("expected 10x10, got %s", got)
	}
}
