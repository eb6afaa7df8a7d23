package parts

import (
	"strings"
	"testing"

	"github.com/matzehuels/rocket/pkg/errors"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c != Default() {
		t.Error("Default() should return the same catalog on every call")
	}
	if c.Len() != len(defaultParts) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(defaultParts))
	}

	for _, p := range c.Parts() {
		if got := len(p.Rows()); got != p.Height {
			t.Errorf("%s: height %d, rows %d", p.ID, p.Height, got)
		}
		switch p.Connector {
		case 0, 1, 3:
		default:
			t.Errorf("%s: unexpected connector width %d", p.ID, p.Connector)
		}
	}
}

func TestDefaultCatalogHasEnginesForEveryHull(t *testing.T) {
	c := Default()
	for _, w := range []int{1, 3} {
		if got := c.Query(func(p *Part) bool { return p.Category == Engine{Width: w} }); len(got) == 0 {
			t.Errorf("no Engine(%d) part", w)
		}
		if got := c.Query(func(p *Part) bool { return p.Category == (Body{}) && p.Connector == w }); len(got) == 0 {
			t.Errorf("no single-row body for width %d", w)
		}
	}
}

func TestQuery(t *testing.T) {
	c := Default()

	tests := []struct {
		name string
		pred Predicate
		want []string
	}{
		{
			name: "nose cones",
			pred: func(p *Part) bool { return p.Category == Transition{Width: 0} },
			want: []string{"nose-arch", "nose-tee", "nose-double-tee", "nose-cone-wide"},
		},
		{
			name: "tips",
			pred: func(p *Part) bool { return p.Category == (Tip{}) },
			want: []string{"tip-needle", "tip-antenna"},
		},
		{
			name: "single-row nose cones",
			pred: All(func(p *Part) bool { return p.Category == Transition{Width: 0} }, MaxHeight(1)),
			want: []string{"nose-arch", "nose-tee", "nose-double-tee"},
		},
		{
			name: "engines or narrow exhaust",
			pred: Any(
				func(p *Part) bool { return p.Category.Kind() == KindEngine },
				func(p *Part) bool { return p.Category == Exhaust{Width: 1} },
			),
			want: []string{"engine-bell", "engine-nozzle", "exhaust-plume"},
		},
		{
			name: "nothing",
			pred: func(p *Part) bool { return p.Height > 100 },
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(c.Query(tt.pred))
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Query() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryIsDeterministic(t *testing.T) {
	c := Default()
	pred := func(p *Part) bool { return p.Category == (Body{}) }
	first := strings.Join(ids(c.Query(pred)), ",")
	for range 5 {
		if got := strings.Join(ids(c.Query(pred)), ","); got != first {
			t.Fatalf("Query() = %s, want %s", got, first)
		}
	}
}

func TestLookup(t *testing.T) {
	c := Default()
	p, ok := c.Lookup("body-wide-window")
	if !ok {
		t.Fatal("Lookup(body-wide-window) not found")
	}
	if p.Shape != "│ O │" {
		t.Errorf("Shape = %q, want %q", p.Shape, "│ O │")
	}
	if _, ok := c.Lookup("warp-drive"); ok {
		t.Error("Lookup(warp-drive) should not be found")
	}
}

func TestNewCopiesDefinitions(t *testing.T) {
	defs := minimalDefs()
	c, err := New(defs)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defs[0].Shape = "changed"
	p, _ := c.Lookup(defs[0].ID)
	if p.Shape == "changed" {
		t.Error("catalog should not alias the input slice")
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Part) []Part
	}{
		{"duplicate id", func(d []Part) []Part { d[1].ID = d[0].ID; return d }},
		{"bad id", func(d []Part) []Part { d[0].ID = "Nose"; return d }},
		{"zero weight", func(d []Part) []Part { d[0].Weight = 0; return d }},
		{"height mismatch", func(d []Part) []Part { d[0].Height = 2; return d }},
		{"negative connector", func(d []Part) []Part { d[1].Connector = -1; return d }},
		{"negative width", func(d []Part) []Part { d[1].Category = Engine{Width: -1}; return d }},
		{"nil category", func(d []Part) []Part { d[0].Category = nil; return d }},
		{"empty shape", func(d []Part) []Part { d[0].Shape = ""; return d }},
		{"no nose", func(d []Part) []Part { return d[1:] }},
		{"no engine", func(d []Part) []Part { return d[:1] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(minimalDefs()))
			if err == nil {
				t.Fatal("New() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidCatalog) {
				t.Errorf("New() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidCatalog)
			}
		})
	}
}

func minimalDefs() []Part {
	return []Part{
		{ID: "nose", Shape: "/'\\", Height: 1, Connector: 1, Category: Transition{Width: 0}, Weight: 1},
		{ID: "engine", Shape: "'─'", Height: 1, Connector: 0, Category: Engine{Width: 1}, Weight: 1},
	}
}

func ids(ps []*Part) []string {
	var out []string
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}
