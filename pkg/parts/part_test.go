package parts

import "testing"

func TestCategoryEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Category
		want bool
	}{
		{"same transition", Transition{Width: 1}, Transition{Width: 1}, true},
		{"transition widths differ", Transition{Width: 1}, Transition{Width: 3}, false},
		{"engine vs exhaust", Engine{Width: 1}, Exhaust{Width: 1}, false},
		{"tip", Tip{}, Tip{}, true},
		{"body vs tip", Body{}, Tip{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.want {
				t.Errorf("%v == %v = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{Tip{}, "Tip"},
		{Body{}, "Body"},
		{Transition{Width: 0}, "Transition(0)"},
		{Engine{Width: 3}, "Engine(3)"},
		{Exhaust{Width: 1}, "Exhaust(1)"},
	}

	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindTip, KindBody, KindTransition, KindEngine, KindExhaust} {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, true", k.String(), got, ok, k)
		}
	}
	if _, ok := ParseKind("booster"); ok {
		t.Error("ParseKind(\"booster\") should fail")
	}
}

func TestNewCategory(t *testing.T) {
	tests := []struct {
		kind  Kind
		width int
		want  Category
	}{
		{KindTip, 7, Tip{}},
		{KindBody, 7, Body{}},
		{KindTransition, 3, Transition{Width: 3}},
		{KindEngine, 1, Engine{Width: 1}},
		{KindExhaust, 0, Exhaust{Width: 0}},
	}

	for _, tt := range tests {
		got, err := NewCategory(tt.kind, tt.width)
		if err != nil {
			t.Fatalf("NewCategory(%v, %d) error: %v", tt.kind, tt.width, err)
		}
		if got != tt.want {
			t.Errorf("NewCategory(%v, %d) = %v, want %v", tt.kind, tt.width, got, tt.want)
		}
	}

	if _, err := NewCategory(Kind(42), 0); err == nil {
		t.Error("NewCategory with unknown kind should fail")
	}
}

func TestTop(t *testing.T) {
	tests := []struct {
		name string
		part Part
		want int
	}{
		{"tip", Part{Category: Tip{}, Connector: 0}, 0},
		{"body uses connector", Part{Category: Body{}, Connector: 3}, 3},
		{"transition uses width", Part{Category: Transition{Width: 1}, Connector: 3}, 1},
		{"engine uses width", Part{Category: Engine{Width: 3}, Connector: 1}, 3},
		{"exhaust uses width", Part{Category: Exhaust{Width: 1}, Connector: 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.part.Top(); got != tt.want {
				t.Errorf("Top() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCanStack(t *testing.T) {
	c := Default()
	get := func(id string) *Part {
		p, ok := c.Lookup(id)
		if !ok {
			t.Fatalf("missing part %q", id)
		}
		return p
	}

	tests := []struct {
		upper, lower string
		want         bool
	}{
		{"nose-arch", "body-narrow", true},
		{"nose-arch", "flare", true},
		{"nose-arch", "body-wide", false},
		{"flare", "body-wide", true},
		{"body-wide", "engine-nozzle", true},
		{"body-wide", "engine-bell", false},
		{"engine-nozzle", "exhaust-plume", true},
		{"engine-bell", "exhaust-dot", true},
		{"engine-bell", "exhaust-plume", false},
		{"tip-needle", "nose-arch", true},
		{"tip-needle", "tip-antenna", true},
		{"tip-needle", "body-narrow", false},
		{"exhaust-dot", "tip-needle", false},
	}

	for _, tt := range tests {
		t.Run(tt.upper+"/"+tt.lower, func(t *testing.T) {
			if got := CanStack(get(tt.upper), get(tt.lower)); got != tt.want {
				t.Errorf("CanStack(%s, %s) = %v, want %v", tt.upper, tt.lower, got, tt.want)
			}
		})
	}
}

func TestRows(t *testing.T) {
	p := Part{Shape: "│\n║"}
	rows := p.Rows()
	if len(rows) != 2 || rows[0] != "│" || rows[1] != "║" {
		t.Errorf("Rows() = %q, want [│ ║]", rows)
	}
}
