package rocket

import (
	"strings"
	"testing"

	"github.com/matzehuels/rocket/pkg/parts"
)

func TestPredicates(t *testing.T) {
	cat := parts.Default()

	tests := []struct {
		name string
		pred parts.Predicate
		want []string
	}{
		{
			name: "nose cones with room",
			pred: NoseCone(5),
			want: []string{"nose-arch", "nose-tee", "nose-double-tee", "nose-cone-wide"},
		},
		{
			name: "nose cones in one row",
			pred: NoseCone(1),
			want: []string{"nose-arch", "nose-tee", "nose-double-tee"},
		},
		{
			name: "narrow hull",
			pred: Hull(1, 5),
			want: []string{"flare", "step-out", "body-narrow", "body-narrow-porthole", "body-narrow-fins"},
		},
		{
			name: "wide hull in one row",
			pred: Hull(3, 1),
			want: []string{"taper", "step-in", "body-wide", "body-wide-portholes", "body-wide-window"},
		},
		{
			name: "wide hull with room",
			pred: Hull(3, 2),
			want: []string{"taper", "step-in", "body-wide", "body-wide-portholes", "body-wide-window", "body-wide-fins"},
		},
		{
			name: "nose cones attach under a point",
			pred: Hull(0, 10),
			want: []string{"nose-arch", "nose-tee", "nose-double-tee", "nose-cone-wide"},
		},
		{
			name: "no hull for an unknown joint",
			pred: Hull(5, 10),
			want: nil,
		},
		{
			name: "engine under wide hull",
			pred: EngineFor(3, 1),
			want: []string{"engine-nozzle"},
		},
		{
			name: "engine needs a row",
			pred: EngineFor(1, 0),
			want: nil,
		},
		{
			name: "decoration under nozzle",
			pred: Decoration(1, 1),
			want: []string{"tip-needle", "exhaust-plume"},
		},
		{
			name: "decoration under bell",
			pred: Decoration(0, 2),
			want: []string{"tip-needle", "tip-antenna", "exhaust-spark", "exhaust-dot", "exhaust-tick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, p := range cat.Query(tt.pred) {
				got = append(got, p.ID)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
