package parts

// defaultParts is the built-in catalog. Connector widths are 0 (a point),
// 1 (narrow hull) and 3 (wide hull).
var defaultParts = []Part{
	// Tips
	{ID: "tip-needle", Shape: "│", Height: 1, Connector: 0, Category: Tip{}, Weight: 1},
	{ID: "tip-antenna", Shape: "│\n║", Height: 2, Connector: 0, Category: Tip{}, Weight: 1},

	// Transitions
	{ID: "nose-arch", Shape: `/'\`, Height: 1, Connector: 1, Category: Transition{Width: 0}, Weight: 2},
	{ID: "nose-tee", Shape: "┌┴┐", Height: 1, Connector: 1, Category: Transition{Width: 0}, Weight: 2},
	{ID: "nose-double-tee", Shape: "┌╩┐", Height: 1, Connector: 1, Category: Transition{Width: 0}, Weight: 1},
	{ID: "flare", Shape: `/   \`, Height: 1, Connector: 3, Category: Transition{Width: 1}, Weight: 2},
	{ID: "nose-cone-wide", Shape: "/'\\\n/   \\", Height: 2, Connector: 3, Category: Transition{Width: 0}, Weight: 1},
	{ID: "step-out", Shape: "┌┘ └┐", Height: 1, Connector: 3, Category: Transition{Width: 1}, Weight: 1},
	{ID: "taper", Shape: `\   /`, Height: 1, Connector: 1, Category: Transition{Width: 3}, Weight: 1},
	{ID: "step-in", Shape: "└┐ ┌┘", Height: 1, Connector: 1, Category: Transition{Width: 3}, Weight: 1},

	// Body
	{ID: "body-narrow", Shape: "│ │", Height: 1, Connector: 1, Category: Body{}, Weight: 10},
	{ID: "body-narrow-porthole", Shape: "│°│", Height: 1, Connector: 1, Category: Body{}, Weight: 5},
	{ID: "body-narrow-fins", Shape: "/│ │\\", Height: 1, Connector: 1, Category: Body{}, Weight: 1},
	{ID: "body-wide", Shape: "│   │", Height: 1, Connector: 3, Category: Body{}, Weight: 10},
	{ID: "body-wide-portholes", Shape: "│° °│", Height: 1, Connector: 3, Category: Body{}, Weight: 5},
	{ID: "body-wide-window", Shape: "│ O │", Height: 1, Connector: 3, Category: Body{}, Weight: 5},
	{ID: "body-wide-fins", Shape: "/│ ^ │\\\n/_│ | │_\\", Height: 2, Connector: 3, Category: Body{}, Weight: 1},

	// Engines
	{ID: "engine-bell", Shape: "'─'", Height: 1, Connector: 0, Category: Engine{Width: 1}, Weight: 1},
	{ID: "engine-nozzle", Shape: `\_/`, Height: 1, Connector: 1, Category: Engine{Width: 3}, Weight: 1},

	// Exhaust
	{ID: "exhaust-plume", Shape: "( )", Height: 1, Connector: 0, Category: Exhaust{Width: 1}, Weight: 1},
	{ID: "exhaust-spark", Shape: "·", Height: 1, Connector: 0, Category: Exhaust{Width: 0}, Weight: 1},
	{ID: "exhaust-dot", Shape: ".", Height: 1, Connector: 0, Category: Exhaust{Width: 0}, Weight: 1},
	{ID: "exhaust-tick", Shape: "'", Height: 1, Connector: 0, Category: Exhaust{Width: 0}, Weight: 1},
}
