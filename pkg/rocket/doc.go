// Package rocket assembles rockets from a part catalog.
//
// # Assembly
//
// [Build] runs a fixed sequence of phases over an ordered list of parts:
//
//  1. Init: reject heights below 3 and draw the body/decoration ratio
//  2. NoseCone: place one Transition(0) part
//  3. Body: add bodies and transitions matching the current joint while
//     the remaining height is large relative to the built height
//  4. Engine: place exactly one engine matching the current joint
//  5. Decoration: fill the rest with tips (prepended above the nose) and
//     exhaust (appended below the engine) until the height is exact
//
// Every phase filters the catalog with a pure predicate ([NoseCone],
// [Hull], [EngineFor], [Decoration]) and picks among the candidates by
// weight. An empty candidate set aborts the build with NO_ELIGIBLE_PART,
// except in the decoration phase where it means the exact height cannot be
// reached and aborts with UNSATISFIABLE_HEIGHT.
//
// # Randomness
//
// All random draws go through a [Source]. [NewSource] gives a seeded PCG
// source; tests can supply their own to make assembly deterministic:
//
//	r, err := rocket.Build(ctx, parts.Default(), 12, rocket.WithSource(rocket.NewSource(42)))
package rocket
