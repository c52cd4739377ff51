package solver

import "github.com/ehrlich-b/cuberithm/internal/cube"

// Builder constructs a SolveInstance. Mirrors the reference implementation's
// own builder-style construction (initial_state/desired_state/move_count,
// then build()), extended with a couple of ambient knobs (Parallel,
// MaxStates) that do not change what gets enumerated.
type Builder struct {
	inst SolveInstance
}

// NewBuilder starts a fresh Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) InitialState(c cube.CubeState) *Builder {
	b.inst.initial = c
	return b
}

func (b *Builder) DesiredState(c cube.CubeState) *Builder {
	b.inst.desired = c
	return b
}

func (b *Builder) MoveCount(n int) *Builder {
	b.inst.moveCount = n
	return b
}

// Parallel enables the one-worker-per-first-move coarse parallelism
// described for the forward and backward passes.
func (b *Builder) Parallel(p bool) *Builder {
	b.inst.parallel = p
	return b
}

// MaxStates bounds how many states each DFS worker processes before it
// stops expanding: one worker per pass, or one per first move of a pass
// when Parallel is set. A bridging sub-solve runs under the same bound,
// and its count is added to the worker that started it. Zero means
// unbounded.
func (b *Builder) MaxStates(n uint64) *Builder {
	b.inst.maxStates = n
	return b
}

func (b *Builder) Build() *SolveInstance {
	inst := b.inst
	inst.solutions = make(map[string]Solution)
	return &inst
}
