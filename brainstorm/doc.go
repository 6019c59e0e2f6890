// Package brainstorm implements the content brainstorming workflow: a fixed
// six-task DAG of LLM prompt steps over four brand-positioning inputs.
//
// Three generation tasks (flagship, seasonal_event, evergreen) run first and
// have no dependencies on each other. Two refinement tasks follow
// (flagship_reflection after flagship, seasonal_content after seasonal_event),
// and a final editing task composes the content-strategy summary from the
// reflection, seasonal-content, and evergreen outputs.
//
// The task graph never changes at runtime, so it is declared as a
// compile-time table ([TaskTable]) and the execution levels are derived from
// it once with a topological sort. Tasks in the same level run concurrently;
// each one writes exactly one dedicated field of [RunState], so no locking is
// required. A run is all-or-nothing: any task failure aborts the run and no
// partial state is returned.
package brainstorm
