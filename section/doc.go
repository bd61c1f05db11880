// Package section derives the content of a section drawing from a
// cutting callout in a plan drawing: gridlines, storey levels, cut
// slabs, optional dimensions, and the source-reference index. It also
// maps edits made to derived shapes in the section view back to
// mutations of their plan sources.
//
// The engine is a pure function of the document snapshot. Compute
// returns a full replacement set for the section drawing's derived
// shapes; regenerating with unchanged inputs yields an identical set
// apart from fresh shape identities. The host replaces the previous
// derived shapes (document.ReplaceDerived) and owns all mutation,
// undo, and debouncing of rapid edits.
package section
