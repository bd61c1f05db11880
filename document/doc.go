// Package document models the drafting document the engine reads:
// shapes, drawings, the building/storey hierarchy, and source
// references linking derived shapes back to what they were generated
// from.
//
// The document store is owned by the host application. The engine
// packages (grid/, section/) treat a *Document as an immutable
// snapshot: they read it and return replacement shape sets or mutation
// values, never retaining references across calls. The mutation
// helpers on Document (ReplaceDerived, RemoveShapes, AddShapes) exist
// for the host side and for tests.
package document
