// Package editor orchestrates editing of one document: cursor movement,
// selection, scrolling, edits with linear undo/redo, clipboard commands and
// the draw directives of each frame.
//
// State is driven by input events and renders into a screen.Sink. Model
// adapts State to a Bubble Tea host.
package editor
