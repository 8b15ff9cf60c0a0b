// Package buffer implements the document model of the editor: rows indexed by
// grapheme cluster, the content they make up, reversible edit operations and
// cursor navigation.
//
// Coordinates are 0-based (Row, Col) where Col counts grapheme clusters.
// Ranges are half-open spans in document coordinates: [Start, End).
package buffer
