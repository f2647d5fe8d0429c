// Package normalisers provides implementations of the Normaliser
// interface for the note formats refdex indexes. Each normaliser
// knows how to extract title, tags, and searchable text from a
// specific MIME type.
//
// Normalisers are registered with the Registry at startup.
package normalisers
