// SPDX-License-Identifier: MIT
// Package: zagreb/graphio
//
// errors.go — sentinel errors for document codecs.

package graphio

import "errors"

var (
	// ErrUnknownFormat indicates an unsupported Format value or file extension.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrInvalidDocument indicates a document that fails to parse or violates its
	// structural rules (schema, id density, peer range).
	ErrInvalidDocument = errors.New("graphio: invalid document")
)
