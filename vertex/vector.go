// SPDX-License-Identifier: MIT
package vertex

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// VectorVertex is a vertex carrying an application ID and a dense vector.
// In a rating matrix the ID is a user (row side) or an item (column side,
// offset by the row count) and the vector holds its latent factors.
//
// The zero value is usable: ID 0, no vector.
type VectorVertex struct {
	id  int
	vec *mat.VecDense
}

// New returns a VectorVertex with ID 0 and no vector. It matches the factory
// shape expected by the loader.
func New() *VectorVertex { return &VectorVertex{} }

// NewWithID returns a VectorVertex with the given ID and no vector.
func NewWithID(id int) *VectorVertex { return &VectorVertex{id: id} }

// ID returns the current identity.
func (v *VectorVertex) ID() int { return v.id }

// SetID overwrites the identity. No validation and no uniqueness check.
func (v *VectorVertex) SetID(id int) { v.id = id }

// IsNil reports whether v is a nil pointer.
func (v *VectorVertex) IsNil() bool { return v == nil }

// SetVector attaches vec. The vertex keeps the pointer; it does not copy.
func (v *VectorVertex) SetVector(vec *mat.VecDense) { v.vec = vec }

// Vector returns the attached vector, or nil if none was set.
func (v *VectorVertex) Vector() *mat.VecDense { return v.vec }

// String renders "id: <id> value: [a b c]" (or "value: <nil>").
func (v *VectorVertex) String() string {
	if v.vec == nil {
		return fmt.Sprintf("id: %d value: <nil>", v.id)
	}

	n := v.vec.Len()
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%g", v.vec.AtVec(i))
	}

	return fmt.Sprintf("id: %d value: [%s]", v.id, strings.Join(parts, " "))
}
