// SPDX-License-Identifier: MIT
// Package: mmgraph/mmio
//
// banner.go — "%%MatrixMarket object format field symmetry" parsing.
//
// Contract:
//   • Tokens are matched case-insensitively and stored lower-cased.
//   • ParseBanner only checks shape; Validate checks that the variant is the
//     one this package reads (matrix coordinate real general).

package mmio

import (
	"fmt"
	"strings"
)

// BannerPrefix opens every Matrix Market file.
const BannerPrefix = "%%MatrixMarket"

// Banner qualifiers.
const (
	ObjectMatrix = "matrix"

	FormatCoordinate = "coordinate"
	FormatArray      = "array"

	FieldReal    = "real"
	FieldInteger = "integer"
	FieldComplex = "complex"
	FieldPattern = "pattern"

	SymmetryGeneral   = "general"
	SymmetrySymmetric = "symmetric"
	SymmetrySkew      = "skew-symmetric"
	SymmetryHermitian = "hermitian"
)

const methodParseBanner = "ParseBanner"

// Banner is the decoded first line of a Matrix Market file.
type Banner struct {
	Object   string
	Format   string
	Field    string
	Symmetry string
}

// DefaultBanner is the only variant the reader accepts and the one the
// writer emits.
func DefaultBanner() Banner {
	return Banner{
		Object:   ObjectMatrix,
		Format:   FormatCoordinate,
		Field:    FieldReal,
		Symmetry: SymmetryGeneral,
	}
}

// ParseBanner decodes a banner line. It fails with ErrBadBanner when the
// prefix is missing or the qualifier count is not four.
func ParseBanner(line string) (Banner, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.EqualFold(fields[0], BannerPrefix) {
		return Banner{}, fmt.Errorf("%s: %q: %w", methodParseBanner, line, ErrBadBanner)
	}
	if len(fields) != 5 {
		return Banner{}, fmt.Errorf("%s: want 4 qualifiers, got %d: %w",
			methodParseBanner, len(fields)-1, ErrBadBanner)
	}

	return Banner{
		Object:   strings.ToLower(fields[1]),
		Format:   strings.ToLower(fields[2]),
		Field:    strings.ToLower(fields[3]),
		Symmetry: strings.ToLower(fields[4]),
	}, nil
}

// Validate reports ErrUnsupported unless b is "matrix coordinate real general".
func (b Banner) Validate() error {
	want := DefaultBanner()
	switch {
	case b.Object != want.Object:
		return fmt.Errorf("object %q: %w", b.Object, ErrUnsupported)
	case b.Format != want.Format:
		return fmt.Errorf("format %q: %w", b.Format, ErrUnsupported)
	case b.Field != want.Field:
		return fmt.Errorf("field %q: %w", b.Field, ErrUnsupported)
	case b.Symmetry != want.Symmetry:
		return fmt.Errorf("symmetry %q: %w", b.Symmetry, ErrUnsupported)
	}

	return nil
}

// String renders the banner line.
func (b Banner) String() string {
	return strings.Join([]string{BannerPrefix, b.Object, b.Format, b.Field, b.Symmetry}, " ")
}
