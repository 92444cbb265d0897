package dependentvariable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/csdm-go/csdm/errs"
)

// componentCount parses a quantity_type string into the component count it
// implies (§3): "scalar" -> 1; "pixel_N"/"vector_N" -> N; "matrix_R_C" ->
// R*C; "symmetric_matrix_N" -> N*(N+1)/2. Any other form is invalid.
func componentCount(quantityType string) (int, error) {
	switch {
	case quantityType == "scalar":
		return 1, nil
	case strings.HasPrefix(quantityType, "vector_"):
		n, err := parseUint(quantityType, "vector_")
		return n, err
	case strings.HasPrefix(quantityType, "pixel_"):
		n, err := parseUint(quantityType, "pixel_")
		return n, err
	case strings.HasPrefix(quantityType, "symmetric_matrix_"):
		n, err := parseUint(quantityType, "symmetric_matrix_")
		if err != nil {
			return 0, err
		}
		return n * (n + 1) / 2, nil
	case strings.HasPrefix(quantityType, "matrix_"):
		rest := strings.TrimPrefix(quantityType, "matrix_")
		parts := strings.SplitN(rest, "_", 2)
		if len(parts) != 2 {
			return 0, badQuantityType(quantityType)
		}
		r, err1 := strconv.Atoi(parts[0])
		c, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || r < 1 || c < 1 {
			return 0, badQuantityType(quantityType)
		}
		return r * c, nil
	default:
		return 0, badQuantityType(quantityType)
	}
}

func parseUint(s, prefix string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, prefix))
	if err != nil || n < 1 {
		return 0, badQuantityType(s)
	}
	return n, nil
}

func badQuantityType(qt string) error {
	return &errs.DecodeError{Source: "quantity_type", Reason: fmt.Sprintf("unrecognized quantity_type %q", qt)}
}

// isScalar reports whether quantityType is exactly "scalar".
func isScalar(quantityType string) bool { return quantityType == "scalar" }

// isVector reports whether quantityType is "vector_N", returning N.
func isVector(quantityType string) (int, bool) {
	if !strings.HasPrefix(quantityType, "vector_") {
		return 0, false
	}
	n, err := parseUint(quantityType, "vector_")
	return n, err == nil
}

// isPixel reports whether quantityType is "pixel_N", returning N.
func isPixel(quantityType string) (int, bool) {
	if !strings.HasPrefix(quantityType, "pixel_") {
		return 0, false
	}
	n, err := parseUint(quantityType, "pixel_")
	return n, err == nil
}

// isMatrix reports whether quantityType is "matrix_R_C", returning R, C.
func isMatrix(quantityType string) (r, c int, ok bool) {
	if !strings.HasPrefix(quantityType, "matrix_") {
		return 0, 0, false
	}
	rest := strings.TrimPrefix(quantityType, "matrix_")
	parts := strings.SplitN(rest, "_", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	ri, err1 := strconv.Atoi(parts[0])
	ci, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || ri < 1 || ci < 1 {
		return 0, 0, false
	}
	return ri, ci, true
}

// isSymmetricMatrix reports whether quantityType is "symmetric_matrix_N".
func isSymmetricMatrix(quantityType string) (int, bool) {
	if !strings.HasPrefix(quantityType, "symmetric_matrix_") {
		return 0, false
	}
	n, err := parseUint(quantityType, "symmetric_matrix_")
	return n, err == nil
}

// isParameterizedFamily reports whether quantityType carries a count that
// insert_component/remove_component must rewrite on mutation (§4.3).
func isParameterizedFamily(quantityType string) bool {
	if isScalar(quantityType) {
		return true
	}
	if _, ok := isVector(quantityType); ok {
		return true
	}
	if _, ok := isPixel(quantityType); ok {
		return true
	}
	if _, _, ok := isMatrix(quantityType); ok {
		return true
	}
	if _, ok := isSymmetricMatrix(quantityType); ok {
		return true
	}
	return false
}

// rewriteQuantityTypeForCount implements §4.3's mutation rule: a
// parameterized quantity_type is rewritten to "vector_<newCount>" (or
// "scalar" when newCount == 1) whenever the component count changes via
// insert_component/remove_component; non-parameterized types are untouched.
func rewriteQuantityTypeForCount(quantityType string, newCount int) string {
	if !isParameterizedFamily(quantityType) {
		return quantityType
	}
	if newCount == 1 {
		return "scalar"
	}
	return fmt.Sprintf("vector_%d", newCount)
}
