package encoding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/rcsv/errs"
)

// ParseNum decodes a dotted revision number into its integer components.
// Leading zeros are tolerated and normalize away on FormatNum.
func ParseNum(num string) ([]int, error) {
	if num == "" {
		return nil, fmt.Errorf("%w: empty number", errs.ErrInvalidNumber)
	}

	parts := strings.Split(num, ".")
	components := make([]int, len(parts))
	for i, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: empty component in %q", errs.ErrInvalidNumber, num)
		}
		for j := 0; j < len(part); j++ {
			if part[j] < '0' || part[j] > '9' {
				return nil, fmt.Errorf("%w: non-digit in %q", errs.ErrInvalidNumber, num)
			}
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q in %q", errs.ErrInvalidNumber, part, num)
		}
		components[i] = v
	}

	return components, nil
}

// FormatNum encodes integer components as a dotted revision number.
func FormatNum(components []int) string {
	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = strconv.Itoa(c)
	}

	return strings.Join(parts, ".")
}

// Increment adds delta onto the left-aligned prefix of base, component by
// component: Increment("1.1", "0.2") == "1.3" and Increment("1.2.1.3", "1")
// == "2.2.1.3".
//
// An empty base is treated as an undefined revision and passes through
// unchanged. A delta with more components than the base cannot be aligned
// and fails with errs.ErrInvalidNumber.
func Increment(base, delta string) (string, error) {
	return shiftNum(base, delta, 1)
}

// Decrement subtracts delta from the left-aligned prefix of base, the
// inverse of Increment. Driving any component below zero fails, since no
// valid revision could carry it.
func Decrement(base, delta string) (string, error) {
	return shiftNum(base, delta, -1)
}

func shiftNum(base, delta string, sign int) (string, error) {
	if base == "" {
		return base, nil
	}

	bv, err := ParseNum(base)
	if err != nil {
		return "", err
	}
	dv, err := ParseNum(delta)
	if err != nil {
		return "", err
	}
	if len(dv) > len(bv) {
		return "", fmt.Errorf("%w: delta %q has more components than base %q", errs.ErrInvalidNumber, delta, base)
	}

	for i, d := range dv {
		bv[i] += sign * d
		if bv[i] < 0 {
			return "", fmt.Errorf("%w: component %d of %q would go negative", errs.ErrInvalidNumber, i+1, base)
		}
	}

	return FormatNum(bv), nil
}
