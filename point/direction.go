// SPDX-License-Identifier: MIT

package point

import "fmt"

// FromSymbol maps an arrow ('>', '<', '^', 'v') or letter ('R', 'L', 'U',
// 'D') to its unit offset. Any other byte yields ErrInvalidDirection.
func FromSymbol(b byte) (Point, error) {
	switch b {
	case '>', 'R':
		return Right, nil
	case '<', 'L':
		return Left, nil
	case '^', 'U':
		return Up, nil
	case 'v', 'D':
		return Down, nil
	default:
		return Origin, fmt.Errorf("%w: %q", ErrInvalidDirection, b)
	}
}
