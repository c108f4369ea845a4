package band

import (
	"sort"
	"strconv"
	"strings"
)

// assemble orders candidates left to right and, for a standard 3-5 band
// reading, decodes them: every band but the last contributes one decimal
// digit (leftmost is most significant) and the last band is the power-of-ten
// multiplier.
func assemble(bands []Band) *Result {
	if bands == nil {
		bands = []Band{}
	}
	sort.SliceStable(bands, func(i, j int) bool { return bands[i].X < bands[j].X })

	res := &Result{Bands: bands}
	if len(bands) < 3 || len(bands) > 5 {
		return res
	}

	var digits strings.Builder
	for _, b := range bands[:len(bands)-1] {
		digits.WriteString(strconv.Itoa(b.Digit))
	}
	base, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		// Unreachable while digits stay in 0-9; kept as a guard.
		return res
	}

	ohms := base
	for i := 0; i < bands[len(bands)-1].Digit; i++ {
		ohms *= 10
	}
	res.Ohms = &ohms
	return res
}
