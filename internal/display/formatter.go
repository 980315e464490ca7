// Package display renders datasets as fixed-width text tables, with CSV and
// HTML variants for export.
package display

import (
	"fmt"
	"math"

	"bstat/domain/dataset"
)

// CellFormatter renders a single cell value as a fixed-width string.
type CellFormatter func(v interface{}) string

// NewCellFormatter inspects the values of one column and picks a reasonable
// width and number of digits of accuracy for them.
func NewCellFormatter(values []interface{}) CellFormatter {
	maxStringLength := 0
	biggestAbs := 0.0
	allNumbersInts := true
	anyNumbers := false
	for _, v := range values {
		if s, ok := v.(string); ok {
			if len(s) > maxStringLength {
				maxStringLength = len(s)
			}
			continue
		}
		if f, ok := dataset.AsNumber(v); ok {
			anyNumbers = true
			if math.Abs(f) > biggestAbs {
				biggestAbs = math.Abs(f)
			}
			if f != math.Trunc(f) {
				allNumbersInts = false
			}
			continue
		}
		if s := fmt.Sprint(v); len(s) > maxStringLength {
			maxStringLength = len(s)
		}
	}

	// Strings right-align next to numbers, left-align otherwise.
	stringFormat := fmt.Sprintf("%%%ds", maxStringLength)
	if !anyNumbers {
		stringFormat = fmt.Sprintf("%%-%ds", maxStringLength)
	}

	leftOfDecimal := 1
	if biggestAbs >= 1.0 {
		leftOfDecimal = 2 + int(math.Floor(math.Log10(biggestAbs)))
	}
	rightOfDecimal := 0
	if !allNumbersInts {
		rightOfDecimal = 5 - leftOfDecimal
		if rightOfDecimal < 0 {
			rightOfDecimal = 0
		}
	}
	totalSize := 2 + leftOfDecimal + rightOfDecimal
	numberFormat := fmt.Sprintf("%%%d.%df", totalSize, rightOfDecimal)

	return func(v interface{}) string {
		if s, ok := v.(string); ok {
			return fmt.Sprintf(stringFormat, s)
		}
		if f, ok := dataset.AsNumber(v); ok {
			return fmt.Sprintf(numberFormat, f)
		}
		return fmt.Sprintf(stringFormat, fmt.Sprint(v))
	}
}
