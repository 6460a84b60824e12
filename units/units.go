package units

import (
	"fmt"
	"math"
)

// Unit is a byte-scale unit on the radix-1024 ladder.
type Unit string

const (
	B  Unit = "B"
	KB Unit = "KB"
	MB Unit = "MB"
	GB Unit = "GB"
	TB Unit = "TB"
	PB Unit = "PB"
)

const radix = 1024

// ladder lists units in increasing scale.
var ladder = []Unit{B, KB, MB, GB, TB, PB}

// InvalidUnitError is returned for a unit symbol outside the ladder.
type InvalidUnitError struct {
	Unit Unit
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid unit %q", string(e.Unit))
}

func index(u Unit) (int, error) {
	for i, candidate := range ladder {
		if candidate == u {
			return i, nil
		}
	}
	return 0, &InvalidUnitError{Unit: u}
}

// Convert rescales magnitude from one unit to another. The result is not
// rounded; callers round with Round.
func Convert(magnitude float64, from, to Unit) (float64, error) {
	fromIdx, err := index(from)
	if err != nil {
		return 0, err
	}
	toIdx, err := index(to)
	if err != nil {
		return 0, err
	}

	distance := toIdx - fromIdx
	if distance < 0 {
		distance = -distance
	}
	factor := math.Pow(radix, float64(distance))

	if fromIdx < toIdx {
		return magnitude / factor, nil
	}
	return magnitude * factor, nil
}

// Round rounds x half away from zero to the given number of decimal places.
func Round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}

// BytesToGB converts a byte count to gigabytes rounded to 2 places.
func BytesToGB(n uint64) float64 {
	gb, _ := Convert(float64(n), B, GB)
	return Round(gb, 2)
}

// MBToGB converts megabytes to gigabytes rounded to 2 places.
func MBToGB(mb float64) float64 {
	gb, _ := Convert(mb, MB, GB)
	return Round(gb, 2)
}
