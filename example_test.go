package units_test

import (
	"fmt"

	"github.com/gopherunits/units"
)

func ExampleParseUnit() {
	u, err := units.ParseUnit("kilometres/h")
	if err != nil {
		panic(err)
	}
	fmt.Println(u.Render())
	// Output: km/h
}

func ExampleDimensionalUnit_To() {
	kmh, _ := units.ParseUnit("km/h")
	mh, _ := units.ParseUnit("m/h")
	ratio, err := kmh.To(mh)
	if err != nil {
		panic(err)
	}
	fmt.Println(ratio)
	// Output: 1000
}

func ExampleParseIntervals() {
	validator, err := units.ParseIntervals("MiB: (0, 2560]")
	if err != nil {
		panic(err)
	}
	out, err := validator.Normalize("2.5 GiB")
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: 2560 MiB
}

func ExampleIntervalsValidator_IsValidText() {
	validator, _ := units.ParseIntervals("kg:[0,1]")
	fmt.Println(validator.IsValidText("0 kg"))
	fmt.Println(validator.IsValidFloat(1.0000000000000002))
	// Output:
	// true
	// false
}
