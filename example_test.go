package quaternion_test

import (
	"errors"
	"fmt"
	"math"

	"quaternion"
)

func ExampleQuaternion_Mul() {
	i := quaternion.New(0.0, 1.0, 0.0, 0.0)
	j := quaternion.New(0.0, 0.0, 1.0, 0.0)
	fmt.Println(i.Mul(j))
	fmt.Println(j.Mul(i))
	// Output:
	// (0 + 0i + 0j + 1k)
	// (0 + 0i + 0j + -1k)
}

func ExampleQuaternion_Div() {
	_, err := quaternion.New(1.0, 2.0, 3.0, 4.0).Div(0)
	fmt.Println(err)
	fmt.Println(errors.Is(err, quaternion.ErrInvalidArgument))
	// Output:
	// divide (1 + 2i + 3j + 4k) by zero: invalid argument
	// true
}

func ExampleTurn3DVec() {
	halfTurn := quaternion.PolarTurn(0.0, 0.0, 1.0, math.Pi)
	v := quaternion.Turn3DVec(quaternion.FromVector(1.0, 0.0, 0.0), halfTurn)
	fmt.Printf("%.3f %.3f %.3f\n", v.I, v.J, v.K)
	// Output:
	// -1.000 0.000 0.000
}
