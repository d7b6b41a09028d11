package gcircle_test

import (
	"fmt"

	"github.com/katalvlaran/dirichlet/gcircle"
)

// ExampleBisector builds the hyperbolic bisector of the origin and ½ and
// checks that it is a geodesic of the Poincaré disk.
func ExampleBisector() {
	g, err := gcircle.Bisector(0, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("center=%.3f radius=%.3f geodesic=%v\n", real(g.Center()), g.Radius(), g.IsGeodesic(1e-9))
	// Output:
	// center=2.000 radius=1.732 geodesic=true
}

// ExampleCircle_Dominance shows the triple-inclusion test on nested disks
// seen from a point outside both.
func ExampleCircle_Dominance() {
	outer, _ := gcircle.FromCenterRadius(2, 1.5)
	inner, _ := gcircle.FromCenterRadius(2.5, 0.5)

	d, err := outer.Dominance(0, inner)
	fmt.Println(d, err)
	// Output:
	// self-dominates <nil>
}
