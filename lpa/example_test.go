// SPDX-License-Identifier: MIT

package lpa_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ncd/core"
	"github.com/katalvlaran/ncd/lpa"
)

// ExampleDetector_Fit splits two triangles that share no edge.
func ExampleDetector_Fit() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}, {"x", "y"}, {"y", "z"}, {"x", "z"}} {
		if _, err := g.AddEdge(e[0], e[1], 0); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	d := lpa.New(lpa.WithMode(lpa.ModeSemi))
	if err := d.Fit(context.Background(), g); err != nil {
		fmt.Println("error:", err)
		return
	}
	coms, _ := d.Predict([]string{"a", "b", "c", "x", "y", "z"})
	fmt.Println(coms)
	// Output: [0 0 0 1 1 1]
}
