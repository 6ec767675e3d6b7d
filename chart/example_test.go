package chart_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/checkout/chart"
	"github.com/katalvlaran/checkout/checkout"
)

// ExampleBuild builds the default chart and reads a few rows from it.
func ExampleBuild() {
	c, err := chart.Build(context.Background(), checkout.DefaultPreferences())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, score := range []int{170, 100, 169} {
		r, _ := c.Row(score)
		fmt.Printf("%d: %s (%s)\n", score, r.Route(), r.Status())
	}
	// Output:
	// 170: T20 T20 Bull (finish)
	// 100: T20 D20 (finish)
	// 169: - (bogey)
}
