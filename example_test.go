package blackjax_test

import (
	"fmt"

	blackjax "github.com/ebriand/go-blackjax"
)

func ExampleBlackjaxify() {
	out, err := blackjax.Blackjaxify("Find $b_5$ of the Fourier series of $f$.", blackjax.Options{SkipScript: true})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: Find \(b_5\) of the Fourier series of \(f\).
}

func ExampleFormatter_Numeric() {
	f := blackjax.New(
		blackjax.WithDecimalSeparator(blackjax.DecimalPoint),
		blackjax.WithScriptURL("mathjax/MathJax.js"),
	)
	q, err := f.Numeric("What is the infinite sum $1 + \\frac{1}{5} + \\frac{1}{25} + \\cdots$?", 1.25, 0.01)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(q.Type)
	fmt.Println(q.Fields[1], q.Fields[2])
	// Output:
	// NUM
	// 1.25 0.01
}
