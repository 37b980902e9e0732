package visualijoper_test

import (
	"fmt"

	"github.com/bjaus/visualijoper"
)

type exampleCaller struct{}

func (exampleCaller) Caller(int) (string, int, bool) { return "main.go", 12, true }

func ExampleNew() {
	r := visualijoper.New(true,
		visualijoper.WithoutAssets(),
		visualijoper.WithCaller(exampleCaller{}),
	)
	fmt.Println(r.Render())
	// Output:
	// <div class="visualijoper"><div class="visualijoper__header vj-header"><span class="vj-header__type">Boolean</span>: <span class="vj-header__value">True</span></div><div class="visualijoper__footer">Called from <strong>main.go</strong>, line <strong>12</strong><a target="_blank" href="https://github.com/desfpc/Visualijoper">powered by Visualijoper</a></div></div>
}

func ExampleMap() {
	order := visualijoper.Map{
		{Key: "id", Value: 42},
		{Key: "items", Value: []string{"tea", "cake"}},
	}
	fmt.Println(visualijoper.Classify(order).Kind())
	// Output: Array
}
