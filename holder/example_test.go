package holder_test

import (
	"fmt"

	"github.com/rxonhe/go-tython/holder"
)

func Example() {
	var (
		name    = holder.NewKey[string]("name")
		retries = holder.NewKey[int]("retries")
	)

	h := holder.New()
	if err := h.Offer(name.Of("worker"), retries.Of(3)); err != nil {
		panic(err)
	}
	fmt.Println(holder.Get(h, name), holder.Get(h, retries))

	err := h.Set("retries", "three")
	fmt.Println(err)
	// Output:
	// worker 3
	// holder: value type does not match key type: retries must be int, not string
}
