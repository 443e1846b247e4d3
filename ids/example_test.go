package ids_test

import (
	"fmt"

	"github.com/jay11071998/integreat/ids"
)

func ExampleRegistry() {
	reg := ids.NewRegistry()
	i, _ := reg.Intern("ARG29")
	j, _ := reg.Intern("TP53")
	reg.Freeze()

	name, _ := reg.Lookup(i)
	fmt.Println(i, j, name, reg.Len())
	// Output: 0 1 ARG29 2
}
