// SPDX-License-Identifier: MIT

package namespace_test

import (
	"errors"
	"fmt"

	"github.com/QTB-HHU/modelbase/namespace"
)

// ExampleRegistry shows registration, batch extension and resolution.
func ExampleRegistry() {
	r := namespace.New()
	_, _ = r.Register("X")
	_, _ = r.Extend([]string{"Y", "Y_total"})

	ids, _ := r.Resolve("Y_total", "X")
	fmt.Println(ids)

	_, err := r.Register("X")
	fmt.Println(errors.Is(err, namespace.ErrDuplicateName))

	// Output:
	// [2 0]
	// true
}
