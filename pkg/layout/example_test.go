package layout_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/gridpath/pkg/layout"
)

func ExampleRead() {
	l, err := layout.Read(strings.NewReader("S.#\n..#\n..E\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, _ := l.Load(context.Background())
	res, _ := s.Run(context.Background(), nil)
	fmt.Println("distance:", res.Distance)
	fmt.Print(layout.Format(s.Grid()))
	// Output:
	// distance: 4
	// Sx#
	// *x#
	// **E
}
