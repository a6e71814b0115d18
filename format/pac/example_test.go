package pac_test

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-fujisaki/fujisaki"
	"github.com/cwbudde/algo-fujisaki/format/pac"
)

func ExampleDecode() {
	lines := make([]string, pac.HeaderLines)
	lines[6] = "800"
	lines[9] = "100.0"
	lines[10] = "0.005"
	text := strings.Join(lines, "\n") + "\n0.5 0 0.3 2\n1.0 1.2 0.2 20\n"

	f, err := pac.Decode(strings.NewReader(text))
	if err != nil {
		panic(err)
	}
	pitch, err := f.Pitch(fujisaki.NewSynthesizer())
	if err != nil {
		panic(err)
	}

	fmt.Printf("t_max=%.0f commands=%d samples=%d f0[0]=%.1f\n",
		f.Duration(), len(f.Commands), len(pitch), pitch[0])

	// Output:
	// t_max=4 commands=2 samples=1600 f0[0]=100.0
}
