package driving

import "io"

// DemoService prints the worked examples of the complete number algebra.
type DemoService interface {
	// Run writes every demonstration scenario to w.
	Run(w io.Writer) error
}
