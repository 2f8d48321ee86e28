// Package shape defines the Shape entity: a named target pose addressed by
// its dense position in the output weight vector. Shapes are immutable after
// parse and owned by the simplex package's arena — this package only carries
// the value type and index arithmetic around it, identity without the graph
// that stores it.
package shape

// Index is a dense position in the output weight vector and in the shape
// arena. Shape index 0 is the rest/neutral pose by convention.
type Index int

// Shape is a named, indexed target pose.
type Shape struct {
	Name  string
	Index Index
}

// New constructs a Shape at the given arena position.
func New(name string, index Index) Shape {
	return Shape{Name: name, Index: index}
}
