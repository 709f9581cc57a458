package matrix

// SquareSum returns the sum of the squares of every element, accumulated
// row-major. Used for loss reporting.
func (d *Dense) SquareSum() float64 {
	var sum float64
	for _, v := range d.data {
		sum += float64(v * v)
	}
	return sum
}
