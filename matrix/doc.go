// Package matrix materializes a loaded rating graph as gonum dense matrices:
// a value matrix plus a 0/1 observation mask, with summary statistics over
// the observed cells.
//
//	rm, err := matrix.NewRatingMatrix(g, rows, cols)
//	mean, std := rm.MeanStdDev()
package matrix
