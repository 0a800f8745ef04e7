// Package matrix holds the numeric block of a synthetic dataset as a dense,
// row-major float64 matrix and computes the column statistics used by
// dataset summaries (means, sample covariance, standard deviation).
//
// All public operations validate their inputs and return sentinel errors
// (ErrInvalidDimensions, ErrOutOfRange, ErrNaNInf, ...) instead of panicking.
package matrix
