// Package lib provide small helpers shared by the index implementations:
// settings for configuring them, histograms and averages for
// book-keeping their statistics. They shall not depend on anything
// other than the standard library.
package lib
