// Package textutil provides whitespace normalization and delimited-list
// splitting used by the import pipeline before any value is compared or
// stored.
package textutil
