// Package utils holds small helpers shared across transport layers.
package utils
