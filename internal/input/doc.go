// Package input validates operator-supplied sequences and generates random ones.
package input
