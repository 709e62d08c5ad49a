// Package types defines the resource value model that every matcher in
// itemexpr evaluates: kinds and their capabilities, modifier tags, colors and
// the Resource itself. Values here are plain data; nothing in this package
// performs matching.
package types
