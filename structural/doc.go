// Package structural contains the illustrative snippets for the structural
// design patterns: adapter, bridge, composite, decorator, facade, flyweight,
// and proxy. Each snippet is self-contained and exists only to demonstrate
// its structural relationship.
package structural
