// Package creational contains the illustrative snippets for the creational
// design patterns: singleton, builder, factory method, abstract factory, and
// prototype. Each snippet defines its own disposable toy types and shares
// nothing with the others.
package creational
