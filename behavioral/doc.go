// Package behavioral contains the illustrative snippets for the behavioral
// design patterns: chain of responsibility, command, interpreter, iterator,
// mediator, memento, observer, state, strategy, template method, and
// visitor. Every snippet is a single-pass, in-memory illustration with its
// own toy types.
package behavioral
