/*
Package mathdown converts the block markup used for math-problem
documents into LaTeX.

A document is a sequence of blocks: a line starting with '#' names a
command (with an optional {key:value, ...} parameter override suffix)
and the following non-marker lines are its content. Each block is
dispatched to a renderer from a closed command catalog (problem,
solution, question, text, eq, math, align, bullet, enum, config), or to
a generic template renderer for commands registered at runtime through
the configuration resolver. Consecutive bullet or enum blocks share a
single list environment, tracked by the compiler's grouping state
machine.

Every command renders in three formats: a markdown echo of the source
form, a plain-text rendition, and LaTeX. Only the LaTeX contract does
real work, combining the command's resolved configuration template with
parameter-derived layout such as font directives and spacing.
*/
package mathdown
