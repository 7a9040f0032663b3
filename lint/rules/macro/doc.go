// Package macro provides lint rules for %macro definitions: declaration
// syntax, parameter and option validity, nesting and %mend naming.
package macro
