// Package deskcalc implements the arithmetic behind a desktop calculator.
//
// The grammar is deliberately small: decimal literals with an optional
// exponent such as 1e+24, the four operators + - * / (also × and ÷), unary
// signs, and parentheses. "7*8" is 56 and
// "1+2*3" is 7; multiplication and division bind more tightly than addition
// and subtraction, and operators of equal precedence associate to the left.
// Exponentiation with ^ can be enabled with AllowPower. Nothing else is
// accepted, so evaluating display text can never do more than arithmetic.
//
// Evaluate turns display text into a Result, which is either a value or an
// error with an ErrorKind. Result.Text gives the string to show on the
// display, which is "Error" for every kind of failure.
//
// Subpackage calculator holds the application state machine, and ui puts it
// in a window.
package deskcalc
