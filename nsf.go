/*
Package nsf provides verified interval arithmetic on float64.

Every operation rounds outward, so the computed intervals always contain the
exact real result. Division by intervals containing zero returns unions of
disjoint intervals instead of giving up.

The library is organised as follows:

  - interval: rounding primitives, intervals, unions, arithmetic and set algebra.
  - elementary: outward-rounded elementary functions on unions.
  - precision: soundness and tightness measurements of the arithmetic.
  - cmd/nsf: command line tool to evaluate expressions and run measurements.
*/
package nsf
