// ft defines the raw boundary with the native font engine: the public
// lead-in of its records, its enum and flag values, the status code
// type and the call table used to reach its entry points.
//
// Nothing in this package interprets fixed-point values or manages
// ownership; that is the job of the wrapper layer above.
package ft
