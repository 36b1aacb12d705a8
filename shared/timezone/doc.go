// Package timezone keeps all wall-clock reads in the single configured
// application timezone, so slot comparisons against "now" are stable no
// matter where the process runs.
package timezone
