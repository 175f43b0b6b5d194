// Package assert provides internal consistency checks for container code.
//
// Checks panic when they fail. Build with the assertions_disabled tag to
// compile them out of hot paths.
package assert
