// Package errs provides standardized error types for the catering application.
//
// The package includes one error type per failure kind:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - VersionIsInvalidError: a stored document carries an unsupported version
//   - ObjectNotFoundError: an entity id or order number cannot be resolved
//   - ObjectAlreadyExistsError: an entity with the same identity is already registered
//   - StateIsInvalidError: an operation was attempted outside its legal source state
//   - ResourceIsUnavailableError: no free driver or vehicle can serve a request
//   - AuthenticationMismatchError: a presented credential does not match the expected one
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrValueIsRequired)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - an Error() method formatting the message
//   - an Unwrap() method returning the sentinel, so errors.Is matches by kind
//     and errors.As extracts the details
package errs
