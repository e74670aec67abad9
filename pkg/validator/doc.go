// Package validator provides rule-based validation for request values.
//
// Rules are built per field and evaluated together by Apply, which returns
// ValidationErrors listing every failed rule:
//
//	err := validator.Apply(
//		validator.Required("name", req.Name),
//		validator.MaxLen("name", req.Name, 80),
//		validator.ValidEmail("email", req.Email),
//	)
package validator
