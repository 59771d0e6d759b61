// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    "ingredient not in catalog",
//	    cause,
//	    map[string]interface{}{
//	        "ingredient": name,
//	        "recipe": recipeName,
//	    },
//	)
package errors
