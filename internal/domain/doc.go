// Package domain contains the core entities of the taskline application
// along with their validation rules and sentinel errors.
package domain
