// Package types defines the Dictionary and WordEntry types and the
// standard error types shared by the madlib loader, substitution engine,
// and word bank.
package types
