// Package model contains domain models/data structures.
// Keep it free of business logic; values here are built by the service layer.
package model

// ModuleName is the fixed display label of the page.
const ModuleName = "Module 1"
