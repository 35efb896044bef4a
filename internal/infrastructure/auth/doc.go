// Package auth implements password hashing with bcrypt and signed staff
// access tokens with JWT.
package auth
