// Package tokens splits delimiter separated text into tokens while
// honouring escape sequences and a null marker, and writes text back
// with the special characters escaped. Tokens are substrings of the
// input; nothing is copied unless an escape sequence has to be removed.
package tokens
