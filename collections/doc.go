// Package collections walks through the standard operations of five container
// types: a growable array, a doubly linked list, a hash map, a hash set and a
// sorted set. Each demonstration is a pure function returning its final
// container plus a Print function that renders the result the way the
// command-line programs in cmd/ show it.
package collections
