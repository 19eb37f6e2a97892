// Package toast provides transient notifications for Bubble Tea programs.
// A Controller owns the list of active toasts and expires them on a
// periodic sweep. A Container renders that list inside a terminal area,
// either stacked as a column or overlapping at a single anchor.
package toast
