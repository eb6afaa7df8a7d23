// Package render turns a finished rocket into output.
//
// [Text] centers every row of every part within the widest row of the whole
// rocket. Rows narrower than the rocket are shifted right by half the
// difference, rounded up, so all parts share one vertical axis:
//
//	  │
//	 /'\
//	/   \
//	│ O │
//	 \_/
//
// [JSON] describes the same rocket as data, including the rendered art and a
// [DesignID] that is equal for rockets made of the same parts.
//
// Rendering is stateless: the same rocket always renders to the same output.
package render
