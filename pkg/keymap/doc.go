// Package keymap builds fixed-size key symbol tables from comma separated
// keymap files, and the symbol enumeration shared by all tables.
//
// Each keymap line names a symbol and its raw hexadecimal key code:
//
//	Escape, 0x1B, ...
//
// The code is masked into one of [TableSize] slots. Slots with no mapping
// hold [Sentinel].
package keymap
