// Package compiler runs the font asset pipeline: open a font file, render
// its glyph atlas, assemble the FontData and write it as a binary asset
// next to the source file.
//
// Run compiles a batch. With no paths it walks Config.AssetRoot for files
// with one of Config.FontExtensions. Fonts that fail are collected in the
// Report while the rest of the batch proceeds.
package compiler
