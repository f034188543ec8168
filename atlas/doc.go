// Package atlas renders the glyphs of a font into a single multi-channel
// true signed distance field (MTSDF) atlas.
//
// Each glyph outline is split into contours of line, quadratic and cubic
// edges. Edges meeting at a corner sharper than the angle threshold get
// different channel colors, so the median of the red, green and blue
// channels reproduces sharp corners when the atlas is magnified. The alpha
// channel holds the plain signed distance, which is useful for effects such
// as outlines and soft shadows.
//
// # Pipeline
//
// 1. Read outlines for every charset codepoint the font has
// 2. Color edges by corner angle
// 3. Pack glyph boxes into the smallest square atlas
// 4. Render distance fields on Config.Threads goroutines
// 5. Extract kerning for every ordered glyph pair
//
// Texel values are 0.5 on the outline, above 0.5 inside and below outside.
// The full byte range spans Config.PixelRange atlas pixels.
//
// # Usage
//
//	face, err := fontload.Open("Fonts/Roboto.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gen, err := atlas.Generate(face, atlas.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := msdffont.Assemble(gen)
//
// # WGSL Shader Example
//
//	fn median3(v: vec3<f32>) -> f32 {
//	    return max(min(v.r, v.g), min(max(v.r, v.g), v.b));
//	}
//
//	@fragment
//	fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
//	    let mtsdf = textureSample(atlas_tex, samp, uv);
//	    let sd = median3(mtsdf.rgb) - 0.5;
//	    let alpha = clamp(sd * px_range / length(fwidth(uv)) + 0.5, 0.0, 1.0);
//	    return vec4<f32>(color.rgb, color.a * alpha);
//	}
//
// # References
//
// - msdf-atlas-gen: https://github.com/Chlumsky/msdf-atlas-gen
// - MSDF paper: "Shape Decomposition for Multi-channel Distance Fields"
package atlas
