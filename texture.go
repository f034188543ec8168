package msdffont

import "github.com/gogpu/gputypes"

// AtlasTexture describes the GPU texture a Font's bitmap uploads into.
type AtlasTexture struct {
	Size        gputypes.Extent3D
	Format      gputypes.TextureFormat
	Dimension   gputypes.TextureDimension
	Usage       gputypes.TextureUsage
	BytesPerRow uint32
}

// AtlasTexture returns the upload description for the atlas bitmap: a
// single-layer 2D RGBA8 texture sampled by shaders and filled by a copy.
func (f *Font) AtlasTexture() AtlasTexture {
	return AtlasTexture{
		Size: gputypes.Extent3D{
			Width:              f.data.BitmapWidth,
			Height:             f.data.BitmapHeight,
			DepthOrArrayLayers: 1,
		},
		Format:      gputypes.TextureFormatRGBA8Unorm,
		Dimension:   gputypes.TextureDimension2D,
		Usage:       gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		BytesPerRow: f.data.BitmapWidth * BytesPerPixel,
	}
}
