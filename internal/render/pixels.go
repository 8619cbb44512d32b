package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf,
// land cells taking the land color and everything else the ocean color.
func fillBinaryRGBA(buf []byte, cells []uint8, land, ocean color.Color) {
	rLand, gLand, bLand, aLand := land.RGBA()
	rOcean, gOcean, bOcean, aOcean := ocean.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == 1 {
			buf[base+0] = uint8(rLand >> 8)
			buf[base+1] = uint8(gLand >> 8)
			buf[base+2] = uint8(bLand >> 8)
			buf[base+3] = uint8(aLand >> 8)
			continue
		}
		buf[base+0] = uint8(rOcean >> 8)
		buf[base+1] = uint8(gOcean >> 8)
		buf[base+2] = uint8(bOcean >> 8)
		buf[base+3] = uint8(aOcean >> 8)
	}
}
