package canvas

// fillRegion rewrites region as the set of pixels enclosed by the stroke
// buffer. Stroke pixels are treated as impassable walls: a flood fill
// seeded at every non-wall border pixel marks everything reachable from
// outside, and the region is whatever is neither exterior nor wall. A
// boundary with a real gap therefore leaks and produces little or no
// region, which is the intended behavior rather than something to patch
// over.
//
// The fill is iterative with an explicit worklist so frame size never
// threatens the stack.
func fillRegion(stroke, region *Mask) {
	region.Reset()
	if stroke == nil || stroke.w == 0 || stroke.h == 0 {
		return
	}
	if stroke.Empty() {
		// No walls at all: everything is exterior, nothing is enclosed.
		return
	}

	w, h := stroke.w, stroke.h
	exterior := make([]bool, w*h)
	work := make([]int, 0, 2*(w+h))

	seed := func(i int) {
		if !exterior[i] && stroke.pix[i] == 0 {
			exterior[i] = true
			work = append(work, i)
		}
	}
	for x := 0; x < w; x++ {
		seed(x)
		seed((h-1)*w + x)
	}
	for y := 0; y < h; y++ {
		seed(y * w)
		seed(y*w + w - 1)
	}

	for len(work) > 0 {
		i := work[len(work)-1]
		work = work[:len(work)-1]
		x, y := i%w, i/w
		if x > 0 {
			seed(i - 1)
		}
		if x < w-1 {
			seed(i + 1)
		}
		if y > 0 {
			seed(i - w)
		}
		if y < h-1 {
			seed(i + w)
		}
	}

	for i := range region.pix {
		if !exterior[i] && stroke.pix[i] == 0 {
			region.pix[i] = 0xff
		}
	}
}
