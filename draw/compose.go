package draw

// factors returns the Porter-Duff (Fa, Fb) pair for op, where Fa scales
// the source term and Fb scales the destination term (§4.3 "Operator
// model"). Clear is modelled as Fa=Fb=0, which zeroes the destination
// within the operation's target rectangle.
func factors(op Op, sa, da float64) (fa, fb float64) {
	switch op {
	case Clear:
		return 0, 0
	case S:
		return 1, 0
	case D:
		return 0, 1
	case SoverD:
		return 1, 1 - sa
	case DoverS:
		return 1 - da, 1
	case SinD:
		return da, 0
	case DinS:
		return 0, sa
	case SoutD:
		return 1 - da, 0
	case DoutS:
		return 0, 1 - sa
	case SatopD:
		return da, 1 - sa
	case DatopS:
		return 1 - da, sa
	case SxorD:
		return 1 - da, 1 - sa
	default:
		return 1, 1 - sa
	}
}

// composite combines a source and destination straight-RGBA8 pixel
// under op, optionally gated by a mask coverage value in [0,255]
// (255 = fully opaque mask, i.e. an unmasked draw). The result is
// straight RGBA8.
func composite(op Op, sr, sg, sb, sa, dr, dg, db, da byte, coverage byte) (r, g, b, a byte) {
	sA := float64(sa) / 255 * float64(coverage) / 255
	dA := float64(da) / 255
	fa, fb := factors(op, sA, dA)

	sR, sG, sB := float64(sr)/255*sA, float64(sg)/255*sA, float64(sb)/255*sA
	dR, dG, dB := float64(dr)/255*dA, float64(dg)/255*dA, float64(db)/255*dA

	outA := sA*fa + dA*fb
	outR := sR*fa + dR*fb
	outG := sG*fa + dG*fb
	outB := sB*fa + dB*fb

	if outA <= 0 {
		return 0, 0, 0, 0
	}
	return clampByte(outR / outA * 255), clampByte(outG / outA * 255), clampByte(outB / outA * 255), clampByte(outA * 255)
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v + 0.5)
}
