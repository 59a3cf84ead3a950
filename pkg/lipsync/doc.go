// Package lipsync turns speech audio into a mouth animation.
//
// Recognition produces a Timeline of Phones. Animate maps the phones to
// mouth Shapes in the Preston Blair tradition used by cartoon studios:
//
//	A  closed mouth (P, B, M)
//	B  slightly open, clenched teeth (most consonants)
//	C  open mouth (EH, AE)
//	D  wide open (AA)
//	E  slightly rounded (AO, ER)
//	F  puckered (UW, OW, W)
//	G  upper teeth on lower lip (F, V)
//	H  tongue raised (L)
//	X  idle, mouth at rest
//
// A through F are the basic shapes; G, H and X are extended and fall back to
// B, C and A when the target ShapeSet lacks them.
//
// Example usage:
//
//	clip, _ := pcm.NewClip(samples, 16000)
//	anim, err := lipsync.AnimateClip(ctx, clip, "", &lipsync.EnergyRecognizer{},
//	    lipsync.BasicShapes(), lipsync.NullProgress{})
package lipsync
