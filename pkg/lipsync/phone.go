package lipsync

import "fmt"

// Phone is an ARPAbet phone or a non-speech sound.
type Phone uint8

const (
	PhoneUnknown Phone = iota

	// Vowels
	AO
	AA
	IY
	UW
	EH
	IH
	UH
	AH
	Schwa
	AE
	EY
	AY
	OW
	AW
	OY
	ER

	// Consonants
	P
	B
	T
	D
	K
	G
	CH
	JH
	F
	V
	TH
	DH
	S
	Z
	SH
	ZH
	HH
	M
	N
	NG
	L
	R
	Y
	W

	// Non-speech
	Breath
	Noise
)

var phoneNames = [...]string{
	PhoneUnknown: "Unknown",
	AO:           "AO", AA: "AA", IY: "IY", UW: "UW", EH: "EH", IH: "IH", UH: "UH",
	AH: "AH", Schwa: "Schwa", AE: "AE", EY: "EY", AY: "AY", OW: "OW", AW: "AW",
	OY: "OY", ER: "ER",
	P: "P", B: "B", T: "T", D: "D", K: "K", G: "G", CH: "CH", JH: "JH", F: "F",
	V: "V", TH: "TH", DH: "DH", S: "S", Z: "Z", SH: "SH", ZH: "ZH", HH: "HH",
	M: "M", N: "N", NG: "NG", L: "L", R: "R", Y: "Y", W: "W",
	Breath: "Breath", Noise: "Noise",
}

func (p Phone) String() string {
	if int(p) < len(phoneNames) {
		return phoneNames[p]
	}
	return fmt.Sprintf("Phone(%d)", uint8(p))
}

// IsVowel reports whether p is a vowel.
func (p Phone) IsVowel() bool { return p >= AO && p <= ER }

// IsSpeech reports whether p is a spoken phone rather than noise or breath.
func (p Phone) IsSpeech() bool { return p >= AO && p <= W }

// ParsePhone parses an ARPAbet name as printed by String.
func ParsePhone(s string) (Phone, error) {
	for i, name := range phoneNames {
		if name == s && Phone(i) != PhoneUnknown {
			return Phone(i), nil
		}
	}
	return PhoneUnknown, fmt.Errorf("lipsync: unknown phone %q", s)
}

// letterPhones approximates the phone for a letter of dialog text. English
// spelling is far from phonetic; this only needs to vary the mouth plausibly.
var letterPhones = map[rune]Phone{
	'a': AE, 'b': B, 'c': K, 'd': D, 'e': EH, 'f': F, 'g': G, 'h': HH,
	'i': IH, 'j': JH, 'k': K, 'l': L, 'm': M, 'n': N, 'o': OW, 'p': P,
	'q': K, 'r': R, 's': S, 't': T, 'u': UH, 'v': V, 'w': W, 'x': K,
	'y': Y, 'z': Z,
}

// digraphPhones take precedence over single letters.
var digraphPhones = map[string]Phone{
	"ch": CH, "sh": SH, "th": TH, "ng": NG, "ee": IY, "oo": UW, "ou": AW,
	"oi": OY, "oy": OY, "ai": EY, "ay": EY, "er": ER, "ph": F, "ck": K,
	"aw": AO, "ow": OW,
}

// dialogPhones returns a rough phone sequence for the words of a dialog hint.
func dialogPhones(words []string) []Phone {
	var phones []Phone
	for _, w := range words {
		for i := 0; i < len(w); {
			if i+1 < len(w) {
				if p, ok := digraphPhones[w[i:i+2]]; ok {
					phones = append(phones, p)
					i += 2
					continue
				}
			}
			if p, ok := letterPhones[rune(w[i])]; ok {
				// Doubled consonants are one sound.
				if len(phones) == 0 || phones[len(phones)-1] != p || p.IsVowel() {
					phones = append(phones, p)
				}
			}
			i++
		}
	}
	return phones
}
