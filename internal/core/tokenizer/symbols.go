package tokenizer

// The phoneme alphabet the acoustic model was trained with. Symbol IDs are
// assigned by enumeration order, so the order of these groups is fixed and
// must never change.
const (
	pad         = "_"
	punctuation = "!'(),.:;? "
	special     = "-"

	vowels                 = "iyɨʉɯuɪʏʊeøɘəɵɤoɛœɜɞʌɔæɐaɶɑɒᵻ"
	nonPulmonicConsonants  = "ʘɓǀɗǃʄǂɠǁʛ"
	pulmonicConsonants     = "pbtdʈɖcɟkɡqɢʔɴŋɲɳnɱmʙrʀⱱɾɽɸβfvθðszʃʒʂʐçʝxɣχʁħʕhɦɬɮʋɹɻjɰlɭʎʟ"
	suprasegmentals        = "ˈˌːˑ"
	otherSymbols           = "ʍwɥʜʢʡɕʑɺɧ"
	rhoticityAndDiacritics = "ɚ˞ɫ"
)

// extraPhonemes covers symbols seen in wiktionary IPA annotations that the
// base tables miss. ASCII 'g' (U+0067) is a distinct symbol from IPA 'ɡ'
// (U+0261); the remainder are combining marks.
var extraPhonemes = []rune{
	'g',
	'ɝ',
	'̃', // combining tilde (nasalization)
	'̍', // combining vertical line above
	'̥', // combining ring below (voicelessness)
	'̩', // combining vertical line below (syllabicity)
	'̯', // combining inverted breve below
	'͡', // combining double inverted breve (tie bar)
}

// alphabet returns every phoneme symbol in ID order.
func alphabet() []rune {
	base := pad + punctuation + special +
		vowels + nonPulmonicConsonants + pulmonicConsonants +
		suprasegmentals + otherSymbols + rhoticityAndDiacritics

	symbols := make([]rune, 0, len([]rune(base))+len(extraPhonemes))
	symbols = append(symbols, []rune(base)...)
	symbols = append(symbols, extraPhonemes...)
	return symbols
}
