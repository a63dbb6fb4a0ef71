package phonemizer

import (
	"context"

	"github.com/luukhd2/Glados-text-to-speech/internal/pool"
)

// Lexicon is a self-contained grapheme-to-phoneme backend: words are looked
// up in an embedded pronunciation table and anything unknown falls back to
// spelling rules. It needs no model files, which makes it the default for
// text-only use, but its pronunciations are noticeably rougher than the
// pretrained model's.
type Lexicon struct {
	builders *pool.BuilderPool
}

// NewLexicon creates the embedded-lexicon backend.
func NewLexicon() *Lexicon {
	return &Lexicon{builders: pool.NewBuilderPool()}
}

// Phonemize converts cleaned text to an IPA phoneme string.
func (lx *Lexicon) Phonemize(ctx context.Context, text string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	return assemble(splitTokens(text), func(word string) (string, error) {
		if phones, ok := lexicon[word]; ok {
			return phones, nil
		}
		return lx.spell(word), nil
	})
}

// Close implements ports.Phonemizer. The lexicon holds no resources.
func (lx *Lexicon) Close() error { return nil }

// spell applies spelling rules, longest grapheme first.
func (lx *Lexicon) spell(w string) string {
	b := lx.builders.Get()
	defer lx.builders.Put(b)

	const maxRuleLen = 4
	for i := 0; i < len(w); {
		matched := false
		for length := maxRuleLen; length >= 2; length-- {
			if i+length > len(w) {
				continue
			}
			if phones, ok := letterRules[w[i:i+length]]; ok {
				b.WriteString(phones)
				i += length
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if phones, ok := letterRules[w[i:i+1]]; ok {
			b.WriteString(phones)
		}
		i++
	}
	return b.String()
}

// letterRules maps grapheme sequences to IPA, longest match first. They are
// intentionally crude; the lexicon above catches the words where they guess
// worst.
var letterRules = map[string]string{
	"tion": "ʃən",
	"sion": "ʒən",
	"ough": "ʌf",
	"ight": "aɪt",
	"ture": "tʃɚ",
	"sure": "ʃɚ",
	"ould": "ʊd",
	"ound": "aʊnd",
	"ence": "əns",
	"ance": "əns",
	"ment": "mənt",
	"ness": "nəs",
	"able": "əbəl",
	"ible": "əbəl",
	"ally": "əli",
	"igh":  "aɪ",
	"ful":  "fəl",
	"ing":  "ɪŋ",
	"ght":  "t",
	"tch":  "tʃ",
	"dge":  "dʒ",
	"sch":  "sk",
	"chr":  "kɹ",
	"que":  "k",
	"qu":   "kw",
	"ph":   "f",
	"th":   "θ",
	"sh":   "ʃ",
	"ch":   "tʃ",
	"wh":   "w",
	"wr":   "ɹ",
	"kn":   "n",
	"gn":   "n",
	"ck":   "k",
	"ng":   "ŋ",
	"gh":   "",
	"ee":   "i",
	"ea":   "i",
	"oo":   "u",
	"oa":   "oʊ",
	"ou":   "aʊ",
	"ow":   "oʊ",
	"ai":   "eɪ",
	"ay":   "eɪ",
	"oi":   "ɔɪ",
	"oy":   "ɔɪ",
	"au":   "ɔ",
	"aw":   "ɔ",
	"ew":   "u",
	"er":   "ɚ",
	"ir":   "ɝ",
	"ur":   "ɝ",
	"ar":   "ɑɹ",
	"or":   "ɔɹ",
	"le":   "əl",

	"a": "æ",
	"b": "b",
	"c": "k",
	"d": "d",
	"e": "ɛ",
	"f": "f",
	"g": "ɡ",
	"h": "h",
	"i": "ɪ",
	"j": "dʒ",
	"k": "k",
	"l": "l",
	"m": "m",
	"n": "n",
	"o": "ɑ",
	"p": "p",
	"q": "k",
	"r": "ɹ",
	"s": "s",
	"t": "t",
	"u": "ʌ",
	"v": "v",
	"w": "w",
	"x": "ks",
	"y": "j",
	"z": "z",
}

// lexicon holds pronunciations for words common enough that the spelling
// rules would embarrass themselves. Stress marks appear only where they
// noticeably improve prosody.
var lexicon = map[string]string{
	"the":      "ðə",
	"a":        "ə",
	"an":       "ən",
	"and":      "ænd",
	"or":       "ɔɹ",
	"is":       "ɪz",
	"are":      "ɑɹ",
	"was":      "wɑz",
	"were":     "wɝ",
	"be":       "bi",
	"been":     "bɪn",
	"have":     "hæv",
	"has":      "hæz",
	"had":      "hæd",
	"do":       "du",
	"does":     "dʌz",
	"did":      "dɪd",
	"done":     "dʌn",
	"will":     "wɪl",
	"would":    "wʊd",
	"could":    "kʊd",
	"should":   "ʃʊd",
	"may":      "meɪ",
	"might":    "maɪt",
	"can":      "kæn",
	"must":     "mʌst",
	"i":        "aɪ",
	"you":      "ju",
	"he":       "hi",
	"she":      "ʃi",
	"it":       "ɪt",
	"we":       "wi",
	"they":     "ðeɪ",
	"me":       "mi",
	"him":      "hɪm",
	"her":      "hɝ",
	"us":       "ʌs",
	"them":     "ðɛm",
	"my":       "maɪ",
	"your":     "jɔɹ",
	"his":      "hɪz",
	"its":      "ɪts",
	"our":      "aʊɚ",
	"their":    "ðɛɹ",
	"this":     "ðɪs",
	"that":     "ðæt",
	"these":    "ðiz",
	"those":    "ðoʊz",
	"what":     "wʌt",
	"which":    "wɪtʃ",
	"who":      "hu",
	"where":    "wɛɹ",
	"when":     "wɛn",
	"why":      "waɪ",
	"how":      "haʊ",
	"not":      "nɑt",
	"no":       "noʊ",
	"yes":      "jɛs",
	"to":       "tu",
	"too":      "tu",
	"of":       "ʌv",
	"in":       "ɪn",
	"on":       "ɑn",
	"at":       "æt",
	"by":       "baɪ",
	"for":      "fɔɹ",
	"with":     "wɪθ",
	"from":     "fɹʌm",
	"about":    "əˈbaʊt",
	"into":     "ɪntu",
	"through":  "θɹu",
	"after":    "æftɚ",
	"before":   "bɪˈfɔɹ",
	"between":  "bɪˈtwin",
	"under":    "ʌndɚ",
	"over":     "oʊvɚ",
	"up":       "ʌp",
	"down":     "daʊn",
	"out":      "aʊt",
	"off":      "ɔf",
	"if":       "ɪf",
	"then":     "ðɛn",
	"than":     "ðæn",
	"so":       "soʊ",
	"just":     "dʒʌst",
	"also":     "ɔlsoʊ",
	"very":     "vɛɹi",
	"well":     "wɛl",
	"here":     "hiɹ",
	"there":    "ðɛɹ",
	"now":      "naʊ",
	"only":     "oʊnli",
	"still":    "stɪl",
	"even":     "ivən",
	"again":    "əˈɡɛn",
	"back":     "bæk",
	"good":     "ɡʊd",
	"new":      "nu",
	"first":    "fɝst",
	"last":     "læst",
	"one":      "wʌn",
	"two":      "tu",
	"three":    "θɹi",
	"four":     "fɔɹ",
	"five":     "faɪv",
	"six":      "sɪks",
	"seven":    "sɛvən",
	"eight":    "eɪt",
	"nine":     "naɪn",
	"ten":      "tɛn",
	"zero":     "ˈziɹoʊ",
	"hundred":  "hʌndɹəd",
	"thousand": "θaʊzənd",
	"million":  "mɪljən",
	"oh":       "oʊ",
	"great":    "ɡɹeɪt",
	"little":   "lɪtəl",
	"own":      "oʊn",
	"other":    "ʌðɚ",
	"old":      "oʊld",
	"right":    "ɹaɪt",
	"big":      "bɪɡ",
	"high":     "haɪ",
	"small":    "smɔl",
	"large":    "lɑɹdʒ",
	"next":     "nɛkst",
	"same":     "seɪm",
	"say":      "seɪ",
	"said":     "sɛd",
	"get":      "ɡɛt",
	"make":     "meɪk",
	"go":       "ɡoʊ",
	"see":      "si",
	"know":     "noʊ",
	"take":     "teɪk",
	"come":     "kʌm",
	"think":    "θɪŋk",
	"look":     "lʊk",
	"want":     "wɑnt",
	"give":     "ɡɪv",
	"use":      "juz",
	"find":     "faɪnd",
	"tell":     "tɛl",
	"ask":      "æsk",
	"work":     "wɝk",
	"try":      "tɹaɪ",
	"leave":    "liv",
	"call":     "kɔl",
	"need":     "nid",
	"keep":     "kip",
	"let":      "lɛt",
	"begin":    "bɪˈɡɪn",
	"show":     "ʃoʊ",
	"hear":     "hiɹ",
	"play":     "pleɪ",
	"run":      "ɹʌn",
	"move":     "muv",
	"live":     "lɪv",
	"believe":  "bɪˈliv",
	"hold":     "hoʊld",
	"bring":    "bɹɪŋ",
	"write":    "ɹaɪt",
	"sit":      "sɪt",
	"stand":    "stænd",
	"lose":     "luz",
	"pay":      "peɪ",
	"meet":     "mit",
	"continue": "kənˈtɪnju",
	"set":      "sɛt",
	"learn":    "lɝn",
	"change":   "tʃeɪndʒ",
	"watch":    "wɑtʃ",
	"follow":   "fɑloʊ",
	"stop":     "stɑp",
	"speak":    "spik",
	"read":     "ɹid",
	"open":     "oʊpən",
	"walk":     "wɔk",
	"win":      "wɪn",
	"remember": "ɹɪˈmɛmbɚ",
	"love":     "lʌv",
	"buy":      "baɪ",
	"wait":     "weɪt",
	"die":      "daɪ",
	"send":     "sɛnd",
	"expect":   "ɪkˈspɛkt",
	"build":    "bɪld",
	"stay":     "steɪ",
	"fall":     "fɔl",
	"cut":      "kʌt",
	"reach":    "ɹitʃ",
	"remain":   "ɹɪˈmeɪn",
	"hello":    "hɛˈloʊ",
	"okay":     "oʊˈkeɪ",
	"sure":     "ʃʊɹ",
	"thanks":   "θæŋks",
	"thank":    "θæŋk",
	"sorry":    "sɑɹi",
	"please":   "pliz",
	"goodbye":  "ɡʊdˈbaɪ",
	"welcome":  "ˈwɛlkəm",
	"science":  "ˈsaɪəns",
	"test":     "tɛst",
	"testing":  "ˈtɛstɪŋ",
	"subject":  "ˈsʌbdʒɛkt",
	"cake":     "keɪk",
	"portal":   "ˈpɔɹtəl",
	"aperture": "ˈæpɚtʃɚ",
	"world":    "wɝld",
	"time":     "taɪm",
	"day":      "deɪ",
	"point":    "pɔɪnt",
	"dollar":   "dɑlɚ",
	"dollars":  "dɑlɚz",
	"cent":     "sɛnt",
	"cents":    "sɛnts",
	"pounds":   "paʊndz",
	"mister":   "mɪstɚ",
	"misess":   "mɪsɪz",
	"doctor":   "dɑktɚ",
	"voice":    "vɔɪs",
	"speech":   "spitʃ",
}
