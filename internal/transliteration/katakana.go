package transliteration

import "github.com/jusunglee/boothko/internal/hangul"

type glide int

const (
	noGlide glide = iota
	yGlide
	wGlide
)

// Column indexes into a kana row.
const (
	colA = iota
	colI
	colU
	colE
	colO
)

type vowelSound struct {
	glide glide
	col   int
}

// Korean nuclei folded onto the five Japanese vowels. ㅓ and ㅡ have no
// Japanese counterpart and take the nearest back vowel.
var nuclei = [hangul.NucleusCount]vowelSound{
	{noGlide, colA}, // ㅏ
	{noGlide, colE}, // ㅐ
	{yGlide, colA},  // ㅑ
	{yGlide, colE},  // ㅒ
	{noGlide, colO}, // ㅓ
	{noGlide, colE}, // ㅔ
	{yGlide, colO},  // ㅕ
	{yGlide, colE},  // ㅖ
	{noGlide, colO}, // ㅗ
	{wGlide, colA},  // ㅘ
	{wGlide, colE},  // ㅙ
	{wGlide, colE},  // ㅚ
	{yGlide, colO},  // ㅛ
	{noGlide, colU}, // ㅜ
	{wGlide, colO},  // ㅝ
	{wGlide, colE},  // ㅞ
	{wGlide, colI},  // ㅟ
	{yGlide, colU},  // ㅠ
	{noGlide, colU}, // ㅡ
	{noGlide, colI}, // ㅢ
	{noGlide, colI}, // ㅣ
}

type kanaRow [5]string

var (
	rowVowel = kanaRow{"ア", "イ", "ウ", "エ", "オ"}
	rowK     = kanaRow{"カ", "キ", "ク", "ケ", "コ"}
	rowS     = kanaRow{"サ", "シ", "ス", "セ", "ソ"}
	rowT     = kanaRow{"タ", "ティ", "トゥ", "テ", "ト"}
	rowN     = kanaRow{"ナ", "ニ", "ヌ", "ネ", "ノ"}
	rowH     = kanaRow{"ハ", "ヒ", "フ", "ヘ", "ホ"}
	rowM     = kanaRow{"マ", "ミ", "ム", "メ", "モ"}
	rowR     = kanaRow{"ラ", "リ", "ル", "レ", "ロ"}
	rowP     = kanaRow{"パ", "ピ", "プ", "ペ", "ポ"}
	rowCh    = kanaRow{"チャ", "チ", "チュ", "チェ", "チョ"}

	// Glided forms of the vowel row, where no consonant carries the glide.
	rowVowelY = kanaRow{"ヤ", "イ", "ユ", "イェ", "ヨ"}
	rowVowelW = kanaRow{"ワ", "ウィ", "ウ", "ウェ", "ウォ"}

	smallY = kanaRow{"ャ", "", "ュ", "ェ", "ョ"}
	smallW = kanaRow{"ァ", "ィ", "", "ェ", "ォ"}
)

// Plain and tense stops share the unvoiced row with their aspirated pair.
var onsetRows = [hangul.OnsetCount]*kanaRow{
	&rowK,     // ㄱ
	&rowK,     // ㄲ
	&rowN,     // ㄴ
	&rowT,     // ㄷ
	&rowT,     // ㄸ
	&rowR,     // ㄹ
	&rowM,     // ㅁ
	&rowP,     // ㅂ
	&rowP,     // ㅃ
	&rowS,     // ㅅ
	&rowS,     // ㅆ
	&rowVowel, // ㅇ
	&rowCh,    // ㅈ
	&rowCh,    // ㅉ
	&rowCh,    // ㅊ
	&rowK,     // ㅋ
	&rowT,     // ㅌ
	&rowP,     // ㅍ
	&rowH,     // ㅎ
}

// Codas. Clusters take whichever member is pronounced in isolation.
// Unreleased dental codas become the sokuon; ㅎ is dropped.
var codas = [hangul.CodaCount]string{
	"",   // none
	"ク", // ㄱ
	"ク", // ㄲ
	"ク", // ㄳ
	"ン", // ㄴ
	"ン", // ㄵ
	"ン", // ㄶ
	"ッ", // ㄷ
	"ル", // ㄹ
	"ク", // ㄺ
	"ム", // ㄻ
	"ル", // ㄼ
	"ル", // ㄽ
	"ル", // ㄾ
	"プ", // ㄿ
	"ル", // ㅀ
	"ム", // ㅁ
	"プ", // ㅂ
	"プ", // ㅄ
	"ッ", // ㅅ
	"ッ", // ㅆ
	"ン", // ㅇ
	"ッ", // ㅈ
	"ッ", // ㅊ
	"ク", // ㅋ
	"ッ", // ㅌ
	"プ", // ㅍ
	"",   // ㅎ
}

// neutralMora stands in for an onset/nucleus pair the tables fail to cover.
const neutralMora = "ウ"

// mora returns the kana for an onset/nucleus pair, without the coda.
func mora(onset hangul.Consonant, nucleus hangul.Vowel) string {
	row := onsetRows[onset]
	v := nuclei[nucleus]

	if row == &rowVowel {
		switch v.glide {
		case yGlide:
			return rowVowelY[v.col]
		case wGlide:
			return rowVowelW[v.col]
		}
		return row[v.col]
	}

	switch v.glide {
	case yGlide:
		if v.col == colI {
			return row[colI]
		}
		// ティャ is unpronounceable; palatalized ㄷ/ㅌ borrow the ch row.
		if row == &rowT {
			return rowCh[v.col]
		}
		if row == &rowCh {
			return row[v.col]
		}
		return row[colI] + smallY[v.col]
	case wGlide:
		if v.col == colU {
			return row[colU]
		}
		return row[colU] + smallW[v.col]
	}
	return row[v.col]
}

// syllableKana maps one decomposed syllable to its katakana rendering.
func syllableKana(s hangul.Syllable) string {
	m := mora(s.Onset, s.Nucleus)
	if m == "" {
		m = neutralMora
	}
	return m + codas[s.Coda]
}
