package words

// builtinGroups lists the word groups in teaching order.
var builtinGroups = []Group{
	{Key: "short-a", Name: "Short a", Description: "The a in cat and map", Emoji: "🐱"},
	{Key: "short-i", Name: "Short i", Description: "The i in pig and sit", Emoji: "🐷"},
	{Key: "short-o", Name: "Short o", Description: "The o in dog and box", Emoji: "🐶"},
	{Key: "short-e", Name: "Short e", Description: "The e in bed and hen", Emoji: "🐔"},
	{Key: "short-u", Name: "Short u", Description: "The u in bug and sun", Emoji: "🐛"},
	{Key: "digraphs", Name: "Digraphs", Description: "Two letters, one sound: sh, ch, th, ck, wh", Emoji: "🚢"},
	{Key: "blends", Name: "Blends", Description: "Two consonants blended together: fr, st, nd", Emoji: "🐸"},
	{Key: "magic-e", Name: "Magic e", Description: "A silent e makes the vowel say its name", Emoji: "🎂"},
	{Key: "r-controlled", Name: "Bossy r", Description: "ar, or and ir", Emoji: "🚗"},
	{Key: "vowel-teams", Name: "Vowel teams", Description: "Two vowels working together: ai, oa, ee, oo", Emoji: "🌧️"},
}

// builtinWords is the default word bank, grouped in teaching order.
var builtinWords = []Word{
	// short-a
	entry("cat", "🐱", "short-a", 1, PatternCVC, c("c"), sv("a"), c("t")),
	entry("hat", "🎩", "short-a", 1, PatternCVC, c("h"), sv("a"), c("t")),
	entry("bat", "🦇", "short-a", 1, PatternCVC, c("b"), sv("a"), c("t")),
	entry("map", "🗺️", "short-a", 1, PatternCVC, c("m"), sv("a"), c("p")),
	entry("cap", "🧢", "short-a", 1, PatternCVC, c("c"), sv("a"), c("p")),
	entry("bag", "👜", "short-a", 1, PatternCVC, c("b"), sv("a"), c("g")),
	entry("jam", "🍓", "short-a", 1, PatternCVC, c("j"), sv("a"), c("m")),
	entry("van", "🚐", "short-a", 1, PatternCVC, c("v"), sv("a"), c("n")),
	entry("fan", "🪭", "short-a", 1, PatternCVC, c("f"), sv("a"), c("n")),
	entry("pan", "🍳", "short-a", 1, PatternCVC, c("p"), sv("a"), c("n")),
	// short-i
	entry("pig", "🐷", "short-i", 1, PatternCVC, c("p"), sv("i"), c("g")),
	entry("sit", "🪑", "short-i", 1, PatternCVC, c("s"), sv("i"), c("t")),
	entry("bin", "🗑️", "short-i", 1, PatternCVC, c("b"), sv("i"), c("n")),
	entry("fin", "🦈", "short-i", 1, PatternCVC, c("f"), sv("i"), c("n")),
	entry("lip", "👄", "short-i", 1, PatternCVC, c("l"), sv("i"), c("p")),
	entry("wig", "💇", "short-i", 1, PatternCVC, c("w"), sv("i"), c("g")),
	entry("kid", "🧒", "short-i", 1, PatternCVC, c("k"), sv("i"), c("d")),
	entry("six", "6️⃣", "short-i", 1, PatternCVC, c("s"), sv("i"), c("x")),
	// short-o
	entry("dog", "🐶", "short-o", 1, PatternCVC, c("d"), sv("o"), c("g")),
	entry("hot", "🔥", "short-o", 1, PatternCVC, c("h"), sv("o"), c("t")),
	entry("pot", "🍲", "short-o", 1, PatternCVC, c("p"), sv("o"), c("t")),
	entry("mop", "🧹", "short-o", 1, PatternCVC, c("m"), sv("o"), c("p")),
	entry("log", "🪵", "short-o", 1, PatternCVC, c("l"), sv("o"), c("g")),
	entry("box", "📦", "short-o", 1, PatternCVC, c("b"), sv("o"), c("x")),
	entry("fox", "🦊", "short-o", 1, PatternCVC, c("f"), sv("o"), c("x")),
	entry("top", "🔝", "short-o", 1, PatternCVC, c("t"), sv("o"), c("p")),
	// short-e
	entry("bed", "🛏️", "short-e", 1, PatternCVC, c("b"), sv("e"), c("d")),
	entry("hen", "🐔", "short-e", 1, PatternCVC, c("h"), sv("e"), c("n")),
	entry("pen", "🖊️", "short-e", 1, PatternCVC, c("p"), sv("e"), c("n")),
	entry("net", "🥅", "short-e", 1, PatternCVC, c("n"), sv("e"), c("t")),
	entry("leg", "🦵", "short-e", 1, PatternCVC, c("l"), sv("e"), c("g")),
	entry("jet", "✈️", "short-e", 1, PatternCVC, c("j"), sv("e"), c("t")),
	entry("web", "🕸️", "short-e", 1, PatternCVC, c("w"), sv("e"), c("b")),
	entry("red", "🟥", "short-e", 1, PatternCVC, c("r"), sv("e"), c("d")),
	// short-u
	entry("bug", "🐛", "short-u", 1, PatternCVC, c("b"), sv("u"), c("g")),
	entry("cup", "☕", "short-u", 1, PatternCVC, c("c"), sv("u"), c("p")),
	entry("sun", "☀️", "short-u", 1, PatternCVC, c("s"), sv("u"), c("n")),
	entry("bus", "🚌", "short-u", 1, PatternCVC, c("b"), sv("u"), c("s")),
	entry("hut", "🛖", "short-u", 1, PatternCVC, c("h"), sv("u"), c("t")),
	entry("mud", "🟫", "short-u", 1, PatternCVC, c("m"), sv("u"), c("d")),
	entry("rug", "🧶", "short-u", 1, PatternCVC, c("r"), sv("u"), c("g")),
	entry("nut", "🥜", "short-u", 1, PatternCVC, c("n"), sv("u"), c("t")),
	// digraphs
	entry("ship", "🚢", "digraphs", 2, PatternDigraph, dg("sh"), sv("i"), c("p")),
	entry("shop", "🏪", "digraphs", 2, PatternDigraph, dg("sh"), sv("o"), c("p")),
	entry("fish", "🐟", "digraphs", 2, PatternDigraph, c("f"), sv("i"), dg("sh")),
	entry("chin", "🧔", "digraphs", 2, PatternDigraph, dg("ch"), sv("i"), c("n")),
	entry("chip", "🍟", "digraphs", 2, PatternDigraph, dg("ch"), sv("i"), c("p")),
	entry("thin", "📏", "digraphs", 2, PatternDigraph, dg("th"), sv("i"), c("n")),
	entry("bath", "🛁", "digraphs", 2, PatternDigraph, c("b"), sv("a"), dg("th")),
	entry("duck", "🦆", "digraphs", 2, PatternDigraph, c("d"), sv("u"), dg("ck")),
	entry("sock", "🧦", "digraphs", 2, PatternDigraph, c("s"), sv("o"), dg("ck")),
	entry("whip", "🍦", "digraphs", 2, PatternDigraph, dg("wh"), sv("i"), c("p")),
	// blends
	entry("frog", "🐸", "blends", 2, PatternBlend, bl("fr"), sv("o"), c("g")),
	entry("crab", "🦀", "blends", 2, PatternBlend, bl("cr"), sv("a"), c("b")),
	entry("stop", "🛑", "blends", 2, PatternBlend, bl("st"), sv("o"), c("p")),
	entry("flag", "🚩", "blends", 2, PatternBlend, bl("fl"), sv("a"), c("g")),
	entry("drum", "🥁", "blends", 2, PatternBlend, bl("dr"), sv("u"), c("m")),
	entry("swim", "🏊", "blends", 2, PatternBlend, bl("sw"), sv("i"), c("m")),
	entry("nest", "🪺", "blends", 2, PatternBlend, c("n"), sv("e"), bl("st")),
	entry("hand", "✋", "blends", 2, PatternBlend, c("h"), sv("a"), bl("nd")),
	entry("plum", "🫐", "blends", 2, PatternBlend, bl("pl"), sv("u"), c("m")),
	entry("clap", "👏", "blends", 2, PatternBlend, bl("cl"), sv("a"), c("p")),
	// magic-e
	entry("cake", "🎂", "magic-e", 3, PatternCVCe, c("c"), lv("a"), c("k"), se("e")),
	entry("bike", "🚲", "magic-e", 3, PatternCVCe, c("b"), lv("i"), c("k"), se("e")),
	entry("home", "🏠", "magic-e", 3, PatternCVCe, c("h"), lv("o"), c("m"), se("e")),
	entry("cube", "🧊", "magic-e", 3, PatternCVCe, c("c"), lv("u"), c("b"), se("e")),
	entry("kite", "🪁", "magic-e", 3, PatternCVCe, c("k"), lv("i"), c("t"), se("e")),
	entry("rope", "🪢", "magic-e", 3, PatternCVCe, c("r"), lv("o"), c("p"), se("e")),
	entry("gate", "🚧", "magic-e", 3, PatternCVCe, c("g"), lv("a"), c("t"), se("e")),
	entry("tube", "🧪", "magic-e", 3, PatternCVCe, c("t"), lv("u"), c("b"), se("e")),
	// r-controlled
	entry("car", "🚗", "r-controlled", 3, PatternOther, c("c"), rc("ar")),
	entry("star", "⭐", "r-controlled", 3, PatternOther, bl("st"), rc("ar")),
	entry("bird", "🐦", "r-controlled", 3, PatternOther, c("b"), rc("ir"), c("d")),
	entry("fork", "🍴", "r-controlled", 3, PatternOther, c("f"), rc("or"), c("k")),
	entry("corn", "🌽", "r-controlled", 3, PatternOther, c("c"), rc("or"), c("n")),
	entry("shark", "🦈", "r-controlled", 3, PatternOther, dg("sh"), rc("ar"), c("k")),
	entry("girl", "👧", "r-controlled", 3, PatternOther, c("g"), rc("ir"), c("l")),
	entry("farm", "🚜", "r-controlled", 3, PatternOther, c("f"), rc("ar"), c("m")),
	// vowel-teams
	entry("rain", "🌧️", "vowel-teams", 3, PatternOther, c("r"), lv("ai"), c("n")),
	entry("boat", "⛵", "vowel-teams", 3, PatternOther, c("b"), lv("oa"), c("t")),
	entry("tree", "🌳", "vowel-teams", 3, PatternOther, bl("tr"), lv("ee")),
	entry("seal", "🦭", "vowel-teams", 3, PatternOther, c("s"), lv("ea"), c("l")),
	entry("coin", "🪙", "vowel-teams", 3, PatternOther, c("c"), di("oi"), c("n")),
	entry("cow", "🐄", "vowel-teams", 3, PatternOther, c("c"), di("ow")),
	entry("moon", "🌙", "vowel-teams", 3, PatternOther, c("m"), lv("oo"), c("n")),
	entry("snail", "🐌", "vowel-teams", 3, PatternOther, bl("sn"), lv("ai"), c("l")),
}

type unit struct {
	grapheme string
	kind     PhonemeType
}

func c(g string) unit  { return unit{g, Consonant} }
func sv(g string) unit { return unit{g, ShortVowel} }
func lv(g string) unit { return unit{g, LongVowel} }
func dg(g string) unit { return unit{g, Digraph} }
func bl(g string) unit { return unit{g, Blend} }
func se(g string) unit { return unit{g, SilentE} }
func rc(g string) unit { return unit{g, RControlled} }
func di(g string) unit { return unit{g, Diphthong} }

// entry builds a Word whose ID is its display text.
func entry(text, emoji, group string, level int, pattern Pattern, units ...unit) Word {
	w := Word{
		ID:        text,
		Text:      text,
		Graphemes: make([]string, len(units)),
		Types:     make([]PhonemeType, len(units)),
		Pattern:   pattern,
		Group:     group,
		Level:     level,
		Emoji:     emoji,
	}
	for i, u := range units {
		w.Graphemes[i] = u.grapheme
		w.Types[i] = u.kind
	}
	return w
}
